package errors

import (
	"os"
	"path/filepath"
	"strings"
)

// OrbitalSuffixes lists the ORCA orbital file extensions orca_plot accepts.
var OrbitalSuffixes = []string{".gbw", ".qro", ".uno", ".uco"}

// ValidateOrbitalFile checks that path names an existing regular file with
// one of the [OrbitalSuffixes].
func ValidateOrbitalFile(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInputFile, "input file cannot be empty")
	}

	suffix := filepath.Ext(path)
	if !isOrbitalSuffix(suffix) {
		return New(ErrCodeInvalidInputFile, "invalid file suffix %q (expected one of %s)",
			suffix, strings.Join(OrbitalSuffixes, ", "))
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return New(ErrCodeInvalidInputFile, "input file not found: %s", path)
		}
		return Wrap(ErrCodeInvalidInputFile, err, "stat %s", path)
	}
	if info.IsDir() {
		return New(ErrCodeInvalidInputFile, "input file is a directory: %s", path)
	}
	return nil
}

func isOrbitalSuffix(suffix string) bool {
	for _, s := range OrbitalSuffixes {
		if s == suffix {
			return true
		}
	}
	return false
}

// ValidateGrid checks that the plot grid resolution is positive.
func ValidateGrid(grid int) error {
	if grid <= 0 {
		return New(ErrCodeInvalidGrid, "grid size must be positive, got %d", grid)
	}
	return nil
}
