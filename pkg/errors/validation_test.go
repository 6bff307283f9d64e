package errors

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidateOrbitalFile(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"water.gbw", "water.qro", "water.uno", "water.uco", "water.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "folder.gbw"), 0o755); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"gbw", filepath.Join(dir, "water.gbw"), false},
		{"qro", filepath.Join(dir, "water.qro"), false},
		{"uno", filepath.Join(dir, "water.uno"), false},
		{"uco", filepath.Join(dir, "water.uco"), false},

		{"empty", "", true},
		{"wrong suffix", filepath.Join(dir, "water.txt"), true},
		{"no suffix", filepath.Join(dir, "water"), true},
		{"uppercase suffix", filepath.Join(dir, "water.GBW"), true},
		{"missing file", filepath.Join(dir, "missing.gbw"), true},
		{"directory", filepath.Join(dir, "folder.gbw"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOrbitalFile(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOrbitalFile(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInputFile) {
				t.Errorf("error code = %v, want %v", GetCode(err), ErrCodeInvalidInputFile)
			}
		})
	}
}

func TestValidateGrid(t *testing.T) {
	tests := []struct {
		grid    int
		wantErr bool
	}{
		{80, false},
		{1, false},
		{200, false},
		{0, true},
		{-5, true},
	}

	for _, tt := range tests {
		err := ValidateGrid(tt.grid)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateGrid(%d) error = %v, wantErr %v", tt.grid, err, tt.wantErr)
		}
	}
}
