package orbital

import (
	"fmt"
	"strings"

	moerrors "github.com/anselmoo/moplots/pkg/errors"
)

// =============================================================================
// Range
// =============================================================================

// Range is an inclusive interval of orbital indices. The zero value is the
// single orbital 0.
type Range struct {
	First int
	Last  int
}

// NewRange validates first and last and returns the range [first, last].
func NewRange(first, last int) (Range, error) {
	if first < 0 || last < 0 {
		return Range{}, moerrors.New(moerrors.ErrCodeInvalidRange,
			"orbital indices must be non-negative, got %d and %d", first, last)
	}
	if first > last {
		return Range{}, moerrors.New(moerrors.ErrCodeInvalidRange,
			"first orbital %d is greater than last orbital %d", first, last)
	}
	return Range{First: first, Last: last}, nil
}

// Len returns the number of orbitals in the range.
func (r Range) Len() int {
	return r.Last - r.First + 1
}

// Indices returns the orbital indices in ascending order.
func (r Range) Indices() []int {
	out := make([]int, 0, r.Len())
	for i := r.First; i <= r.Last; i++ {
		out = append(out, i)
	}
	return out
}

func (r Range) String() string {
	return fmt.Sprintf("%d..%d", r.First, r.Last)
}

// =============================================================================
// Spin
// =============================================================================

// Spin is a single spin channel of an orbital.
type Spin int

const (
	Alpha Spin = iota
	Beta
)

func (s Spin) String() string {
	if s == Beta {
		return "beta"
	}
	return "alpha"
}

// SpinSelection chooses which spin channels are plotted per orbital.
type SpinSelection string

const (
	SpinAlpha SpinSelection = "alpha"
	SpinBeta  SpinSelection = "beta"
	SpinBoth  SpinSelection = "both"
)

// SpinSelections lists the accepted selections in display order.
var SpinSelections = []SpinSelection{SpinAlpha, SpinBeta, SpinBoth}

// ParseSpinSelection parses a spin selection, ignoring case.
func ParseSpinSelection(s string) (SpinSelection, error) {
	sel := SpinSelection(strings.ToLower(strings.TrimSpace(s)))
	for _, valid := range SpinSelections {
		if sel == valid {
			return sel, nil
		}
	}
	return "", moerrors.New(moerrors.ErrCodeInvalidSpin,
		"invalid spin %q (must be 'alpha', 'beta', or 'both')", s)
}

// Channels returns the spin channels rendered for each orbital, alpha first.
func (s SpinSelection) Channels() []Spin {
	switch s {
	case SpinBeta:
		return []Spin{Beta}
	case SpinBoth:
		return []Spin{Alpha, Beta}
	default:
		return []Spin{Alpha}
	}
}

// =============================================================================
// Output Format
// =============================================================================

// OutputFormat is an orca_plot output type.
type OutputFormat string

const (
	FormatBinary OutputFormat = "BINARY"
	FormatASCII  OutputFormat = "ASCII"
	FormatCube   OutputFormat = "CUBE"
)

// formatValues maps each format to the menu value orca_plot expects.
var formatValues = map[OutputFormat]int{
	FormatBinary: 5,
	FormatASCII:  6,
	FormatCube:   7,
}

// OutputFormats lists the supported formats in protocol order.
var OutputFormats = []OutputFormat{FormatBinary, FormatASCII, FormatCube}

// ParseOutputFormat parses a format name, ignoring case.
func ParseOutputFormat(s string) (OutputFormat, error) {
	f := OutputFormat(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := formatValues[f]; !ok {
		return "", moerrors.New(moerrors.ErrCodeInvalidFormat,
			"invalid output %q (must be 'BINARY', 'ASCII', or 'CUBE')", s)
	}
	return f, nil
}

// Value returns the protocol value of the format, or 0 for unknown formats.
func (f OutputFormat) Value() int {
	return formatValues[f]
}

// formatForValue is the reverse of Value.
func formatForValue(v int) (OutputFormat, bool) {
	for f, fv := range formatValues {
		if fv == v {
			return f, true
		}
	}
	return "", false
}

// =============================================================================
// Jobs
// =============================================================================

// Job is one (orbital, spin channel) render.
type Job struct {
	Orbital int
	Spin    Spin
}

func (j Job) String() string {
	return fmt.Sprintf("%d (%s)", j.Orbital, j.Spin)
}

// Jobs enumerates the render jobs for r and sel in execution order:
// ascending orbital index, alpha before beta within an index.
func Jobs(r Range, sel SpinSelection) []Job {
	channels := sel.Channels()
	jobs := make([]Job, 0, r.Len()*len(channels))
	for _, idx := range r.Indices() {
		for _, s := range channels {
			jobs = append(jobs, Job{Orbital: idx, Spin: s})
		}
	}
	return jobs
}
