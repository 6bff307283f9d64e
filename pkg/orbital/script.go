package orbital

import (
	"strconv"
	"strings"

	moerrors "github.com/anselmoo/moplots/pkg/errors"
)

// orca_plot menu choices.
const (
	cmdGridPlot   = "4"
	cmdOrbital    = "2"
	cmdSpin       = "3"
	cmdOutputType = "5"
	cmdGenerate   = "10"
	cmdExit       = "11"
)

// Spin blocks select the operator (0 = alpha, 1 = beta) of the orbital.
const (
	alphaBlock = "0\n1\n1\n"
	betaBlock  = "1\n1\n1\n"
)

// scriptLines is the number of lines in a well-formed script.
const scriptLines = 12

// Script holds the values encoded in an orca_plot command script.
type Script struct {
	Grid    int
	Orbital int
	Spin    Spin
	Format  int
}

// OutputFormat returns the named format for the script's format value.
func (s Script) OutputFormat() (OutputFormat, bool) {
	return formatForValue(s.Format)
}

// Job returns the render job described by the script.
func (s Script) Job() Job {
	return Job{Orbital: s.Orbital, Spin: s.Spin}
}

// BuildScript returns the orca_plot command sequence that renders the given
// spin channel of orbital on a grid of the given size. format is the
// protocol value from [OutputFormat.Value].
func BuildScript(orbital int, spin Spin, grid, format int) string {
	var b strings.Builder
	b.WriteString(cmdGridPlot + "\n")
	b.WriteString(strconv.Itoa(grid) + "\n")
	b.WriteString(cmdOrbital + "\n")
	b.WriteString(strconv.Itoa(orbital) + "\n")
	b.WriteString(cmdSpin + "\n")
	if spin == Beta {
		b.WriteString(betaBlock)
	} else {
		b.WriteString(alphaBlock)
	}
	b.WriteString(cmdOutputType + "\n")
	b.WriteString(strconv.Itoa(format) + "\n")
	b.WriteString(cmdGenerate + "\n")
	b.WriteString(cmdExit + "\n")
	return b.String()
}

// ParseScript decodes a script produced by [BuildScript].
func ParseScript(text string) (Script, error) {
	if !strings.HasSuffix(text, "\n") {
		return Script{}, invalidScript("missing trailing newline")
	}
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	if len(lines) != scriptLines {
		return Script{}, invalidScript("expected %d lines, got %d", scriptLines, len(lines))
	}

	var s Script
	var err error

	// grid section
	if err := expect(lines[0], cmdGridPlot, 1); err != nil {
		return Script{}, err
	}
	if s.Grid, err = parseCount(lines[1], 2); err != nil {
		return Script{}, err
	}

	// orbital section
	if err := expect(lines[2], cmdOrbital, 3); err != nil {
		return Script{}, err
	}
	if s.Orbital, err = parseCount(lines[3], 4); err != nil {
		return Script{}, err
	}

	// spin section
	if err := expect(lines[4], cmdSpin, 5); err != nil {
		return Script{}, err
	}
	switch strings.Join(lines[5:8], "\n") + "\n" {
	case alphaBlock:
		s.Spin = Alpha
	case betaBlock:
		s.Spin = Beta
	default:
		return Script{}, invalidScript("unknown spin block %q", strings.Join(lines[5:8], " "))
	}

	// output format section
	if err := expect(lines[8], cmdOutputType, 9); err != nil {
		return Script{}, err
	}
	if s.Format, err = parseCount(lines[9], 10); err != nil {
		return Script{}, err
	}

	// finalize section
	if err := expect(lines[10], cmdGenerate, 11); err != nil {
		return Script{}, err
	}
	if err := expect(lines[11], cmdExit, 12); err != nil {
		return Script{}, err
	}
	return s, nil
}

func expect(got, want string, line int) error {
	if got != want {
		return invalidScript("line %d: expected %q, got %q", line, want, got)
	}
	return nil
}

func parseCount(s string, line int) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, invalidScript("line %d: expected non-negative integer, got %q", line, s)
	}
	return n, nil
}

func invalidScript(format string, args ...any) error {
	return moerrors.New(moerrors.ErrCodeInvalidScript, format, args...)
}
