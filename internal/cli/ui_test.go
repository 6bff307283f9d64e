package cli

import (
	"strings"
	"testing"

	"github.com/anselmoo/moplots/pkg/orbital"
	"github.com/anselmoo/moplots/pkg/theme"
)

func mustPalette(t *testing.T, name string) theme.Palette {
	t.Helper()
	p, err := theme.Lookup(name)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestRenderSelection(t *testing.T) {
	out := renderSelection(selection{
		Input:  "/data/runs/water.gbw",
		Range:  orbital.Range{First: 10, Last: 15},
		Spin:   orbital.SpinBoth,
		Format: orbital.FormatCube,
		Grid:   80,
		Jobs:   12,
	})

	for _, want := range []string{
		appName, "Active Selection", "Parameter", "Value",
		"Input", "water", ".gbw",
		"MO Total", "6",
		"MO Range", "10", "15",
		"Spin Info", "both",
		"Output", "CUBE",
		"Plots", "12",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("selection panel missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "/data/runs") {
		t.Error("selection panel should show the file stem, not the directory")
	}
}

func TestApplyTheme(t *testing.T) {
	defer applyTheme(theme.LookupOrDefault(theme.Default))

	nord := mustPalette(t, "nord")
	applyTheme(nord)
	if ui.palette != nord {
		t.Errorf("ui.palette = %+v, want nord", ui.palette)
	}
	for _, sel := range orbital.SpinSelections {
		if _, ok := ui.spin[sel]; !ok {
			t.Errorf("no style for spin selection %q", sel)
		}
	}
}

func TestRenderSwatch(t *testing.T) {
	out := renderSwatch(mustPalette(t, "monokai"))
	if got := strings.Count(out, iconSwatch); got != 9 {
		t.Errorf("swatch has %d blocks, want 9", got)
	}
}
