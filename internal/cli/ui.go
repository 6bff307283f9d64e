package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/anselmoo/moplots/pkg/buildinfo"
	"github.com/anselmoo/moplots/pkg/orbital"
	"github.com/anselmoo/moplots/pkg/theme"
)

// =============================================================================
// Themed Styles
// =============================================================================

// styles is the set of lipgloss styles derived from a theme palette.
type styles struct {
	palette theme.Palette

	title      lipgloss.Style
	text       lipgloss.Style
	value      lipgloss.Style
	dim        lipgloss.Style
	number     lipgloss.Style
	rangeBound lipgloss.Style
	leftColumn lipgloss.Style
	header     lipgloss.Style
	tableTitle lipgloss.Style
	border     lipgloss.Style
	percentage lipgloss.Style
	command    lipgloss.Style

	iconSuccess lipgloss.Style
	iconError   lipgloss.Style

	spin map[orbital.SpinSelection]lipgloss.Style
}

func newStyles(p theme.Palette) styles {
	c := func(hex string) lipgloss.Color { return lipgloss.Color(hex) }
	return styles{
		palette: p,

		title:      lipgloss.NewStyle().Bold(true).Foreground(c(p.Purple)),
		text:       lipgloss.NewStyle().Italic(true).Foreground(c(p.Pink)),
		value:      lipgloss.NewStyle().Foreground(c(p.Foreground)),
		dim:        lipgloss.NewStyle().Foreground(c(p.Comment)),
		number:     lipgloss.NewStyle().Bold(true).Foreground(c(p.Cyan)),
		rangeBound: lipgloss.NewStyle().Bold(true).Underline(true).Foreground(c(p.Yellow)),
		leftColumn: lipgloss.NewStyle().Bold(true).Foreground(c(p.Purple)),
		header:     lipgloss.NewStyle().Bold(true).Foreground(c(p.Pink)),
		tableTitle: lipgloss.NewStyle().Bold(true).Foreground(c(p.Foreground)),
		border:     lipgloss.NewStyle().Foreground(c(p.Comment)),
		percentage: lipgloss.NewStyle().Bold(true).Foreground(c(p.Yellow)),
		command:    lipgloss.NewStyle().Foreground(c(p.Green)),

		iconSuccess: lipgloss.NewStyle().Foreground(c(p.Green)),
		iconError:   lipgloss.NewStyle().Foreground(c(p.Red)),

		spin: map[orbital.SpinSelection]lipgloss.Style{
			orbital.SpinAlpha: lipgloss.NewStyle().Italic(true).Foreground(c(p.Green)),
			orbital.SpinBeta:  lipgloss.NewStyle().Italic(true).Foreground(c(p.Red)),
			orbital.SpinBoth:  lipgloss.NewStyle().Italic(true).Foreground(c(p.Cyan)),
		},
	}
}

// ui holds the styles of the active theme.
var ui = newStyles(theme.LookupOrDefault(theme.Default))

// applyTheme switches all output to palette p.
func applyTheme(p theme.Palette) {
	ui = newStyles(p)
}

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconSwatch  = "██"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(ui.iconSuccess.Render(iconSuccess) + " " + msg)
}

// printDetail prints a detail line (indented).
func printDetail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println("  " + ui.dim.Render(msg))
}

// printNextStep prints a suggested next command.
func printNextStep(description, cmd string) {
	fmt.Println(ui.dim.Render(description+":") + " " + ui.command.Render(cmd))
}

// =============================================================================
// Active Selection Panel
// =============================================================================

// selection summarizes a plot run for the header panel.
type selection struct {
	Input  string
	Range  orbital.Range
	Spin   orbital.SpinSelection
	Format orbital.OutputFormat
	Grid   int
	Jobs   int
}

// renderSelection draws the "Active Selection" table inside a titled panel.
func renderSelection(sel selection) string {
	suffix := filepath.Ext(sel.Input)
	stem := strings.TrimSuffix(filepath.Base(sel.Input), suffix)

	rows := [][]string{
		{"Input", ui.number.Render(stem) + " " + ui.text.Render("of type") + " " + ui.number.Render(suffix)},
		{"MO Total", ui.number.Render(fmt.Sprint(sel.Range.Len()))},
		{"MO Range", ui.rangeBound.Render(fmt.Sprint(sel.Range.First)) + " " + ui.text.Render("to") + " " +
			ui.rangeBound.Render(fmt.Sprint(sel.Range.Last))},
		{"Spin Info", ui.spin[sel.Spin].Render(string(sel.Spin))},
		{"Output", ui.number.Render(string(sel.Format))},
		{"Grid", ui.number.Render(fmt.Sprint(sel.Grid))},
		{"Plots", ui.number.Render(fmt.Sprint(sel.Jobs))},
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(ui.border).
		Headers("Parameter", "Value").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return base.Inherit(ui.header)
			}
			if col == 0 {
				return base.Inherit(ui.leftColumn)
			}
			return base.Inherit(ui.value)
		})

	body := ui.tableTitle.Render("Active Selection") + "\n" + t.Render()
	title := ui.title.Render(fmt.Sprintf("%s %s", appName, buildinfo.Version))

	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ui.palette.Comment)).
		Padding(0, 1)

	return title + "\n" + panel.Render(body)
}

// =============================================================================
// Theme Swatches
// =============================================================================

// renderSwatch draws one colored block per palette color.
func renderSwatch(p theme.Palette) string {
	colors := []string{p.Foreground, p.Comment, p.Cyan, p.Green, p.Orange, p.Pink, p.Purple, p.Red, p.Yellow}
	var b strings.Builder
	for _, hex := range colors {
		b.WriteString(swatch(hex))
	}
	return b.String()
}

// swatch draws a single block in color hex.
func swatch(hex string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render(iconSwatch)
}
