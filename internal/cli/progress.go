package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	progressbar "github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/anselmoo/moplots/pkg/orbital"
	"github.com/anselmoo/moplots/pkg/series"
)

const (
	barPadding  = 2
	barMaxWidth = 60
)

// =============================================================================
// Messages
// =============================================================================

// jobStartedMsg is sent when a job is attempted.
type jobStartedMsg struct {
	done  int
	total int
	job   orbital.Job
}

// seriesDoneMsg is sent once the series returns.
type seriesDoneMsg struct {
	result *series.Result
	err    error
}

// =============================================================================
// ProgressModel - Series progress bar
// =============================================================================

// progressModel is the bubbletea model showing the running series.
type progressModel struct {
	bar     progressbar.Model
	styles  styles
	total   int
	done    int
	current orbital.Job
	started bool
	err     error
	quit    bool
}

func newProgressModel(total int, s styles) progressModel {
	bar := progressbar.New(
		progressbar.WithGradient(s.palette.Purple, s.palette.Green),
		progressbar.WithWidth(40),
	)
	bar.EmptyColor = s.palette.CurrentLine
	bar.PercentageStyle = s.percentage
	return progressModel{bar: bar, styles: s, total: total}
}

func (m progressModel) Init() tea.Cmd {
	return nil
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case jobStartedMsg:
		m.started = true
		m.done = msg.done
		m.total = msg.total
		m.current = msg.job
	case seriesDoneMsg:
		m.err = msg.err
		m.quit = true
		return m, tea.Quit
	case tea.WindowSizeMsg:
		m.bar.Width = min(msg.Width-barPadding*2, barMaxWidth)
	}
	return m, nil
}

func (m progressModel) percent() float64 {
	if m.total == 0 {
		return 0
	}
	return float64(m.done) / float64(m.total)
}

func (m progressModel) View() string {
	var b strings.Builder
	pad := strings.Repeat(" ", barPadding)

	b.WriteString(pad)
	switch {
	case m.quit && m.err != nil:
		b.WriteString(m.styles.iconError.Render(iconError) + " ")
		b.WriteString(m.styles.dim.Render(fmt.Sprintf("stopped at orbital %s", m.current)))
	case m.quit:
		b.WriteString(m.styles.iconSuccess.Render(iconSuccess) + " ")
		b.WriteString(m.styles.dim.Render("done"))
	case m.started:
		b.WriteString(m.styles.text.Render("Rendering orbital") + " ")
		b.WriteString(m.styles.number.Render(fmt.Sprint(m.current.Orbital)) + " ")
		b.WriteString(m.styles.spin[spinSelectionOf(m.current.Spin)].Render(m.current.Spin.String()))
	default:
		b.WriteString(m.styles.dim.Render("Preparing scripts..."))
	}
	b.WriteString("  " + m.styles.dim.Render(fmt.Sprintf("%d/%d", m.done, m.total)))
	b.WriteString("\n" + pad + m.bar.ViewAs(m.percent()) + "\n")
	return b.String()
}

// spinSelectionOf maps a single channel to the selection used for styling.
func spinSelectionOf(s orbital.Spin) orbital.SpinSelection {
	if s == orbital.Beta {
		return orbital.SpinBeta
	}
	return orbital.SpinAlpha
}

// =============================================================================
// Runner Integration
// =============================================================================

// runWithProgressUI runs the series on a background goroutine while a
// bubbletea program draws its progress to stderr. The series result is
// returned even if the UI fails.
func (c *CLI) runWithProgressUI(ctx context.Context, runner *series.Runner, plan series.Plan) (*series.Result, error) {
	total := len(orbital.Jobs(plan.Range, plan.Spin))
	p := tea.NewProgram(newProgressModel(total, ui),
		tea.WithContext(ctx),
		tea.WithInput(nil),
		tea.WithOutput(c.stderr),
		tea.WithoutSignalHandler(),
	)

	runner.Progress = func(done, total int, job orbital.Job) {
		p.Send(jobStartedMsg{done: done, total: total, job: job})
	}

	finished := make(chan seriesDoneMsg, 1)
	go func() {
		result, err := runner.Run(ctx, plan)
		msg := seriesDoneMsg{result: result, err: err}
		finished <- msg
		p.Send(msg)
	}()

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		c.Logger.Debug("progress display failed", "err", err)
	}

	msg := <-finished
	return msg.result, msg.err
}
