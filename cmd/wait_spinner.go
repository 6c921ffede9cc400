package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// elapsedAfter is how long a reply may take before the spinner starts
// showing the elapsed time.
const elapsedAfter = 3 * time.Second

var waitLabels = map[string]string{
	"fr": "Réflexion en cours…",
	"en": "Thinking…",
}

type waitDoneMsg struct {
	err error
}

// waitSpinnerModel shows a single spinner line on stderr while an expert
// without research modes is answering.
type waitSpinnerModel struct {
	spinner spinner.Model
	label   string
	work    tea.Cmd
	now     func() time.Time
	started time.Time
	elapsed time.Duration
	err     error
	done    bool
}

func newWaitSpinnerModel(label string, work tea.Cmd, now func() time.Time) waitSpinnerModel {
	if now == nil {
		now = time.Now
	}
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return waitSpinnerModel{
		spinner: s,
		label:   label,
		work:    work,
		now:     now,
		started: now(),
	}
}

func (m waitSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.work)
}

func (m waitSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.elapsed = m.now().Sub(m.started)
		return m, cmd
	case waitDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m waitSpinnerModel) View() string {
	if m.done {
		return ""
	}

	if m.elapsed < elapsedAfter {
		return fmt.Sprintf("%s %s", m.spinner.View(), m.label)
	}
	return fmt.Sprintf("%s %s %ds", m.spinner.View(), m.label, int(m.elapsed/time.Second))
}

func waitLabel(language string) string {
	if label, ok := waitLabels[language]; ok {
		return label
	}
	return waitLabels["en"]
}

func runWaitSpinner(ctx context.Context, output io.Writer, label string, work func(context.Context) error) error {
	workCmd := func() tea.Msg {
		return waitDoneMsg{err: work(ctx)}
	}

	p := tea.NewProgram(
		newWaitSpinnerModel(label, workCmd, time.Now),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(waitSpinnerModel)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.err
}
