package ui

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// spinnerModel shows progress while a single blocking call runs.
type spinnerModel[T any] struct {
	spinner   spinner.Model
	message   string
	start     time.Time
	run       func() (T, error)
	cancel    context.CancelFunc
	styles    *Styles
	result    T
	err       error
	done      bool
	cancelled bool
}

type spinnerResultMsg[T any] struct {
	result T
	err    error
}

func newSpinnerModel[T any](message string, run func() (T, error), cancel context.CancelFunc, styles *Styles) spinnerModel[T] {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Spinner
	return spinnerModel[T]{
		spinner: s,
		message: message,
		start:   time.Now(),
		run:     run,
		cancel:  cancel,
		styles:  styles,
	}
}

func (m spinnerModel[T]) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		func() tea.Msg {
			result, err := m.run()
			return spinnerResultMsg[T]{result: result, err: err}
		},
	)
}

func (m spinnerModel[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEscape || msg.String() == "ctrl+c" {
			m.cancelled = true
			m.cancel()
			return m, tea.Quit
		}

	case spinnerResultMsg[T]:
		m.result = msg.result
		m.err = msg.err
		m.done = true
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m spinnerModel[T]) View() string {
	if m.done || m.cancelled {
		return ""
	}
	return fmt.Sprintf("%s %s %s\n",
		m.spinner.View(),
		m.message,
		m.styles.Muted.Render(fmt.Sprintf("(%s, esc to cancel)", formatElapsed(time.Since(m.start)))),
	)
}

func formatElapsed(d time.Duration) string {
	d = d.Truncate(time.Second)
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	return fmt.Sprintf("%dm%02ds", int(d.Minutes()), int(d.Seconds())%60)
}

// RunWithSpinner runs fn while showing a spinner on the terminal. Without a
// terminal fn runs directly. Escape cancels the context passed to fn.
func RunWithSpinner[T any](ctx context.Context, message string, fn func(context.Context) (T, error)) (T, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	run := func() (T, error) { return fn(ctx) }

	tty, err := openTTY()
	if err != nil {
		return run()
	}
	defer tty.Close()

	m := newSpinnerModel(message, run, cancel, DefaultStyles())
	p := tea.NewProgram(m, tea.WithInput(tty), tea.WithOutput(os.Stderr), tea.WithoutSignalHandler())
	finalModel, err := p.Run()
	if err != nil {
		var zero T
		return zero, err
	}

	final := finalModel.(spinnerModel[T])
	if final.cancelled {
		var zero T
		return zero, context.Canceled
	}
	return final.result, final.err
}
