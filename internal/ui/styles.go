package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles used for status output on stderr.
type Styles struct {
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Muted   lipgloss.Style
	Spinner lipgloss.Style
	Bold    lipgloss.Style
}

// DefaultStyles returns the gruvbox palette rendered for stderr.
func DefaultStyles() *Styles {
	return NewStyles(os.Stderr)
}

// NewStyles creates styles using a renderer tied to the given output, so
// colors are dropped when it is not a terminal.
func NewStyles(output *os.File) *Styles {
	r := lipgloss.NewRenderer(output)
	return &Styles{
		Success: r.NewStyle().Foreground(lipgloss.Color("#b8bb26")),
		Error:   r.NewStyle().Foreground(lipgloss.Color("#fb4934")),
		Warning: r.NewStyle().Foreground(lipgloss.Color("#fabd2f")),
		Muted:   r.NewStyle().Foreground(lipgloss.Color("#928374")),
		Spinner: r.NewStyle().Foreground(lipgloss.Color("#d3869b")),
		Bold:    r.NewStyle().Bold(true),
	}
}
