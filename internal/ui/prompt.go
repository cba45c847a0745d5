package ui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// ErrNotInteractive is returned when input is needed but there is no terminal.
var ErrNotInteractive = errors.New("no terminal available for input")

// openTTY opens /dev/tty for direct terminal access (bypasses redirections)
func openTTY() (*os.File, error) {
	return os.OpenFile("/dev/tty", os.O_RDWR, 0)
}

// IsInteractive reports whether stdin is a terminal.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// PromptAPIKey asks for a fal API key for this session only. The value is
// masked on screen and never persisted.
func PromptAPIKey() (string, error) {
	if !IsInteractive() {
		return "", ErrNotInteractive
	}

	var key string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("fal API key").
				Description("Used for this session only. Set FAL_KEY to skip this prompt.").
				EchoMode(huh.EchoModePassword).
				Validate(validateAPIKey).
				Value(&key),
		),
	)

	if tty, err := openTTY(); err == nil {
		defer tty.Close()
		form = form.WithInput(tty).WithOutput(tty)
	}

	if err := form.Run(); err != nil {
		return "", err
	}
	return strings.TrimSpace(key), nil
}

func validateAPIKey(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("an API key is required")
	}
	return nil
}

// ShowError writes an error message to w.
func ShowError(w io.Writer, msg string) {
	fmt.Fprintln(w, DefaultStyles().Error.Render("Error: "+msg))
}
