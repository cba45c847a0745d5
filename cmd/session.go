package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/samsaffron/imgedit/internal/clipboard"
	"github.com/samsaffron/imgedit/internal/config"
	"github.com/samsaffron/imgedit/internal/image"
	"github.com/samsaffron/imgedit/internal/logging"
	"github.com/samsaffron/imgedit/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// session is what one command invocation needs: config, the credential
// held for this process only, and a logger that redacts it.
type session struct {
	cfg        *config.Config
	credential string
	logger     zerolog.Logger
}

func newSession() (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	credential := strings.TrimSpace(cfg.Fal.APIKey)
	if credential == "" {
		credential, err = ui.PromptAPIKey()
		if errors.Is(err, ui.ErrNotInteractive) {
			return nil, fmt.Errorf("no fal API key: set FAL_KEY or fal.api_key in the config file")
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read API key: %w", err)
		}
	}

	return &session{
		cfg:        cfg,
		credential: credential,
		logger:     logging.WithSecret(os.Stderr, debugFlag, credential),
	}, nil
}

func (s *session) editor(f *opFlags) (*image.Editor, error) {
	encoder, err := image.NewEncoder(f.encoderOptions(s.cfg))
	if err != nil {
		return nil, err
	}
	client := image.NewClient(image.ClientOptions{
		Endpoint: s.cfg.Fal.Endpoint,
		Timeout:  s.cfg.Fal.Timeout,
		Logger:   s.logger,
	})
	s.logger.Debug().
		Str("endpoint", client.Endpoint()).
		Str("encoder", encoder.Name()).
		Msg("configured fal client")
	return &image.Editor{
		Encoder:  encoder,
		Sender:   client,
		MaxBytes: f.maxBytesFor(s.cfg),
		Logger:   s.logger,
	}, nil
}

// loadImageArg reads an image from a path, or from the clipboard when the
// path is "clipboard".
func loadImageArg(ctx context.Context, path string) (image.Input, error) {
	if path == "clipboard" {
		data, err := clipboard.ReadImage(ctx)
		if err != nil {
			return image.Input{}, fmt.Errorf("failed to read from clipboard: %w", err)
		}
		return image.NewInput("clipboard.png", data), nil
	}
	return image.LoadInput(path)
}

func notifyContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
}

// runOperation sends op, prints the result URL on stdout and then handles
// saving, preview and clipboard. caption names the saved file.
func runOperation(ctx context.Context, cmd *cobra.Command, s *session, f *opFlags, op image.Operation, caption, label string) error {
	editor, err := s.editor(f)
	if err != nil {
		return err
	}
	size, err := f.sizeSpec(s.cfg, s.logger)
	if err != nil {
		return err
	}

	s.logger.Debug().
		Str("operation", op.Kind()).
		Str("encoder", editor.Encoder.Name()).
		Str("size", size.String()).
		Int("images", len(op.Images())).
		Msg("sending request")

	url, err := ui.RunWithSpinner(ctx, label, func(ctx context.Context) (string, error) {
		return editor.Run(ctx, op, s.credential, size)
	})
	if err != nil {
		return fmt.Errorf("%s failed: %w", op.Kind(), err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), url)

	if f.noSave && f.output == "" && !f.copy && f.noDisplay {
		return nil
	}
	result, err := image.Download(ctx, &http.Client{Timeout: s.cfg.Fal.Timeout}, url)
	if err != nil {
		return err
	}
	return deliver(ctx, cmd.ErrOrStderr(), s.cfg, f, result.Data, result.MimeType, caption)
}

// deliver writes image data to -o or the output directory, previews it and
// copies it to the clipboard as requested.
func deliver(ctx context.Context, status io.Writer, cfg *config.Config, f *opFlags, data []byte, mimeType, caption string) error {
	var outputPath string
	var err error
	switch {
	case f.output != "":
		outputPath = f.output
		if err := os.WriteFile(outputPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write image: %w", err)
		}
	case !f.noSave:
		outputPath, err = image.SaveImage(data, cfg.Image.OutputDir, caption, mimeType)
		if err != nil {
			return fmt.Errorf("failed to save image: %w", err)
		}
	}

	styles := ui.DefaultStyles()
	if outputPath != "" {
		fmt.Fprintln(status, styles.Success.Render("Saved to: "+outputPath))
	}

	if !f.noDisplay && image.DetectCapability() != image.CapNone && term.IsTerminal(int(os.Stderr.Fd())) {
		if err := image.Preview(os.Stderr, data); err != nil {
			if debugFlag {
				fmt.Fprintln(status, styles.Warning.Render("Display warning: "+err.Error()))
			}
		} else {
			fmt.Fprintln(os.Stderr)
		}
	}

	if f.copy {
		if err := clipboard.CopyImage(ctx, data, mimeType); err != nil {
			fmt.Fprintln(status, styles.Warning.Render("Clipboard warning: "+err.Error()))
		} else {
			fmt.Fprintln(status, styles.Muted.Render("Copied to clipboard"))
		}
	}
	return nil
}
