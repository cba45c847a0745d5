package image

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// DefaultMaxBytes is the payload budget per image before re-encoding.
const DefaultMaxBytes int64 = 10 << 20

// Sender performs the generation call. *Client implements it.
type Sender interface {
	Send(ctx context.Context, body *EditRequest, credential string) (string, error)
}

// Editor runs the full pipeline for one operation: validate, normalize,
// encode, build and send. An Editor holds no per-request state, so one value
// can serve any number of sequential runs.
type Editor struct {
	Encoder  Encoder
	Sender   Sender
	MaxBytes int64
	Logger   zerolog.Logger
}

// Run executes op and returns the URL of the generated image.
func (e *Editor) Run(ctx context.Context, op Operation, credential string, size SizeSpec) (string, error) {
	if strings.TrimSpace(credential) == "" {
		return "", &ValidationError{Msg: "a fal API key is required"}
	}
	if op == nil {
		return "", &ValidationError{Msg: "no operation given"}
	}
	if err := op.Validate(); err != nil {
		return "", err
	}

	refs, err := e.prepare(ctx, op.Images(), credential)
	if err != nil {
		return "", err
	}

	body, err := BuildRequest(op, refs, size)
	if err != nil {
		return "", err
	}
	return e.Sender.Send(ctx, body, credential)
}

// prepare normalizes and encodes each image. With a reference image the two
// are independent, so they are processed concurrently.
func (e *Editor) prepare(ctx context.Context, images []Input, credential string) ([]Ref, error) {
	maxBytes := e.MaxBytes
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}

	refs := make([]Ref, len(images))
	g, gctx := errgroup.WithContext(ctx)
	for i, img := range images {
		i, img := i, img
		g.Go(func() error {
			normalized, err := Normalize(img, maxBytes)
			if err != nil {
				return err
			}
			if normalized.Name != img.Name || normalized.Size() != img.Size() {
				ev := e.Logger.Debug()
				if normalized.Size() > maxBytes {
					ev = e.Logger.Warn()
				}
				ev.Str("image", img.Name).
					Str("from_type", img.MimeType).
					Int64("from_bytes", img.Size()).
					Int64("to_bytes", normalized.Size()).
					Int64("max_bytes", maxBytes).
					Msg("re-encoded image payload")
			}

			ref, err := e.Encoder.Encode(gctx, normalized, credential)
			if err != nil {
				return err
			}
			e.Logger.Debug().Str("image", normalized.Name).Str("strategy", e.Encoder.Name()).Bool("inline", ref.Inline).Msg("encoded image")
			refs[i] = ref
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return refs, nil
}
