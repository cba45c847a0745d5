package image

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
)

// Upload strategies accepted by NewEncoder.
const (
	StrategyInline      = "inline"
	StrategyUpload      = "upload"
	StrategyObjectStore = "objectstore"
)

// Ref is a request-ready image reference: a data URI or a remote URL.
type Ref struct {
	URI    string
	Inline bool
}

// Encoder turns an Input into something that can be embedded in the
// request body. Implementations are chosen by configuration, never by the
// image content.
type Encoder interface {
	Name() string
	Encode(ctx context.Context, in Input, credential string) (Ref, error)
}

// EncoderOptions carries what the remote strategies need.
type EncoderOptions struct {
	Strategy    string
	Upload      UploadOptions
	ObjectStore ObjectStoreOptions
}

// NewEncoder returns the encoder for the configured strategy.
func NewEncoder(opts EncoderOptions) (Encoder, error) {
	switch strings.ToLower(strings.TrimSpace(opts.Strategy)) {
	case "", StrategyInline:
		return InlineEncoder{}, nil
	case StrategyUpload:
		return NewUploadEncoder(opts.Upload), nil
	case StrategyObjectStore:
		return NewObjectStoreEncoder(opts.ObjectStore)
	default:
		return nil, fmt.Errorf("unknown upload strategy: %s (valid: inline, upload, objectstore)", opts.Strategy)
	}
}

// InlineEncoder embeds the image as a base64 data URI.
type InlineEncoder struct{}

func (InlineEncoder) Name() string { return StrategyInline }

func (InlineEncoder) Encode(ctx context.Context, in Input, credential string) (Ref, error) {
	if err := ctx.Err(); err != nil {
		return Ref{}, &ReadError{Name: in.Name, Err: err}
	}
	if len(in.Data) == 0 {
		return Ref{}, &ReadError{Name: in.Name, Err: fmt.Errorf("no image data")}
	}
	return Ref{URI: DataURI(in.MimeType, in.Data), Inline: true}, nil
}

// DataURI builds a data URI for raw bytes.
func DataURI(mimeType string, data []byte) string {
	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data))
}

// ParseDataURI splits a base64 data URI into MIME type and bytes.
func ParseDataURI(uri string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return "", nil, fmt.Errorf("not a data URI")
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, fmt.Errorf("malformed data URI")
	}
	mimeType, isBase64 := strings.CutSuffix(meta, ";base64")
	if !isBase64 {
		return "", nil, fmt.Errorf("data URI is not base64 encoded")
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("failed to decode data URI: %w", err)
	}
	return mimeType, data, nil
}
