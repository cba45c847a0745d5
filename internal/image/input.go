package image

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

const (
	mimeJPEG = "image/jpeg"
	mimePNG  = "image/png"
	mimeWebP = "image/webp"
	mimeGIF  = "image/gif"
)

// allowedMimeTypes lists what may be sent upstream. GIF is accepted on input
// but always re-encoded before it leaves the process.
var allowedMimeTypes = map[string]bool{
	mimeJPEG: true,
	mimePNG:  true,
	mimeWebP: true,
	mimeGIF:  true,
}

// Input is a single image selected by the user. It is never mutated; the
// normalizer returns a new Input when it re-encodes.
type Input struct {
	Name     string // display name, used for upload filenames
	MimeType string
	Data     []byte
}

// Size returns the byte length of the image.
func (in Input) Size() int64 {
	return int64(len(in.Data))
}

// LoadInput reads an image from disk and detects its MIME type.
func LoadInput(path string) (Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Input{}, &ReadError{Name: path, Err: err}
	}
	return NewInput(filepath.Base(path), data), nil
}

// NewInput wraps in-memory image bytes. The MIME type is sniffed from the
// content and falls back to the file extension.
func NewInput(name string, data []byte) Input {
	return Input{Name: name, MimeType: detectMimeType(name, data), Data: data}
}

// ValidateMime rejects anything outside the allow-list.
func ValidateMime(in Input) error {
	if !allowedMimeTypes[in.MimeType] {
		return &ValidationError{Msg: fmt.Sprintf("unsupported image type %q for %s (allowed: jpeg, png, webp, gif)", in.MimeType, in.Name)}
	}
	return nil
}

func detectMimeType(name string, data []byte) string {
	if len(data) > 0 {
		sniffed := http.DetectContentType(data)
		if strings.HasPrefix(sniffed, "image/") {
			return sniffed
		}
	}
	return getMimeType(name)
}

// getMimeType maps a file extension to a MIME type. Unknown extensions map to
// the empty string so ValidateMime can reject them.
func getMimeType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return mimePNG
	case ".jpg", ".jpeg":
		return mimeJPEG
	case ".gif":
		return mimeGIF
	case ".webp":
		return mimeWebP
	default:
		return ""
	}
}

// withExtension swaps the extension of a display name.
func withExtension(name, ext string) string {
	if name == "" {
		return "image" + ext
	}
	return strings.TrimSuffix(name, filepath.Ext(name)) + ext
}
