package image

import (
	"bytes"
	"fmt"
	goimage "image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// normalizeQuality is the JPEG quality used when shrinking payloads.
const normalizeQuality = 90

// NeedsNormalize reports whether in must be re-encoded before upload.
func NeedsNormalize(in Input, maxBytes int64) bool {
	return in.Size() > maxBytes || in.MimeType == mimeGIF
}

// Normalize returns in unchanged when it fits maxBytes and is not a GIF.
// Otherwise it re-encodes to JPEG at quality 90 with the same pixel
// dimensions. The result is not guaranteed to fit maxBytes; callers proceed
// with it either way. Animated GIFs keep only their first frame.
func Normalize(in Input, maxBytes int64) (Input, error) {
	if !NeedsNormalize(in, maxBytes) {
		return in, nil
	}

	src, _, err := goimage.Decode(bytes.NewReader(in.Data))
	if err != nil {
		return Input{}, &EncodingError{Name: in.Name, Err: fmt.Errorf("decode: %w", err)}
	}

	dst := flatten(src)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: normalizeQuality}); err != nil {
		return Input{}, &EncodingError{Name: in.Name, Err: fmt.Errorf("jpeg encode: %w", err)}
	}

	return Input{
		Name:     withExtension(in.Name, ".jpeg"),
		MimeType: mimeJPEG,
		Data:     buf.Bytes(),
	}, nil
}

// flatten draws src onto an opaque white canvas of the same size. JPEG has
// no alpha channel, so transparent regions become white rather than black.
func flatten(src goimage.Image) *goimage.RGBA {
	b := src.Bounds()
	dst := goimage.NewRGBA(goimage.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), goimage.White, goimage.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Over)
	return dst
}
