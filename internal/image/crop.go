package image

import (
	"bytes"
	"fmt"
	goimage "image"
	"image/png"
	"strconv"
	"strings"

	"golang.org/x/image/draw"
)

// CropRatios lists the aspect ratios offered for cropping.
var CropRatios = []string{"1:1", "4:3", "16:9", "3:4", "9:16"}

// ParseAspect parses "W:H" into its two positive terms.
func ParseAspect(ratio string) (int, int, error) {
	w, h, ok := strings.Cut(strings.TrimSpace(ratio), ":")
	if !ok {
		return 0, 0, &ValidationError{Msg: fmt.Sprintf("invalid aspect ratio %q, expected W:H", ratio)}
	}
	aw, errW := strconv.Atoi(w)
	ah, errH := strconv.Atoi(h)
	if errW != nil || errH != nil || aw <= 0 || ah <= 0 {
		return 0, 0, &ValidationError{Msg: fmt.Sprintf("invalid aspect ratio %q, expected W:H", ratio)}
	}
	return aw, ah, nil
}

// cropRect returns the largest rectangle of aspect aw:ah centred in b.
func cropRect(b goimage.Rectangle, aw, ah int) goimage.Rectangle {
	w, h := b.Dx(), b.Dy()
	cw, ch := w, w*ah/aw
	if ch > h {
		cw, ch = h*aw/ah, h
	}
	cw, ch = max(cw, 1), max(ch, 1)
	x0 := b.Min.X + (w-cw)/2
	y0 := b.Min.Y + (h-ch)/2
	return goimage.Rect(x0, y0, x0+cw, y0+ch)
}

// CropToAspect crops in to the centred region of the given ratio and
// returns it as a PNG.
func CropToAspect(in Input, ratio string) (Input, error) {
	aw, ah, err := ParseAspect(ratio)
	if err != nil {
		return Input{}, err
	}
	src, _, err := goimage.Decode(bytes.NewReader(in.Data))
	if err != nil {
		return Input{}, &EncodingError{Name: in.Name, Err: fmt.Errorf("decode: %w", err)}
	}

	r := cropRect(src.Bounds(), aw, ah)
	dst := goimage.NewNRGBA(goimage.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Copy(dst, goimage.Point{}, src, r, draw.Src, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return Input{}, &EncodingError{Name: in.Name, Err: fmt.Errorf("png encode: %w", err)}
	}
	return Input{
		Name:     withExtension(in.Name, ".png"),
		MimeType: mimePNG,
		Data:     buf.Bytes(),
	}, nil
}
