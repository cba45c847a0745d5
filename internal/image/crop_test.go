package image

import (
	"bytes"
	"errors"
	goimage "image"
	"image/png"
	"testing"
)

func TestCropRect(t *testing.T) {
	tests := []struct {
		name   string
		bounds goimage.Rectangle
		aw, ah int
		want   goimage.Rectangle
	}{
		{"square from landscape", goimage.Rect(0, 0, 400, 200), 1, 1, goimage.Rect(100, 0, 300, 200)},
		{"16:9 from square", goimage.Rect(0, 0, 160, 160), 16, 9, goimage.Rect(0, 35, 160, 125)},
		{"9:16 from square", goimage.Rect(0, 0, 160, 160), 9, 16, goimage.Rect(35, 0, 125, 160)},
		{"offset bounds", goimage.Rect(10, 10, 50, 30), 1, 1, goimage.Rect(20, 10, 40, 30)},
		{"already matching", goimage.Rect(0, 0, 400, 300), 4, 3, goimage.Rect(0, 0, 400, 300)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cropRect(tt.bounds, tt.aw, tt.ah); got != tt.want {
				t.Errorf("cropRect(%v, %d:%d) = %v, want %v", tt.bounds, tt.aw, tt.ah, got, tt.want)
			}
		})
	}
}

func TestCropToAspect(t *testing.T) {
	in := NewInput("shot.jpg", encodePNG(t, 320, 240, false))
	out, err := CropToAspect(in, "16:9")
	if err != nil {
		t.Fatalf("CropToAspect: %v", err)
	}
	if out.Name != "shot.png" || out.MimeType != "image/png" {
		t.Errorf("got %s %s", out.Name, out.MimeType)
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(out.Data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cfg.Width != 320 || cfg.Height != 180 {
		t.Errorf("dimensions = %dx%d, want 320x180", cfg.Width, cfg.Height)
	}
}

func TestParseAspectInvalid(t *testing.T) {
	for _, ratio := range []string{"", "16", "16:0", "a:b", "-1:2", "16/9"} {
		t.Run(ratio, func(t *testing.T) {
			_, _, err := ParseAspect(ratio)
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Errorf("ParseAspect(%q) err = %v, want ValidationError", ratio, err)
			}
		})
	}
}
