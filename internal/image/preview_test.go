package image

import (
	"bytes"
	goimage "image"
	"testing"
)

func TestDetectCapability(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want TerminalCapability
	}{
		{"kitty window", map[string]string{"KITTY_WINDOW_ID": "1"}, CapKitty},
		{"ghostty", map[string]string{"TERM_PROGRAM": "ghostty"}, CapKitty},
		{"iterm", map[string]string{"TERM_PROGRAM": "iTerm.app"}, CapITerm},
		{"wezterm", map[string]string{"TERM_PROGRAM": "WezTerm"}, CapITerm},
		{"sixel term", map[string]string{"TERM": "xterm-sixel"}, CapSixel},
		{"plain xterm", map[string]string{"TERM": "xterm-256color"}, CapNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range []string{"KITTY_WINDOW_ID", "TERM", "TERM_PROGRAM", "LC_TERMINAL"} {
				t.Setenv(k, "")
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if got := DetectCapability(); got != tt.want {
				t.Errorf("DetectCapability() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestPreviewWithoutCapabilityWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	if err := previewWith(&buf, []byte("not an image"), CapNone); err != nil {
		t.Fatalf("previewWith: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("wrote %d bytes", buf.Len())
	}
}

func TestPreviewITerm(t *testing.T) {
	var buf bytes.Buffer
	if err := previewWith(&buf, encodePNG(t, 1200, 600, false), CapITerm); err != nil {
		t.Fatalf("previewWith: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("nothing written")
	}
}

func TestPreviewRejectsGarbage(t *testing.T) {
	if err := previewWith(&bytes.Buffer{}, []byte("garbage"), CapKitty); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestScaleToWidth(t *testing.T) {
	in := goimage.NewRGBA(goimage.Rect(0, 0, 1600, 400))
	out := scaleToWidth(in, 800)
	if b := out.Bounds(); b.Dx() != 800 || b.Dy() != 200 {
		t.Errorf("bounds = %v", b)
	}
	if scaleToWidth(in, 2000) != goimage.Image(in) {
		t.Error("small image should be returned unchanged")
	}
}

func TestScaleToWidthKeepsOneRow(t *testing.T) {
	in := goimage.NewRGBA(goimage.Rect(0, 0, 8000, 1))
	out := scaleToWidth(in, 800)
	if b := out.Bounds(); b.Dx() != 800 || b.Dy() != 1 {
		t.Errorf("bounds = %v, want 800x1", b)
	}
}
