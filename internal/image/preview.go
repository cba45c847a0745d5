package image

import (
	"bytes"
	"fmt"
	goimage "image"
	"image/color/palette"
	"io"
	"os"
	"strings"

	"github.com/BourgeoisBear/rasterm"
	"golang.org/x/image/draw"
)

const previewMaxWidth = 800

// TerminalCapability is the inline image protocol a terminal speaks.
type TerminalCapability int

const (
	CapNone TerminalCapability = iota
	CapKitty
	CapITerm
	CapSixel
)

func (c TerminalCapability) String() string {
	switch c {
	case CapKitty:
		return "kitty"
	case CapITerm:
		return "iterm"
	case CapSixel:
		return "sixel"
	default:
		return "none"
	}
}

// DetectCapability guesses the protocol from the environment.
func DetectCapability() TerminalCapability {
	termName := os.Getenv("TERM")
	termProgram := os.Getenv("TERM_PROGRAM")
	switch {
	case os.Getenv("KITTY_WINDOW_ID") != "", strings.Contains(termName, "kitty"), termProgram == "ghostty":
		return CapKitty
	case termProgram == "iTerm.app", termProgram == "WezTerm", os.Getenv("LC_TERMINAL") == "iTerm2":
		return CapITerm
	case strings.Contains(termName, "sixel"), strings.Contains(termName, "mlterm"):
		return CapSixel
	}
	return CapNone
}

// Preview writes data as an inline image. It is a no-op on terminals
// without an image protocol.
func Preview(w io.Writer, data []byte) error {
	return previewWith(w, data, DetectCapability())
}

func previewWith(w io.Writer, data []byte, c TerminalCapability) error {
	if c == CapNone {
		return nil
	}
	img, _, err := goimage.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to decode image: %w", err)
	}
	img = scaleToWidth(img, previewMaxWidth)

	switch c {
	case CapKitty:
		return rasterm.KittyWriteImage(w, img, rasterm.KittyImgOpts{})
	case CapITerm:
		return rasterm.ItermWriteImage(w, img)
	case CapSixel:
		b := img.Bounds()
		paletted := goimage.NewPaletted(b, palette.WebSafe)
		draw.FloydSteinberg.Draw(paletted, b, img, b.Min)
		return rasterm.SixelWriteImage(w, paletted)
	}
	return nil
}

func scaleToWidth(img goimage.Image, maxWidth int) goimage.Image {
	b := img.Bounds()
	if b.Dx() <= maxWidth {
		return img
	}
	h := max(b.Dy()*maxWidth/b.Dx(), 1)
	dst := goimage.NewRGBA(goimage.Rect(0, 0, maxWidth, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}
