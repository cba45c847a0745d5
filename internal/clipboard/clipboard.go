package clipboard

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// lookPath is replaced in tests.
var lookPath = exec.LookPath

// tool is a clipboard utility invocation.
type tool struct {
	name string
	args []string
}

func pasteTools(goos string) []tool {
	switch goos {
	case "darwin":
		return []tool{{name: "pngpaste", args: []string{"-"}}}
	case "linux":
		return []tool{
			{name: "wl-paste", args: []string{"--type", "image/png"}},
			{name: "xclip", args: []string{"-selection", "clipboard", "-t", "image/png", "-o"}},
		}
	}
	return nil
}

func copyTools(goos, mimeType string) []tool {
	if mimeType == "" {
		mimeType = "image/png"
	}
	switch goos {
	case "linux":
		return []tool{
			{name: "wl-copy", args: []string{"--type", mimeType}},
			{name: "xclip", args: []string{"-selection", "clipboard", "-t", mimeType}},
		}
	}
	return nil
}

// available returns the first tool present on PATH.
func available(tools []tool) (tool, bool) {
	for _, t := range tools {
		if _, err := lookPath(t.name); err == nil {
			return t, true
		}
	}
	return tool{}, false
}

// ReadImage reads image data from the system clipboard.
func ReadImage(ctx context.Context) ([]byte, error) {
	tools := pasteTools(runtime.GOOS)
	if tools == nil {
		return nil, fmt.Errorf("clipboard read not supported on %s", runtime.GOOS)
	}
	for _, t := range tools {
		if _, err := lookPath(t.name); err != nil {
			continue
		}
		var out bytes.Buffer
		cmd := exec.CommandContext(ctx, t.name, t.args...)
		cmd.Stdout = &out
		if err := cmd.Run(); err == nil && out.Len() > 0 {
			return out.Bytes(), nil
		}
	}
	if runtime.GOOS == "darwin" {
		return nil, fmt.Errorf("clipboard does not contain an image (install pngpaste)")
	}
	return nil, fmt.Errorf("clipboard does not contain an image (or no clipboard utility found)")
}

// CopyImage copies image data to the system clipboard.
func CopyImage(ctx context.Context, data []byte, mimeType string) error {
	if runtime.GOOS == "darwin" {
		return copyImageMacOS(ctx, data)
	}
	t, ok := available(copyTools(runtime.GOOS, mimeType))
	if !ok {
		if copyTools(runtime.GOOS, mimeType) == nil {
			return fmt.Errorf("clipboard not supported on %s", runtime.GOOS)
		}
		return fmt.Errorf("no clipboard utility found (install wl-copy or xclip)")
	}
	cmd := exec.CommandContext(ctx, t.name, t.args...)
	cmd.Stdin = bytes.NewReader(data)
	return cmd.Run()
}

// copyImageMacOS goes through a temp file: osascript reads pictures from
// disk only.
func copyImageMacOS(ctx context.Context, data []byte) error {
	f, err := os.CreateTemp("", "imgedit-*.img")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	path := f.Name()
	defer os.Remove(path)
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	f.Close()

	script := fmt.Sprintf(`set the clipboard to (read (POSIX file "%s") as TIFF picture)`, escapeAppleScript(path))
	return exec.CommandContext(ctx, "osascript", "-e", script).Run()
}

func escapeAppleScript(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
}
