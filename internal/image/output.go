package image

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

var (
	unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9_-]`)
	repeatedUnderscores = regexp.MustCompile(`_+`)
)

// Result is a downloaded generated image.
type Result struct {
	Data     []byte
	MimeType string
}

// Download fetches the generated image. With sync mode the provider may
// return a data URI instead of a hosted URL; both are handled.
func Download(ctx context.Context, client *http.Client, url string) (*Result, error) {
	if strings.HasPrefix(url, "data:") {
		mimeType, data, err := ParseDataURI(url)
		if err != nil {
			return nil, err
		}
		return &Result{Data: data, MimeType: mimeType}, nil
	}

	if client == nil {
		client = http.DefaultClient
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create download request: %w", err)
	}
	resp, err := client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download failed with status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read image data: %w", err)
	}

	mimeType := resp.Header.Get("Content-Type")
	if !strings.HasPrefix(mimeType, "image/") {
		mimeType = http.DetectContentType(data)
	}
	return &Result{Data: data, MimeType: mimeType}, nil
}

// SaveImage writes image data into outputDir and returns the path.
func SaveImage(data []byte, outputDir, prompt, mimeType string) (string, error) {
	dir := expandPath(outputDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(dir, generateFilename(prompt, extensionFor(mimeType), time.Now()))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write image: %w", err)
	}
	return path, nil
}

// expandPath expands ~ to the home directory
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

func generateFilename(prompt, ext string, now time.Time) string {
	safe := sanitizeForFilename(prompt)
	if len(safe) > 30 {
		safe = strings.TrimRight(safe[:30], "_-")
	}
	if safe == "" {
		safe = "image"
	}
	return fmt.Sprintf("%s-%s%s", now.Format("20060102-150405"), safe, ext)
}

func sanitizeForFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = unsafeFilenameChars.ReplaceAllString(s, "")
	s = repeatedUnderscores.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	return strings.ToLower(s)
}
