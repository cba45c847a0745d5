package image

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestGenerateFilename(t *testing.T) {
	now := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	tests := []struct {
		prompt string
		ext    string
		want   string
	}{
		{"make it brighter", ".png", "20260304-050607-make_it_brighter.png"},
		{"", ".jpeg", "20260304-050607-image.jpeg"},
		{"T字姿势", ".png", "20260304-050607-t.png"},
		{"!!!", ".png", "20260304-050607-image.png"},
		{"change the pose to a dynamic running motion please", ".png", "20260304-050607-change_the_pose_to_a_dynamic_r.png"},
		{"change the pose to a dynamicc running", ".png", "20260304-050607-change_the_pose_to_a_dynamicc.png"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := generateFilename(tt.prompt, tt.ext, now); got != tt.want {
				t.Errorf("generateFilename(%q) = %q, want %q", tt.prompt, got, tt.want)
			}
		})
	}
}

func TestDownloadDataURI(t *testing.T) {
	res, err := Download(context.Background(), nil, DataURI("image/png", []byte("pngbytes")))
	if err != nil {
		t.Fatalf("Download: %v", err)
	}
	if res.MimeType != "image/png" || string(res.Data) != "pngbytes" {
		t.Errorf("got %s %q", res.MimeType, res.Data)
	}
}

func TestDownloadHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing.png" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.Write([]byte("remote"))
	}))
	defer srv.Close()

	res, err := Download(context.Background(), srv.Client(), srv.URL+"/x.png")
	if err != nil {
		t.Fatalf("Download: %v", err)
	}
	if string(res.Data) != "remote" || res.MimeType != "image/png" {
		t.Errorf("got %s %q", res.MimeType, res.Data)
	}

	if _, err := Download(context.Background(), srv.Client(), srv.URL+"/missing.png"); err == nil || !strings.Contains(err.Error(), "404") {
		t.Errorf("expected 404 error, got %v", err)
	}
}

func TestSaveImage(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	path, err := SaveImage([]byte("data"), dir, "vintage sepia", "image/jpeg")
	if err != nil {
		t.Fatalf("SaveImage: %v", err)
	}
	if !strings.HasSuffix(path, "-vintage_sepia.jpeg") {
		t.Errorf("path = %q", path)
	}
	got, err := os.ReadFile(path)
	if err != nil || string(got) != "data" {
		t.Errorf("ReadFile = %q, %v", got, err)
	}
}
