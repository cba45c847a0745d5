package image

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
)

func TestNewObjectStoreEncoderValidation(t *testing.T) {
	if _, err := NewObjectStoreEncoder(ObjectStoreOptions{Endpoint: "localhost:9000"}); err == nil {
		t.Error("expected error without bucket")
	}
	if _, err := NewObjectStoreEncoder(ObjectStoreOptions{Bucket: "b"}); err == nil {
		t.Error("expected error without endpoint")
	}
	enc, err := NewObjectStoreEncoder(ObjectStoreOptions{Endpoint: "https://s3.example.com", Bucket: "b", Region: "us-east-1"})
	if err != nil {
		t.Fatalf("NewObjectStoreEncoder: %v", err)
	}
	if enc.opts.Expiry != defaultPresignExpiry {
		t.Errorf("Expiry = %s", enc.opts.Expiry)
	}
}

// readObjectBody returns the object bytes of a PUT, unwrapping the SigV4
// streaming framing minio-go uses over plain HTTP:
// "<hex-size>;chunk-signature=<sig>\r\n<data>\r\n" repeated, ending with a
// zero-size chunk.
func readObjectBody(r *http.Request) (string, error) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		return "", err
	}
	decodedLen := r.Header.Get("X-Amz-Decoded-Content-Length")
	if decodedLen == "" {
		return string(raw), nil
	}

	var out bytes.Buffer
	rest := raw
	for {
		header, after, ok := bytes.Cut(rest, []byte("\r\n"))
		if !ok {
			return "", errors.New("truncated chunk header")
		}
		sizeHex, _, _ := bytes.Cut(header, []byte(";"))
		n, err := strconv.ParseInt(string(sizeHex), 16, 64)
		if err != nil {
			return "", err
		}
		if n == 0 {
			break
		}
		if int64(len(after)) < n {
			return "", errors.New("truncated chunk data")
		}
		out.Write(after[:n])
		rest = bytes.TrimPrefix(after[n:], []byte("\r\n"))
	}

	if want, err := strconv.Atoi(decodedLen); err != nil || want != out.Len() {
		return "", errors.New("decoded length mismatch: header " + decodedLen + ", got " + strconv.Itoa(out.Len()))
	}
	return out.String(), nil
}

func TestObjectStoreEncoderPutsObject(t *testing.T) {
	var (
		mu   sync.Mutex
		puts = map[string]string{}
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut {
			data, err := readObjectBody(r)
			if err != nil {
				t.Errorf("read put body: %v", err)
			}
			mu.Lock()
			puts[r.URL.Path] = string(data)
			mu.Unlock()
		}
		w.Header().Set("ETag", `"d41d8cd98f00b204e9800998ecf8427e"`)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	enc, err := NewObjectStoreEncoder(ObjectStoreOptions{
		Endpoint:  srv.URL,
		AccessKey: "access",
		SecretKey: "secret",
		Bucket:    "inputs",
		Region:    "us-east-1",
		Prefix:    "/edits/",
	})
	if err != nil {
		t.Fatalf("NewObjectStoreEncoder: %v", err)
	}

	ref, err := enc.Encode(context.Background(), testInput("a.png"), testCredential)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if ref.Inline {
		t.Error("object store refs are not inline")
	}
	if !strings.HasPrefix(ref.URI, srv.URL+"/inputs/edits/") || !strings.Contains(ref.URI, ".png?") {
		t.Errorf("URI = %q, want presigned object url", ref.URI)
	}
	if !strings.Contains(ref.URI, "X-Amz-Signature=") {
		t.Errorf("URI = %q, missing signature", ref.URI)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(puts) != 1 {
		t.Fatalf("puts = %v, want exactly one", puts)
	}
	for path, data := range puts {
		if !strings.HasPrefix(path, "/inputs/edits/") {
			t.Errorf("put path = %q", path)
		}
		if data != "png:a.png" {
			t.Errorf("put data = %q", data)
		}
	}
}

func TestObjectStoreEncoderPublicURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("ETag", `"abc"`)
	}))
	defer srv.Close()

	enc, err := NewObjectStoreEncoder(ObjectStoreOptions{
		Endpoint:  srv.URL,
		Bucket:    "inputs",
		Region:    "us-east-1",
		PublicURL: "https://cdn.example.com/inputs/",
	})
	if err != nil {
		t.Fatalf("NewObjectStoreEncoder: %v", err)
	}
	ref, err := enc.Encode(context.Background(), Input{Name: "a.jpg", MimeType: "image/jpeg", Data: []byte("x")}, testCredential)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !strings.HasPrefix(ref.URI, "https://cdn.example.com/inputs/") || !strings.HasSuffix(ref.URI, ".jpeg") {
		t.Errorf("URI = %q", ref.URI)
	}
}

func TestObjectStoreEncoderFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/xml")
		w.WriteHeader(http.StatusForbidden)
		io.WriteString(w, `<?xml version="1.0" encoding="UTF-8"?><Error><Code>AccessDenied</Code><Message>Access Denied</Message></Error>`)
	}))
	defer srv.Close()

	enc, err := NewObjectStoreEncoder(ObjectStoreOptions{Endpoint: srv.URL, Bucket: "inputs", Region: "us-east-1"})
	if err != nil {
		t.Fatalf("NewObjectStoreEncoder: %v", err)
	}
	_, err = enc.Encode(context.Background(), testInput("a.png"), testCredential)
	var uErr *UploadError
	if !errors.As(err, &uErr) {
		t.Fatalf("expected UploadError, got %v", err)
	}
}
