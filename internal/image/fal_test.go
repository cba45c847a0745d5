package image

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

const testCredential = "11111111-2222-3333-4444-555555555555:s3cr3t"

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(ClientOptions{Endpoint: srv.URL, HTTPClient: srv.Client(), Logger: zerolog.Nop()})
}

func testRequest(t *testing.T) *EditRequest {
	t.Helper()
	req, err := BuildRequest(FilterOp{Image: testInput("a.png"), Style: "vintage sepia"}, []Ref{{URI: "u"}}, SizeSpec{Preset: "square_hd"})
	if err != nil {
		t.Fatalf("BuildRequest: %v", err)
	}
	return req
}

func TestClientSendSuccess(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		if got := r.Header.Get("Authorization"); got != "Key "+testCredential {
			t.Errorf("Authorization = %q", got)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("Content-Type = %q", got)
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if body["image_size"] != "square_hd" {
			t.Errorf("image_size = %v", body["image_size"])
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"images":[{"url":"https://cdn/x.png","content_type":"image/png"},{"url":"https://cdn/y.png"}],"seed":7}`)
	})

	url, err := client.Send(context.Background(), testRequest(t), testCredential)
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if url != "https://cdn/x.png" {
		t.Errorf("url = %q, want first image", url)
	}
}

func TestClientSendEmptyResult(t *testing.T) {
	bodies := []string{
		`{"images":[]}`,
		`{"images":[{"content_type":"image/png"}]}`,
		`{}`,
		`not json`,
	}
	for _, body := range bodies {
		t.Run(body, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				io.WriteString(w, body)
			})
			_, err := client.Send(context.Background(), testRequest(t), testCredential)
			var empty *EmptyResultError
			if !errors.As(err, &empty) {
				t.Fatalf("expected EmptyResultError, got %v", err)
			}
			if !strings.Contains(err.Error(), "did not return an image for the filter") {
				t.Errorf("message = %q", err.Error())
			}
		})
	}
}

func TestClientSendErrorStatus(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		contentType string
		body        string
		want        string
	}{
		{"detail list", 422, "application/json", `{"detail":[{"type":"value_error","msg":"bad size"}]}`, "status 422: value_error: bad size"},
		{"error field", 401, "application/json", `{"error":"invalid key ` + testCredential + `"}`, "status 401: invalid key [REDACTED]"},
		{"detail string", 403, "application/json", `{"detail":"Forbidden"}`, "status 403: Forbidden"},
		{"text", 502, "text/plain", "upstream unavailable", "status 502: upstream unavailable"},
		{"empty", 500, "text/plain", "", "status 500: unknown error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", tt.contentType)
				w.WriteHeader(tt.status)
				io.WriteString(w, tt.body)
			})
			_, err := client.Send(context.Background(), testRequest(t), testCredential)
			var terr *TransportError
			if !errors.As(err, &terr) {
				t.Fatalf("expected TransportError, got %v", err)
			}
			if terr.Status != tt.status {
				t.Errorf("Status = %d, want %d", terr.Status, tt.status)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("message = %q, want substring %q", err.Error(), tt.want)
			}
			if strings.Contains(err.Error(), testCredential) {
				t.Errorf("credential leaked: %q", err.Error())
			}
		})
	}
}

func TestClientSendNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := srv.URL
	srv.Close()

	client := NewClient(ClientOptions{Endpoint: endpoint, Logger: zerolog.Nop()})
	_, err := client.Send(context.Background(), testRequest(t), testCredential)
	var terr *TransportError
	if !errors.As(err, &terr) {
		t.Fatalf("expected TransportError, got %v", err)
	}
	if terr.Status != 0 {
		t.Errorf("Status = %d, want 0", terr.Status)
	}
}

func TestNewClientDefaults(t *testing.T) {
	c := NewClient(ClientOptions{})
	if c.Endpoint() != falEditEndpoint {
		t.Errorf("Endpoint = %q", c.Endpoint())
	}
	if c.httpClient.Timeout != 0 {
		t.Errorf("Timeout = %s, want transport default", c.httpClient.Timeout)
	}
}
