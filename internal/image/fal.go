package image

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const falEditEndpoint = "https://fal.run/fal-ai/qwen-image-edit-plus"

// ClientOptions configures Client. Zero values pick the defaults.
type ClientOptions struct {
	Endpoint   string
	HTTPClient *http.Client
	// Timeout applies only when HTTPClient is nil. Zero leaves the transport
	// default in place.
	Timeout time.Duration
	Logger  zerolog.Logger
}

// Client sends edit requests to the fal image-edit endpoint.
type Client struct {
	endpoint   string
	httpClient *http.Client
	logger     zerolog.Logger
}

func NewClient(opts ClientOptions) *Client {
	endpoint := strings.TrimSpace(opts.Endpoint)
	if endpoint == "" {
		endpoint = falEditEndpoint
	}
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: opts.Timeout}
	}
	return &Client{endpoint: endpoint, httpClient: client, logger: opts.Logger}
}

// Endpoint returns the URL requests are sent to.
func (c *Client) Endpoint() string { return c.endpoint }

type falImage struct {
	URL         string `json:"url"`
	ContentType string `json:"content_type,omitempty"`
	Width       int    `json:"width,omitempty"`
	Height      int    `json:"height,omitempty"`
}

type falResponse struct {
	Images []falImage `json:"images"`
	Seed   *int64     `json:"seed,omitempty"`
}

// Send performs one POST and returns the URL of the first generated image.
// Every error it returns has the credential scrubbed from its message.
func (c *Client) Send(ctx context.Context, body *EditRequest, credential string) (string, error) {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	c.logger.Debug().
		Str("endpoint", c.endpoint).
		Str("kind", body.Kind()).
		Str("prompt", body.Prompt).
		Int("images", len(body.ImageURLs)).
		Str("image_size", body.ImageSize.String()).
		Int("body_bytes", len(jsonBody)).
		Msg("sending edit request")

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(jsonBody))
	if err != nil {
		return "", newTransportError(0, fmt.Sprintf("failed to create request: %v", err), credential, err)
	}
	httpReq.Header.Set("Authorization", "Key "+credential)
	httpReq.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		terr := newTransportError(0, fmt.Sprintf("fal API request failed: %v", err), credential, err)
		c.logger.Error().Str("kind", body.Kind()).Msg(terr.Message)
		return "", terr
	}
	defer resp.Body.Close()

	respBody, readErr := io.ReadAll(resp.Body)

	c.logger.Debug().
		Int("status", resp.StatusCode).
		Str("content_type", resp.Header.Get("Content-Type")).
		Int("body_len", len(respBody)).
		Dur("elapsed", time.Since(start)).
		Msg("received response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := fmt.Sprintf("fal API request failed with status %d: %s", resp.StatusCode, describeErrorBody(respBody, readErr))
		terr := newTransportError(resp.StatusCode, msg, credential, nil)
		c.logger.Error().Str("kind", body.Kind()).Msg(terr.Message)
		return "", terr
	}
	if readErr != nil {
		return "", newTransportError(resp.StatusCode, fmt.Sprintf("failed to read response: %v", readErr), credential, readErr)
	}

	var result falResponse
	if err := json.Unmarshal(respBody, &result); err != nil || len(result.Images) == 0 || result.Images[0].URL == "" {
		c.logger.Error().
			Str("kind", body.Kind()).
			Str("body", truncateDebugBody(respBody, 512)).
			Msg("response did not contain an image")
		return "", &EmptyResultError{Operation: body.Kind()}
	}
	return result.Images[0].URL, nil
}

// truncateDebugBody returns a printable form of body capped at maxLen bytes.
// Binary payloads are summarized.
func truncateDebugBody(body []byte, maxLen int) string {
	if len(body) == 0 {
		return "(empty)"
	}
	checkLen := min(len(body), 512)
	for _, b := range body[:checkLen] {
		if b < 0x20 && b != '\n' && b != '\r' && b != '\t' {
			return fmt.Sprintf("(binary data, %d bytes)", len(body))
		}
	}
	if len(body) > maxLen {
		return string(body[:maxLen]) + fmt.Sprintf("...[truncated, %d total bytes]", len(body))
	}
	return string(body)
}
