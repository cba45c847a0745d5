package image

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"time"
)

const (
	falStorageEndpoint   = "https://rest.alpha.fal.ai/storage/upload"
	falUploadHTTPTimeout = 2 * time.Minute
)

// UploadOptions configures UploadEncoder.
type UploadOptions struct {
	Endpoint   string
	HTTPClient *http.Client
}

// UploadEncoder posts the image to the provider's storage endpoint and
// references it by the returned URL.
type UploadEncoder struct {
	endpoint   string
	httpClient *http.Client
}

func NewUploadEncoder(opts UploadOptions) *UploadEncoder {
	endpoint := opts.Endpoint
	if endpoint == "" {
		endpoint = falStorageEndpoint
	}
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: falUploadHTTPTimeout}
	}
	return &UploadEncoder{endpoint: endpoint, httpClient: client}
}

func (e *UploadEncoder) Name() string { return StrategyUpload }

func (e *UploadEncoder) Encode(ctx context.Context, in Input, credential string) (Ref, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, withExtension(in.Name, extensionFor(in.MimeType))))
	h.Set("Content-Type", in.MimeType)
	part, err := writer.CreatePart(h)
	if err != nil {
		return Ref{}, newUploadError(0, fmt.Sprintf("failed to create form part: %v", err), credential, err)
	}
	if _, err := part.Write(in.Data); err != nil {
		return Ref{}, newUploadError(0, fmt.Sprintf("failed to write image data: %v", err), credential, err)
	}
	if err := writer.Close(); err != nil {
		return Ref{}, newUploadError(0, fmt.Sprintf("failed to close multipart writer: %v", err), credential, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, e.endpoint, &body)
	if err != nil {
		return Ref{}, newUploadError(0, fmt.Sprintf("failed to create upload request: %v", err), credential, err)
	}
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())
	httpReq.Header.Set("Authorization", "Key "+credential)

	resp, err := e.httpClient.Do(httpReq)
	if err != nil {
		return Ref{}, newUploadError(0, fmt.Sprintf("upload request failed: %v", err), credential, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return Ref{}, newUploadError(resp.StatusCode, fmt.Sprintf("failed to read upload response: %v", err), credential, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := fmt.Sprintf("image upload failed with status %d: %s", resp.StatusCode, describeErrorBody(respBody, nil))
		return Ref{}, newUploadError(resp.StatusCode, msg, credential, nil)
	}

	var uploaded struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(respBody, &uploaded); err != nil || uploaded.URL == "" {
		return Ref{}, newUploadError(resp.StatusCode, "image upload response did not contain a url", credential, err)
	}
	return Ref{URI: uploaded.URL}, nil
}

func extensionFor(mimeType string) string {
	switch mimeType {
	case mimeJPEG:
		return ".jpeg"
	case mimeWebP:
		return ".webp"
	case mimeGIF:
		return ".gif"
	default:
		return ".png"
	}
}
