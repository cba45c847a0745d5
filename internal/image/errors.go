package image

import (
	"fmt"

	"github.com/samsaffron/imgedit/internal/redact"
)

// ValidationError reports malformed caller input. It is raised before any
// network call.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// EncodingError reports a local decode or re-encode failure.
type EncodingError struct {
	Name string
	Err  error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("failed to re-encode %s: %v", e.Name, e.Err)
}

func (e *EncodingError) Unwrap() error { return e.Err }

// ReadError reports a failure reading image bytes.
type ReadError struct {
	Name string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read image %s: %v", e.Name, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// UploadError reports a failed upload. Message is already redacted.
type UploadError struct {
	Status  int
	Message string
	Err     error
}

func (e *UploadError) Error() string { return e.Message }

func (e *UploadError) Unwrap() error { return e.Err }

func newUploadError(status int, msg, credential string, err error) *UploadError {
	return &UploadError{Status: status, Message: redact.Redact(msg, credential), Err: err}
}

// TransportError reports a failed generation call: either a non-success
// HTTP status, or Status 0 when no response arrived. Message is already
// redacted.
type TransportError struct {
	Status  int
	Message string
	Err     error
}

func (e *TransportError) Error() string { return e.Message }

func (e *TransportError) Unwrap() error { return e.Err }

func newTransportError(status int, msg, credential string, err error) *TransportError {
	return &TransportError{Status: status, Message: redact.Redact(msg, credential), Err: err}
}

// EmptyResultError means the provider answered with success but no image.
type EmptyResultError struct {
	Operation string
}

func (e *EmptyResultError) Error() string {
	if e.Operation == "" {
		return "the model did not return an image"
	}
	return fmt.Sprintf("the model did not return an image for the %s", e.Operation)
}
