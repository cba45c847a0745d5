package redact

import (
	"io"
	"strings"
	"sync"
)

// Placeholder replaces the secret in redacted text.
const Placeholder = "[REDACTED]"

// maskRunes are tried in order when the placeholder itself could recombine
// into the secret.
const maskRunes = "*#~?_x"

// Redact replaces every literal occurrence of secret in text.
// The result never contains secret, and redacting it again is a no-op.
func Redact(text, secret string) string {
	if secret == "" || !strings.Contains(text, secret) {
		return text
	}
	out := strings.ReplaceAll(text, secret, Placeholder)
	if !strings.Contains(out, secret) {
		return out
	}
	// A mask made only of runes absent from the secret cannot take part in
	// a new match, so a single pass is enough.
	return strings.ReplaceAll(text, secret, maskFor(secret))
}

func maskFor(secret string) string {
	for _, r := range maskRunes {
		if !strings.ContainsRune(secret, r) {
			return strings.Repeat(string(r), 8)
		}
	}
	for r := rune(0x2588); ; r++ {
		if !strings.ContainsRune(secret, r) {
			return strings.Repeat(string(r), 8)
		}
	}
}

// Writer redacts a secret from everything written through it.
// Each Write is treated as a complete record, which matches how zerolog
// emits one event per call.
type Writer struct {
	mu     sync.Mutex
	w      io.Writer
	secret string
}

// NewWriter wraps w so that secret never reaches it.
func NewWriter(w io.Writer, secret string) *Writer {
	return &Writer{w: w, secret: secret}
}

func (rw *Writer) Write(p []byte) (int, error) {
	rw.mu.Lock()
	defer rw.mu.Unlock()
	if rw.secret == "" {
		return rw.w.Write(p)
	}
	if _, err := io.WriteString(rw.w, Redact(string(p), rw.secret)); err != nil {
		return 0, err
	}
	return len(p), nil
}
