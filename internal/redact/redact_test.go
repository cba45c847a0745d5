package redact

import (
	"bytes"
	"strings"
	"testing"
)

func TestRedact(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		secret string
		want   string
	}{
		{"no secret", "status 401", "", "status 401"},
		{"absent", "status 401", "abc:def", "status 401"},
		{"single", "bad key abc:def", "abc:def", "bad key [REDACTED]"},
		{"repeated", "abc:def/abc:def", "abc:def", "[REDACTED]/[REDACTED]"},
		{"whole string", "abc:def", "abc:def", "[REDACTED]"},
		{"unicode", "schlüssel=ключ", "ключ", "schlüssel=[REDACTED]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Redact(tt.text, tt.secret); got != tt.want {
				t.Errorf("Redact(%q, %q) = %q, want %q", tt.text, tt.secret, got, tt.want)
			}
		})
	}
}

func TestRedactIdempotent(t *testing.T) {
	// Secrets chosen to collide with the placeholder text.
	secrets := []string{"k", "E", "]x", "RED", "[REDACTED]", "D]", "*", "***", "*#~?_x", "abc:def"}
	texts := []string{
		"",
		"plain text",
		"E]xk RED*D]",
		"[REDACTED]x and [REDACTED]",
		"***#~?_x*#~?_x",
		"abc:defabc:def abc:de",
	}
	for _, secret := range secrets {
		for _, text := range texts {
			for _, s := range []string{text, text + secret, secret + text + secret} {
				once := Redact(s, secret)
				if strings.Contains(once, secret) {
					t.Errorf("Redact(%q, %q) = %q still contains secret", s, secret, once)
				}
				if twice := Redact(once, secret); twice != once {
					t.Errorf("Redact not idempotent for %q/%q: %q then %q", s, secret, once, twice)
				}
			}
		}
	}
}

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, "sk-123")
	msg := []byte(`{"level":"error","message":"status 401: invalid key sk-123"}` + "\n")
	n, err := w.Write(msg)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if n != len(msg) {
		t.Errorf("n = %d, want %d", n, len(msg))
	}
	if strings.Contains(buf.String(), "sk-123") {
		t.Errorf("secret leaked: %s", buf.String())
	}
	if !strings.Contains(buf.String(), Placeholder) {
		t.Errorf("expected placeholder in %s", buf.String())
	}
}
