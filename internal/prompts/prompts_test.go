package prompts

import (
	"testing"
	"unicode/utf8"
)

func TestGet(t *testing.T) {
	c, err := Get("")
	if err != nil {
		t.Fatalf("Get default: %v", err)
	}
	if len(c) == 0 || c[0].Name != "Perspective" {
		t.Errorf("default catalog starts with %v", c[0].Name)
	}
	if _, err := Get("GEMINI"); err != nil {
		t.Errorf("Get(GEMINI): %v", err)
	}
	if _, err := Get("dalle"); err == nil {
		t.Error("expected error for unknown catalog")
	}
}

func TestLookup(t *testing.T) {
	c, _ := Get("qwen")
	p, ok := c.Lookup("  t-POSE ")
	if !ok || p.Prompt != "T字姿势" {
		t.Errorf("Lookup = %+v, %v", p, ok)
	}
	if _, ok := c.Lookup("Golden Hour"); ok {
		t.Error("Golden Hour is gemini-only")
	}
}

func TestResolve(t *testing.T) {
	c, _ := Get("gemini")
	got, err := c.Resolve([]string{"Brighter", "Sepia Tone"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(got) != 2 || got[1] != "Apply a classic sepia tone filter for a vintage look." {
		t.Errorf("Resolve = %v", got)
	}
	if _, err := c.Resolve([]string{"Nope"}); err == nil {
		t.Error("expected error for unknown prompt")
	}
}

func TestCombine(t *testing.T) {
	tests := []struct {
		name     string
		selected []string
		extra    string
		want     string
	}{
		{"extra only", nil, "make it brighter", "make it brighter"},
		{"selected only", []string{"T字姿势", "看向相机"}, "", "T字姿势, 看向相机"},
		{"both", []string{"提高亮度"}, "keep the hat", "提高亮度, keep the hat"},
		{"dedupe and trim", []string{" 提高亮度 ", "提高亮度", ""}, "提高亮度", "提高亮度"},
		{"nothing", nil, "  ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Combine(tt.selected, tt.extra); got != tt.want {
				t.Errorf("Combine = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCatalogPromptsFitEditLimit(t *testing.T) {
	for _, name := range Names() {
		c, _ := Get(name)
		for _, cat := range c {
			for _, p := range cat.Prompts {
				if p.Name == "" || p.Prompt == "" {
					t.Errorf("%s/%s: empty entry", name, cat.Name)
				}
				if n := utf8.RuneCountInString(p.Prompt); n > 800 {
					t.Errorf("%s/%s: %d characters", name, p.Name, n)
				}
			}
		}
	}
}
