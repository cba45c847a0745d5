// Package prompts holds the quick-prompt catalogs offered next to the
// free-text instruction.
package prompts

import (
	"fmt"
	"sort"
	"strings"
)

// Prompt is a named, ready-made instruction.
type Prompt struct {
	Name   string
	Prompt string
}

// Category groups related prompts.
type Category struct {
	Name    string
	Prompts []Prompt
}

// Catalog is an ordered list of categories.
type Catalog []Category

// DefaultCatalog is used when no catalog is configured.
const DefaultCatalog = "qwen"

var catalogs = map[string]Catalog{
	"qwen":   qwenCatalog,
	"gemini": geminiCatalog,
}

// Names returns the available catalog names.
func Names() []string {
	names := make([]string, 0, len(catalogs))
	for name := range catalogs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns a catalog by name.
func Get(name string) (Catalog, error) {
	if name == "" {
		name = DefaultCatalog
	}
	c, ok := catalogs[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown prompt catalog: %s (valid: %s)", name, strings.Join(Names(), ", "))
	}
	return c, nil
}

// Lookup finds a prompt by name, case-insensitively, across all categories.
func (c Catalog) Lookup(name string) (Prompt, bool) {
	for _, cat := range c {
		for _, p := range cat.Prompts {
			if strings.EqualFold(p.Name, strings.TrimSpace(name)) {
				return p, true
			}
		}
	}
	return Prompt{}, false
}

// Combine joins the selected quick prompts and free text into one
// instruction. Duplicates are dropped and order is preserved.
func Combine(selected []string, extra string) string {
	seen := make(map[string]bool, len(selected))
	parts := make([]string, 0, len(selected)+1)
	all := make([]string, 0, len(selected)+1)
	all = append(all, selected...)
	for _, s := range append(all, extra) {
		s = strings.TrimSpace(s)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		parts = append(parts, s)
	}
	return strings.Join(parts, ", ")
}

// Resolve maps quick prompt names to their instructions.
func (c Catalog) Resolve(names []string) ([]string, error) {
	out := make([]string, 0, len(names))
	for _, name := range names {
		p, ok := c.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown quick prompt: %q (see `imgedit prompts`)", name)
		}
		out = append(out, p.Prompt)
	}
	return out, nil
}
