package image

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/rs/zerolog"
)

// DefaultSizePreset is used whenever a size key is not recognized.
const DefaultSizePreset = "square_hd"

// SizeSpec is the output size sent as image_size: either a named preset or
// an explicit width/height pair.
type SizeSpec struct {
	Preset string
	Width  int
	Height int
}

// presetSizes are passed through to the provider unchanged.
var presetSizes = map[string]bool{
	"square_hd":      true,
	"square":         true,
	"portrait_4_3":   true,
	"portrait_16_9":  true,
	"landscape_4_3":  true,
	"landscape_16_9": true,
}

// explicitSizes are keys the provider does not know; they are sent as
// explicit dimensions instead.
var explicitSizes = map[string]SizeSpec{
	"square_2k":     {Width: 2048, Height: 2048},
	"landscape_uhd": {Width: 3840, Height: 2160},
}

// LookupSize resolves a size key and reports whether it was recognized.
func LookupSize(key string) (SizeSpec, bool) {
	if presetSizes[key] {
		return SizeSpec{Preset: key}, true
	}
	if s, ok := explicitSizes[key]; ok {
		return s, true
	}
	return SizeSpec{Preset: DefaultSizePreset}, false
}

// ResolveSize is total over all keys: unknown keys fall back to
// DefaultSizePreset with a warning.
func ResolveSize(key string, logger zerolog.Logger) SizeSpec {
	spec, ok := LookupSize(key)
	if !ok {
		logger.Warn().Str("size", key).Str("fallback", DefaultSizePreset).Msg("unknown output size, using default")
	}
	return spec
}

// ExplicitSize builds a width/height size.
func ExplicitSize(width, height int) (SizeSpec, error) {
	if width <= 0 || height <= 0 {
		return SizeSpec{}, &ValidationError{Msg: fmt.Sprintf("invalid output size %dx%d", width, height)}
	}
	return SizeSpec{Width: width, Height: height}, nil
}

// SizeKeys returns every recognized size key, sorted.
func SizeKeys() []string {
	keys := make([]string, 0, len(presetSizes)+len(explicitSizes))
	for k := range presetSizes {
		keys = append(keys, k)
	}
	for k := range explicitSizes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (s SizeSpec) String() string {
	if s.Preset != "" {
		return s.Preset
	}
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

func (s SizeSpec) MarshalJSON() ([]byte, error) {
	if s.Preset != "" {
		return json.Marshal(s.Preset)
	}
	return json.Marshal(struct {
		Width  int `json:"width"`
		Height int `json:"height"`
	}{s.Width, s.Height})
}

func (s *SizeSpec) UnmarshalJSON(data []byte) error {
	var preset string
	if err := json.Unmarshal(data, &preset); err == nil {
		*s = SizeSpec{Preset: preset}
		return nil
	}
	var dims struct {
		Width  int `json:"width"`
		Height int `json:"height"`
	}
	if err := json.Unmarshal(data, &dims); err != nil {
		return fmt.Errorf("image_size: %w", err)
	}
	*s = SizeSpec{Width: dims.Width, Height: dims.Height}
	return nil
}
