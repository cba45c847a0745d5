package image

import (
	"fmt"
	"strings"
)

// Generation parameters sent with every request. They are provider tuning
// constants and are not exposed as options.
const (
	falInferenceSteps = 50
	falGuidanceScale  = 4.0
	falNumImages      = 1
	falOutputFormat   = "png"
	falAcceleration   = "regular"
)

// referenceClause is appended to an edit instruction when a second image is
// attached.
const referenceClause = " Use the second image as a reference for style and content."

const (
	filterTemplate = `Apply a stylistic filter to the entire image based on this request: "%s". Do not change the composition or content, only apply the style.`
	adjustTemplate = `Perform a natural, global adjustment to the entire image based on this request: "%s".`
)

// EditRequest is the JSON body for the image-edit endpoint.
type EditRequest struct {
	Prompt              string   `json:"prompt"`
	ImageURLs           []string `json:"image_urls"`
	ImageSize           SizeSpec `json:"image_size"`
	NumInferenceSteps   int      `json:"num_inference_steps"`
	GuidanceScale       float64  `json:"guidance_scale"`
	NumImages           int      `json:"num_images"`
	EnableSafetyChecker bool     `json:"enable_safety_checker"`
	OutputFormat        string   `json:"output_format"`
	Seed                *int64   `json:"seed"`
	SyncMode            bool     `json:"sync_mode"`
	Acceleration        string   `json:"acceleration,omitempty"`

	kind string
}

// Kind is the operation this request was built for.
func (r *EditRequest) Kind() string { return r.kind }

// BuildRequest assembles the request body for op. refs must hold one encoded
// reference per op.Images(), in the same order.
func BuildRequest(op Operation, refs []Ref, size SizeSpec) (*EditRequest, error) {
	if want := len(op.Images()); len(refs) != want {
		return nil, &ValidationError{Msg: fmt.Sprintf("%s needs %d image reference(s), got %d", op.Kind(), want, len(refs))}
	}

	var prompt string
	switch op := op.(type) {
	case EditOp:
		prompt = strings.TrimSpace(op.Instruction)
		if op.Reference != nil {
			prompt += referenceClause
		}
	case FilterOp:
		prompt = fmt.Sprintf(filterTemplate, strings.TrimSpace(op.Style))
	case AdjustOp:
		prompt = fmt.Sprintf(adjustTemplate, strings.TrimSpace(op.Change))
	default:
		return nil, &ValidationError{Msg: fmt.Sprintf("unsupported operation %T", op)}
	}

	if size == (SizeSpec{}) {
		size = SizeSpec{Preset: DefaultSizePreset}
	}

	urls := make([]string, len(refs))
	for i, ref := range refs {
		urls[i] = ref.URI
	}

	return &EditRequest{
		Prompt:              prompt,
		ImageURLs:           urls,
		ImageSize:           size,
		NumInferenceSteps:   falInferenceSteps,
		GuidanceScale:       falGuidanceScale,
		NumImages:           falNumImages,
		EnableSafetyChecker: false,
		OutputFormat:        falOutputFormat,
		Seed:                nil,
		SyncMode:            true,
		Acceleration:        falAcceleration,
		kind:                op.Kind(),
	}, nil
}
