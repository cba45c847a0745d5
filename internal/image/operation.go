package image

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxInstructionLength bounds edit instructions, in characters.
const MaxInstructionLength = 800

// Operation is one of EditOp, FilterOp or AdjustOp.
type Operation interface {
	// Kind names the operation for messages: "edit", "filter" or "adjustment".
	Kind() string
	// Images returns the images to send, primary first.
	Images() []Input
	// Validate checks the operation before anything touches the network.
	Validate() error

	isOperation()
}

// EditOp is a free-form edit, optionally guided by a reference image.
type EditOp struct {
	Primary     Input
	Reference   *Input
	Instruction string
}

// FilterOp applies a stylistic filter to the whole image.
type FilterOp struct {
	Image Input
	Style string
}

// AdjustOp applies a global adjustment such as brightness or color.
type AdjustOp struct {
	Image  Input
	Change string
}

func (EditOp) Kind() string   { return "edit" }
func (FilterOp) Kind() string { return "filter" }
func (AdjustOp) Kind() string { return "adjustment" }

func (EditOp) isOperation()   {}
func (FilterOp) isOperation() {}
func (AdjustOp) isOperation() {}

func (op EditOp) Images() []Input {
	if op.Reference == nil {
		return []Input{op.Primary}
	}
	return []Input{op.Primary, *op.Reference}
}

func (op FilterOp) Images() []Input { return []Input{op.Image} }
func (op AdjustOp) Images() []Input { return []Input{op.Image} }

func (op EditOp) Validate() error {
	if err := validateText("instruction", op.Instruction); err != nil {
		return err
	}
	if n := utf8.RuneCountInString(op.Instruction); n > MaxInstructionLength {
		return &ValidationError{Msg: fmt.Sprintf("instruction is %d characters, the limit is %d", n, MaxInstructionLength)}
	}
	return validateImages(op.Images())
}

func (op FilterOp) Validate() error {
	if err := validateText("filter style", op.Style); err != nil {
		return err
	}
	return validateImages(op.Images())
}

func (op AdjustOp) Validate() error {
	if err := validateText("adjustment", op.Change); err != nil {
		return err
	}
	return validateImages(op.Images())
}

func validateText(what, text string) error {
	if strings.TrimSpace(text) == "" {
		return &ValidationError{Msg: what + " is required"}
	}
	return nil
}

func validateImages(images []Input) error {
	for _, img := range images {
		if len(img.Data) == 0 {
			return &ValidationError{Msg: "an image is required"}
		}
		if err := ValidateMime(img); err != nil {
			return err
		}
	}
	return nil
}
