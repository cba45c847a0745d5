package cmd

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/samsaffron/imgedit/internal/config"
	"github.com/samsaffron/imgedit/internal/image"
	"github.com/spf13/cobra"
)

// opFlags holds the flags shared by the generation commands. Each command
// owns its own instance.
type opFlags struct {
	input     string
	size      string
	width     int
	height    int
	upload    string
	maxBytes  int64
	output    string
	noSave    bool
	noDisplay bool
	copy      bool
}

func addOpFlags(cmd *cobra.Command, f *opFlags) {
	cmd.Flags().StringVarP(&f.input, "input", "i", "", "Image to edit (path, or \"clipboard\")")
	cmd.Flags().StringVar(&f.size, "size", "", "Output size preset ("+strings.Join(image.SizeKeys(), ", ")+")")
	cmd.Flags().IntVar(&f.width, "width", 0, "Explicit output width (with --height)")
	cmd.Flags().IntVar(&f.height, "height", 0, "Explicit output height (with --width)")
	cmd.Flags().StringVar(&f.upload, "upload", "", "How images reach the model: inline, upload or objectstore")
	cmd.Flags().Int64Var(&f.maxBytes, "max-bytes", 0, "Re-encode images larger than this many bytes")
	addOutputFlags(cmd, f)

	if err := cmd.MarkFlagRequired("input"); err != nil {
		panic("failed to mark input required: " + err.Error())
	}
	if err := cmd.RegisterFlagCompletionFunc("size", SizeFlagCompletion); err != nil {
		panic("failed to register size completion: " + err.Error())
	}
	if err := cmd.RegisterFlagCompletionFunc("upload", UploadFlagCompletion); err != nil {
		panic("failed to register upload completion: " + err.Error())
	}
}

func addOutputFlags(cmd *cobra.Command, f *opFlags) {
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "Custom output path")
	cmd.Flags().BoolVar(&f.noSave, "no-save", false, "Don't save to the output directory (use with -o)")
	cmd.Flags().BoolVar(&f.noDisplay, "no-display", false, "Skip inline terminal preview")
	cmd.Flags().BoolVar(&f.copy, "copy", false, "Copy the result to the clipboard")
}

// sizeSpec picks the output size: explicit dimensions win over a preset
// key, and an unknown key falls back to the default preset.
func (f *opFlags) sizeSpec(cfg *config.Config, logger zerolog.Logger) (image.SizeSpec, error) {
	if f.width != 0 || f.height != 0 {
		return image.ExplicitSize(f.width, f.height)
	}
	key := f.size
	if key == "" {
		key = cfg.Image.Size
	}
	return image.ResolveSize(key, logger), nil
}

// encoderOptions maps config and flags onto the encoder strategy.
func (f *opFlags) encoderOptions(cfg *config.Config) image.EncoderOptions {
	strategy := cfg.Fal.Upload
	if f.upload != "" {
		strategy = f.upload
	}
	store := cfg.ObjectStore
	return image.EncoderOptions{
		Strategy: strategy,
		Upload:   image.UploadOptions{Endpoint: cfg.Fal.StorageEndpoint},
		ObjectStore: image.ObjectStoreOptions{
			Endpoint:  store.Endpoint,
			AccessKey: store.AccessKey,
			SecretKey: store.SecretKey,
			Bucket:    store.Bucket,
			Region:    store.Region,
			UseSSL:    store.UseSSL,
			Prefix:    store.Prefix,
			PublicURL: store.PublicURL,
			Expiry:    store.Expiry,
		},
	}
}

func (f *opFlags) maxBytesFor(cfg *config.Config) int64 {
	if f.maxBytes > 0 {
		return f.maxBytes
	}
	return cfg.Image.MaxBytes
}

// joinArgs joins positional args into the operation text.
func joinArgs(args []string, what string) (string, error) {
	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		return "", fmt.Errorf("%s required", what)
	}
	return text, nil
}
