package cmd

import (
	"strings"

	"github.com/samsaffron/imgedit/internal/config"
	"github.com/samsaffron/imgedit/internal/image"
	"github.com/samsaffron/imgedit/internal/logging"
	"github.com/spf13/cobra"
)

var (
	cropFlags  opFlags
	cropAspect string
)

var cropCmd = &cobra.Command{
	Use:   "crop",
	Short: "Crop an image to an aspect ratio (local, no API call)",
	Long: `Crop the largest centred region of the given aspect ratio and save it as
PNG. Useful before an edit to control framing.

Examples:
  imgedit crop -i photo.jpg --aspect 16:9
  imgedit crop -i photo.jpg --aspect 1:1 -o square.png --no-save`,
	Args: cobra.NoArgs,
	RunE: runCrop,
}

func init() {
	cropCmd.Flags().StringVarP(&cropFlags.input, "input", "i", "", "Image to crop (path, or \"clipboard\")")
	cropCmd.Flags().StringVarP(&cropAspect, "aspect", "a", "1:1", "Aspect ratio ("+strings.Join(image.CropRatios, ", ")+")")
	addOutputFlags(cropCmd, &cropFlags)

	if err := cropCmd.MarkFlagRequired("input"); err != nil {
		panic("failed to mark input required: " + err.Error())
	}
	if err := cropCmd.RegisterFlagCompletionFunc("aspect", AspectFlagCompletion); err != nil {
		panic("failed to register aspect completion: " + err.Error())
	}

	rootCmd.AddCommand(cropCmd)
}

func runCrop(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, stop := notifyContext(cmd)
	defer stop()

	in, err := loadImageArg(ctx, cropFlags.input)
	if err != nil {
		return err
	}
	cropped, err := image.CropToAspect(in, cropAspect)
	if err != nil {
		return err
	}
	logger := logging.New(debugFlag)
	logger.Debug().
		Str("image", in.Name).
		Str("aspect", cropAspect).
		Int64("from_bytes", in.Size()).
		Int64("to_bytes", cropped.Size()).
		Msg("cropped image")

	caption := "crop " + strings.ReplaceAll(cropAspect, ":", "x")
	return deliver(ctx, cmd.ErrOrStderr(), cfg, &cropFlags, cropped.Data, cropped.MimeType, caption)
}
