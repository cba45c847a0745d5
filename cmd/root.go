package cmd

import (
	"os"

	"github.com/samsaffron/imgedit/internal/ui"
	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags.
var Version = "dev"

var debugFlag bool

var rootCmd = &cobra.Command{
	Use:   "imgedit",
	Short: "Edit images with the fal Qwen image-edit model",
	Long: `imgedit sends an image (and optionally a reference image) with an
instruction to fal.ai's Qwen image-edit endpoint and saves the result.

Examples:
  imgedit edit "replace the sky with a sunset" -i photo.jpg
  imgedit edit "match this outfit" -i me.png -r outfit.png
  imgedit edit --quick "Back View" -i character.png
  imgedit filter "watercolor painting" -i photo.jpg
  imgedit adjust "warmer lighting" -i photo.jpg --size landscape_16_9
  imgedit crop -i photo.jpg --aspect 16:9

  imgedit prompts                      # list quick prompts
  imgedit config                       # view configuration`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
}

func init() {
	rootCmd.Version = Version
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "d", false, "Show debug logs (the API key is redacted)")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		ui.ShowError(os.Stderr, err.Error())
		os.Exit(1)
	}
}
