package cmd

import (
	"github.com/samsaffron/imgedit/internal/image"
	"github.com/spf13/cobra"
)

var adjustFlags opFlags

var adjustCmd = &cobra.Command{
	Use:   "adjust <change>",
	Short: "Make a targeted adjustment to an image",
	Long: `Apply a specific adjustment (lighting, color, mood) and keep the rest
of the image as is.

Examples:
  imgedit adjust "warmer golden-hour lighting" -i photo.jpg
  imgedit adjust "increase contrast" -i photo.jpg -o out.png --no-save`,
	Args: cobra.ArbitraryArgs,
	RunE: runAdjust,
}

func init() {
	addOpFlags(adjustCmd, &adjustFlags)
	rootCmd.AddCommand(adjustCmd)
}

func runAdjust(cmd *cobra.Command, args []string) error {
	change, err := joinArgs(args, "adjustment")
	if err != nil {
		return err
	}
	s, err := newSession()
	if err != nil {
		return err
	}

	ctx, stop := notifyContext(cmd)
	defer stop()

	in, err := loadImageArg(ctx, adjustFlags.input)
	if err != nil {
		return err
	}
	op := image.AdjustOp{Image: in, Change: change}
	return runOperation(ctx, cmd, s, &adjustFlags, op, change, "Adjusting image")
}
