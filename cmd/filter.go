package cmd

import (
	"github.com/samsaffron/imgedit/internal/image"
	"github.com/spf13/cobra"
)

var filterFlags opFlags

var filterCmd = &cobra.Command{
	Use:   "filter <style>",
	Short: "Restyle an image while keeping its composition",
	Long: `Apply an artistic style to an image. Subject, composition and
proportions are kept.

Examples:
  imgedit filter "watercolor painting" -i photo.jpg
  imgedit filter "1980s anime" -i portrait.png --size portrait_4_3`,
	Args: cobra.ArbitraryArgs,
	RunE: runFilter,
}

func init() {
	addOpFlags(filterCmd, &filterFlags)
	rootCmd.AddCommand(filterCmd)
}

func runFilter(cmd *cobra.Command, args []string) error {
	style, err := joinArgs(args, "style")
	if err != nil {
		return err
	}
	s, err := newSession()
	if err != nil {
		return err
	}

	ctx, stop := notifyContext(cmd)
	defer stop()

	in, err := loadImageArg(ctx, filterFlags.input)
	if err != nil {
		return err
	}
	op := image.FilterOp{Image: in, Style: style}
	return runOperation(ctx, cmd, s, &filterFlags, op, style, "Applying filter")
}
