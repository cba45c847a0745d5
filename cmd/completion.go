package cmd

import (
	"strings"

	"github.com/samsaffron/imgedit/internal/image"
	"github.com/samsaffron/imgedit/internal/prompts"
	"github.com/spf13/cobra"
)

func filterPrefix(values []string, toComplete string) []string {
	var out []string
	for _, v := range values {
		if strings.HasPrefix(strings.ToLower(v), strings.ToLower(toComplete)) {
			out = append(out, v)
		}
	}
	return out
}

// SizeFlagCompletion completes --size with the known presets.
func SizeFlagCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return filterPrefix(image.SizeKeys(), toComplete), cobra.ShellCompDirectiveNoFileComp
}

// UploadFlagCompletion completes --upload with the encoder strategies.
func UploadFlagCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	strategies := []string{image.StrategyInline, image.StrategyUpload, image.StrategyObjectStore}
	return filterPrefix(strategies, toComplete), cobra.ShellCompDirectiveNoFileComp
}

// CatalogFlagCompletion completes --catalog with the prompt catalogs.
func CatalogFlagCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return filterPrefix(prompts.Names(), toComplete), cobra.ShellCompDirectiveNoFileComp
}

// AspectFlagCompletion completes --aspect with the crop ratios.
func AspectFlagCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return filterPrefix(image.CropRatios, toComplete), cobra.ShellCompDirectiveNoFileComp
}

// QuickPromptCompletion completes --quick with prompt names from the
// catalog selected by --catalog.
func QuickPromptCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	name, _ := cmd.Flags().GetString("catalog")
	catalog, err := prompts.Get(name)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var names []string
	for _, cat := range catalog {
		for _, p := range cat.Prompts {
			names = append(names, p.Name)
		}
	}
	return filterPrefix(names, toComplete), cobra.ShellCompDirectiveNoFileComp
}
