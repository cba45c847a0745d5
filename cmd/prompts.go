package cmd

import (
	"fmt"
	"io"

	"github.com/samsaffron/imgedit/internal/config"
	"github.com/samsaffron/imgedit/internal/prompts"
	"github.com/samsaffron/imgedit/internal/ui"
	"github.com/spf13/cobra"
)

var (
	promptsCatalog string
	promptsVerbose bool
)

var promptsCmd = &cobra.Command{
	Use:   "prompts",
	Short: "List quick prompts for edit --quick",
	Long: `List the quick prompt catalog. Names can be passed to "imgedit edit
--quick"; several are combined into one instruction.

Examples:
  imgedit prompts
  imgedit prompts --catalog gemini -v`,
	Args: cobra.NoArgs,
	RunE: runPrompts,
}

func init() {
	promptsCmd.Flags().StringVar(&promptsCatalog, "catalog", "", "Catalog to list (qwen, gemini)")
	promptsCmd.Flags().BoolVarP(&promptsVerbose, "verbose", "v", false, "Show the full instruction text")
	if err := promptsCmd.RegisterFlagCompletionFunc("catalog", CatalogFlagCompletion); err != nil {
		panic("failed to register catalog completion: " + err.Error())
	}
	rootCmd.AddCommand(promptsCmd)
}

func runPrompts(cmd *cobra.Command, args []string) error {
	name := promptsCatalog
	if name == "" {
		if cfg, err := config.Load(); err == nil {
			name = cfg.Image.Catalog
		}
	}
	catalog, err := prompts.Get(name)
	if err != nil {
		return err
	}
	printCatalog(cmd.OutOrStdout(), catalog, promptsVerbose, ui.DefaultStyles())
	return nil
}

func printCatalog(w io.Writer, catalog prompts.Catalog, verbose bool, styles *ui.Styles) {
	for i, cat := range catalog {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, styles.Bold.Render(cat.Name))
		for _, p := range cat.Prompts {
			if verbose {
				fmt.Fprintf(w, "  %s  %s\n", p.Name, styles.Muted.Render(p.Prompt))
				continue
			}
			fmt.Fprintf(w, "  %s\n", p.Name)
		}
	}
}
