package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/samsaffron/imgedit/internal/image"
	"github.com/samsaffron/imgedit/internal/prompts"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	editFlags     opFlags
	editReference string
	editQuick     []string
	editCatalog   string
)

var editCmd = &cobra.Command{
	Use:   "edit <instruction>",
	Short: "Edit an image from a free-text instruction",
	Long: `Edit an image following an instruction. A second image can be passed
with --reference to guide style and content.

Quick prompts from the catalog (see "imgedit prompts") can be added with
--quick and are combined with any free text.

Examples:
  imgedit edit "remove the person in the background" -i photo.jpg
  imgedit edit "put this jacket on the model" -i model.png -r jacket.png
  imgedit edit --quick "Back View" --quick "T-pose" -i character.png
  imgedit edit "add a hat" -i clipboard --copy
  echo "make it night" | imgedit edit -i photo.jpg`,
	Args: cobra.ArbitraryArgs,
	RunE: runEdit,
}

func init() {
	addOpFlags(editCmd, &editFlags)
	editCmd.Flags().StringVarP(&editReference, "reference", "r", "", "Reference image for style and content")
	editCmd.Flags().StringArrayVarP(&editQuick, "quick", "q", nil, "Quick prompt to apply (repeatable)")
	editCmd.Flags().StringVar(&editCatalog, "catalog", "", "Quick prompt catalog (qwen, gemini)")

	if err := editCmd.RegisterFlagCompletionFunc("quick", QuickPromptCompletion); err != nil {
		panic("failed to register quick completion: " + err.Error())
	}
	if err := editCmd.RegisterFlagCompletionFunc("catalog", CatalogFlagCompletion); err != nil {
		panic("failed to register catalog completion: " + err.Error())
	}

	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	text, err := readInstruction(args, os.Stdin)
	if err != nil {
		return err
	}

	s, err := newSession()
	if err != nil {
		return err
	}

	catalogName := editCatalog
	if catalogName == "" {
		catalogName = s.cfg.Image.Catalog
	}
	instruction, err := buildInstruction(catalogName, editQuick, text)
	if err != nil {
		return err
	}

	ctx, stop := notifyContext(cmd)
	defer stop()

	primary, err := loadImageArg(ctx, editFlags.input)
	if err != nil {
		return err
	}
	op := image.EditOp{Primary: primary, Instruction: instruction}
	if editReference != "" {
		ref, err := loadImageArg(ctx, editReference)
		if err != nil {
			return err
		}
		op.Reference = &ref
	}

	return runOperation(ctx, cmd, s, &editFlags, op, instruction, "Editing image")
}

// readInstruction takes the instruction from args, or from stdin when it
// is piped.
func readInstruction(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.TrimSpace(strings.Join(args, " ")), nil
	}
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "", nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// buildInstruction resolves quick prompts and combines them with text.
func buildInstruction(catalogName string, quick []string, text string) (string, error) {
	var selected []string
	if len(quick) > 0 {
		catalog, err := prompts.Get(catalogName)
		if err != nil {
			return "", err
		}
		selected, err = catalog.Resolve(quick)
		if err != nil {
			return "", err
		}
	}
	instruction := prompts.Combine(selected, text)
	if instruction == "" {
		return "", fmt.Errorf("instruction required: provide as argument, via stdin, or with --quick")
	}
	return instruction, nil
}
