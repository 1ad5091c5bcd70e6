package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/audio-scribe/internal/prompt"
	"github.com/nguyentantai21042004/audio-scribe/pkg/errs"
)

var (
	saveText string
	saveFile string
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Manage the prompt library",
	Long: `The prompt library is a flat prompts.json file mapping prompt names to
template text. Templates may contain the {transcript} placeholder; templates
without it get the transcript appended as a labeled section.`,
}

var promptListCmd = &cobra.Command{
	Use:   "list",
	Short: "List prompt names in stored order",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadApp()
		if err != nil {
			return err
		}

		names, err := prompt.NewStore(cfg.Paths.Prompts).List()
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	},
}

var promptShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print a prompt template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadApp()
		if err != nil {
			return err
		}

		lib, err := prompt.NewStore(cfg.Paths.Prompts).Load()
		if err != nil {
			return err
		}

		template, ok := lib.Get(args[0])
		if !ok {
			return fmt.Errorf("%w: prompt %q not found", errs.ErrValidation, args[0])
		}
		fmt.Println(template)
		return nil
	},
}

var promptSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Create or update a prompt",
	Long: `Save inserts a new prompt or updates an existing one, preserving its
position in the library. The template comes from --text or --file.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadApp()
		if err != nil {
			return err
		}

		template := saveText
		if saveFile != "" {
			data, err := os.ReadFile(saveFile)
			if err != nil {
				return fmt.Errorf("%w: read template file %s: %v", errs.ErrValidation, saveFile, err)
			}
			template = string(data)
		}

		if _, err := prompt.NewStore(cfg.Paths.Prompts).Save(args[0], template); err != nil {
			return err
		}
		fmt.Printf("Saved prompt %q.\n", args[0])
		return nil
	},
}

func init() {
	promptSaveCmd.Flags().StringVar(&saveText, "text", "", "template text")
	promptSaveCmd.Flags().StringVar(&saveFile, "file", "", "read template text from a file")

	promptCmd.AddCommand(promptListCmd, promptShowCmd, promptSaveCmd)
	rootCmd.AddCommand(promptCmd)
}
