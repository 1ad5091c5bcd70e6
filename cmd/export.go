package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/audio-scribe/internal/export"
)

var exportOutDir string

var exportCmd = &cobra.Command{
	Use:   "export <report.docx>",
	Short: "Merge run summaries into a single docx report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := loadApp()
		if err != nil {
			return err
		}

		dir := cfg.Paths.Out
		if exportOutDir != "" {
			dir = exportOutDir
		}
		return export.Report(context.Background(), log, dir, args[0])
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportOutDir, "out", "", "output directory to collect summaries from (default from config)")
	rootCmd.AddCommand(exportCmd)
}
