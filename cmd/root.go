package cmd

import (
	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/audio-scribe/internal/config"
	"github.com/nguyentantai21042004/audio-scribe/internal/logger"
)

var (
	cfgPath string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "audio-scribe",
	Short: "Transcribe a single audio file and optionally summarize it",
	Long: `Audio-scribe sends one audio file to a speech-to-text provider and writes
the transcript as text, SRT captions, and verbose JSON under ./out/, using a
deterministic {baseName}-{timestamp} naming scheme. A prompt-driven summary
can be produced alongside, using templates from a human-editable prompt
library (prompts.json).`,
	SilenceUsage: true,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "config.yaml", "path to config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
}

// loadApp loads the config and builds the logger shared by all commands.
func loadApp() (*config.Config, logger.Logger, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, nil, err
	}

	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}
	return cfg, logger.New(level), nil
}
