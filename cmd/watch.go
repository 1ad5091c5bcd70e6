package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/audio-scribe/internal/processor"
	"github.com/nguyentantai21042004/audio-scribe/internal/watcher"
)

var (
	watchSummarize bool
	watchPrompt    string
)

var watchCmd = &cobra.Command{
	Use:   "watch [drop-dir]",
	Short: "Watch a drop directory and transcribe each new audio file",
	Long: `Watch monitors a directory and runs the full pipeline for every audio file
dropped into it, using the same naming scheme as a single transcribe run.
Stops on SIGINT/SIGTERM after in-flight runs finish.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().BoolVar(&watchSummarize, "summarize", true, "also run the summary prompt for each file")
	watchCmd.Flags().StringVar(&watchPrompt, "prompt", "", "name of the saved prompt to use (default from prompt library)")

	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadApp()
	if err != nil {
		return err
	}

	dropDir := cfg.Paths.Watch
	if len(args) == 1 {
		dropDir = args[0]
	}
	if err := os.MkdirAll(dropDir, 0o755); err != nil {
		return err
	}

	proc, err := buildProcessor(cfg, log, watchSummarize, "")
	if err != nil {
		return err
	}

	handler := func(ctx context.Context, filePath string) error {
		outcome, err := proc.Process(ctx, filePath, processor.Options{
			Summarize:  watchSummarize,
			PromptName: watchPrompt,
		})
		if err != nil {
			return err
		}
		if outcome.SummaryErr != nil {
			log.Warn(ctx, "Summary step failed for %s: %v", filePath, outcome.SummaryErr)
		}
		return nil
	}

	w, err := watcher.New(dropDir, handler, log, cfg.Watcher.MaxConcurrent)
	if err != nil {
		return err
	}
	defer w.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
