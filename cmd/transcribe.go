package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/audio-scribe/internal/config"
	"github.com/nguyentantai21042004/audio-scribe/internal/logger"
	"github.com/nguyentantai21042004/audio-scribe/internal/output"
	"github.com/nguyentantai21042004/audio-scribe/internal/processor"
	"github.com/nguyentantai21042004/audio-scribe/internal/prompt"
	"github.com/nguyentantai21042004/audio-scribe/internal/summarizer"
	"github.com/nguyentantai21042004/audio-scribe/internal/transcriber"
)

var (
	summarize  bool
	promptName string
	promptText string
	outDir     string
)

var transcribeCmd = &cobra.Command{
	Use:   "transcribe <audio-file>",
	Short: "Transcribe one audio file and save the artifacts under out/",
	Long: `Transcribe sends the audio file to the speech-to-text provider and writes
the transcript (.txt), captions (.srt), and verbose provider payload (.json).
With summarization enabled (the default) the selected prompt is rendered with
the transcript and the summary is written alongside (-summary.txt).

A summary-stage failure still leaves the transcript artifacts on disk and
exits zero; only a failure before the transcript lands is fatal.`,
	Args: cobra.ExactArgs(1),
	RunE: runTranscribe,
}

func init() {
	transcribeCmd.Flags().BoolVar(&summarize, "summarize", true, "also run the summary prompt")
	transcribeCmd.Flags().StringVar(&promptName, "prompt", prompt.DefaultPromptName, "name of the saved prompt to use")
	transcribeCmd.Flags().StringVar(&promptText, "prompt-text", "", "override prompt text instead of using the saved prompt")
	transcribeCmd.Flags().StringVar(&outDir, "out", "", "output directory (default from config)")

	rootCmd.AddCommand(transcribeCmd)
}

func runTranscribe(cmd *cobra.Command, args []string) error {
	audioPath := args[0]

	cfg, log, err := loadApp()
	if err != nil {
		return err
	}

	proc, err := buildProcessor(cfg, log, summarize, outDir)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	outcome, err := proc.Process(ctx, audioPath, processor.Options{
		Summarize:  summarize,
		PromptName: promptName,
		PromptText: promptText,
	})
	if err != nil {
		reportArtifacts(outcome)
		return err
	}

	if outcome.SummaryErr != nil {
		fmt.Println("Transcription complete; summary step failed.")
	} else if summarize {
		fmt.Println("Transcription and summary complete.")
	} else {
		fmt.Println("Transcription complete.")
	}
	reportArtifacts(outcome)

	if outcome.SummaryErr != nil {
		fmt.Fprintf(os.Stderr, "summary: %v\n", outcome.SummaryErr)
	}
	return nil
}

// buildProcessor wires the prompt store, provider clients, and output writer
// from config. Credentials are checked here, before any provider call. An
// empty dirOverride means the configured output directory.
func buildProcessor(cfg *config.Config, log logger.Logger, withSummary bool, dirOverride string) (processor.Processor, error) {
	creds, err := config.ResolveCredentials(cfg, withSummary)
	if err != nil {
		return nil, err
	}

	trans, err := transcriber.New(creds.OpenAIKey, cfg.OpenAI.TranscriptionModel, log)
	if err != nil {
		return nil, err
	}

	var summ summarizer.Summarizer
	if withSummary {
		summ, err = summarizer.New(cfg, creds, log)
		if err != nil {
			return nil, err
		}
	}

	store := prompt.NewStore(cfg.Paths.Prompts)
	return processor.New(store, trans, summ, output.New(outputDir(cfg, dirOverride), log), log), nil
}

// outputDir resolves the effective output directory for a run.
func outputDir(cfg *config.Config, override string) string {
	if override != "" {
		return override
	}
	return cfg.Paths.Out
}

// reportArtifacts prints the paths produced so far, including the partial
// set left behind by a failed run.
func reportArtifacts(outcome *processor.Outcome) {
	if outcome == nil || outcome.Run == nil {
		return
	}
	labels := []struct {
		kind  output.Kind
		label string
	}{
		{output.KindText, "Transcript"},
		{output.KindSRT, "Captions"},
		{output.KindJSON, "Verbose JSON"},
		{output.KindSummary, "Summary"},
	}
	for _, l := range labels {
		if path, ok := outcome.Run.Outputs[l.kind]; ok {
			fmt.Printf("%s: %s\n", l.label, path)
		}
	}
}
