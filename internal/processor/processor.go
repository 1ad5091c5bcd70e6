package processor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/nguyentantai21042004/audio-scribe/internal/output"
	"github.com/nguyentantai21042004/audio-scribe/internal/prompt"
	"github.com/nguyentantai21042004/audio-scribe/internal/transcriber"
	"github.com/nguyentantai21042004/audio-scribe/pkg/errs"
)

// Process runs the pipeline for one audio file: transcribe, persist the
// transcript artifacts, then optionally render the prompt and persist the
// summary. Artifacts written before a failure stay on disk and are reported
// through the returned Outcome's Run.
func (p *implProcessor) Process(ctx context.Context, audioPath string, opts Options) (*Outcome, error) {
	startTime := time.Now()

	if _, err := os.Stat(audioPath); err != nil {
		return nil, fmt.Errorf("%w: input file %s: %v", errs.ErrValidation, audioPath, err)
	}

	// Resolve the template before paying for a transcription call.
	var template string
	if opts.Summarize {
		var err error
		template, err = p.resolveTemplate(opts)
		if err != nil {
			return nil, err
		}
	}

	run, err := p.writer.BeginRun(audioPath)
	if err != nil {
		return nil, err
	}
	outcome := &Outcome{Run: run}

	p.logger.Info(ctx, "Starting run %s for %s", run.Prefix(), audioPath)

	result, err := p.transcriber.Transcribe(ctx, audioPath)
	if err != nil {
		return outcome, fmt.Errorf("transcribe: %w", err)
	}
	outcome.TranscriptText = strings.TrimSpace(result.Text)

	if err := p.writeTranscript(ctx, outcome, result); err != nil {
		return outcome, err
	}

	if opts.Summarize {
		p.summarize(ctx, outcome, template)
	}

	p.logger.Info(ctx, "Run %s finished in %s (%d artifacts)",
		run.Prefix(), time.Since(startTime).Round(time.Millisecond), len(run.Outputs))
	return outcome, nil
}

// writeTranscript persists the text, SRT, and verbose JSON artifacts.
func (p *implProcessor) writeTranscript(ctx context.Context, outcome *Outcome, result *transcriber.Result) error {
	run := outcome.Run

	if _, err := p.writer.WriteText(run, output.KindText, outcome.TranscriptText+"\n"); err != nil {
		return fmt.Errorf("write transcript: %w", err)
	}

	if _, err := p.writer.WriteText(run, output.KindSRT, transcriber.FormatSRT(result.Segments)); err != nil {
		return fmt.Errorf("write captions: %w", err)
	}

	if _, err := p.writer.WriteText(run, output.KindJSON, prettyJSON(result.Raw)); err != nil {
		return fmt.Errorf("write verbose json: %w", err)
	}

	p.logger.Info(ctx, "Transcript artifacts written: %s", run.Outputs[output.KindText])
	return nil
}

// summarize renders the prompt and persists the summary. A failure here is
// recorded on the outcome instead of returned: the transcript artifacts are
// already on disk and the run counts as a partial success.
func (p *implProcessor) summarize(ctx context.Context, outcome *Outcome, template string) {
	rendered := prompt.Render(template, outcome.TranscriptText)

	summary, err := p.summarizer.Summarize(ctx, rendered)
	if err != nil {
		outcome.SummaryErr = fmt.Errorf("summarize: %w", err)
		p.logger.Error(ctx, "Summary step failed, transcript artifacts kept: %v", err)
		return
	}
	outcome.SummaryText = summary

	if _, err := p.writer.WriteText(outcome.Run, output.KindSummary, summary+"\n"); err != nil {
		outcome.SummaryErr = fmt.Errorf("write summary: %w", err)
		p.logger.Error(ctx, "Summary write failed, transcript artifacts kept: %v", err)
	}
}

// resolveTemplate picks the ad-hoc prompt text or loads the named prompt
// from the store.
func (p *implProcessor) resolveTemplate(opts Options) (string, error) {
	if strings.TrimSpace(opts.PromptText) != "" {
		return opts.PromptText, nil
	}

	name := opts.PromptName
	if name == "" {
		name = prompt.DefaultPromptName
	}

	lib, err := p.prompts.Load()
	if err != nil {
		return "", err
	}

	template, ok := lib.Get(name)
	if !ok {
		return "", fmt.Errorf("%w: prompt %q not found", errs.ErrValidation, name)
	}
	if strings.TrimSpace(template) == "" {
		return "", fmt.Errorf("%w: prompt %q is empty; provide prompt text or disable summarization", errs.ErrValidation, name)
	}
	return template, nil
}

// prettyJSON indents the provider payload for the .json artifact, falling
// back to the raw bytes if the payload does not re-indent cleanly.
func prettyJSON(raw []byte) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String() + "\n"
}
