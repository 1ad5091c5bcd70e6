package processor

import (
	"context"

	"github.com/nguyentantai21042004/audio-scribe/internal/output"
)

// Options control one run.
type Options struct {
	// Summarize enables the summary step after transcription.
	Summarize bool

	// PromptName selects a stored prompt template. Ignored when PromptText
	// is set.
	PromptName string

	// PromptText overrides the stored prompt with ad-hoc template text.
	PromptText string
}

// Outcome reports what one run produced. When the summary step fails after a
// successful transcription, SummaryErr is set and the transcript artifacts
// remain on disk: partial success is a first-class result, not an error.
type Outcome struct {
	Run            *output.Run
	TranscriptText string
	SummaryText    string
	SummaryErr     error
}

// Processor runs the end-to-end pipeline for a single audio file.
type Processor interface {
	Process(ctx context.Context, audioPath string, opts Options) (*Outcome, error)
}
