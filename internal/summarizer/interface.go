package summarizer

import "context"

// Summarizer sends a rendered prompt to the text-generation provider and
// returns the summary text. One attempt per call.
type Summarizer interface {
	Summarize(ctx context.Context, prompt string) (string, error)
}
