package transcriber

import "context"

// Transcriber sends one local audio file to the speech-to-text provider and
// returns its transcript. One attempt per call; failures carry the provider
// status and message.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (*Result, error)
}
