package transcriber

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	oai "github.com/openai/openai-go"

	"github.com/nguyentantai21042004/audio-scribe/pkg/errs"
)

// Transcribe uploads the audio file and requests the verbose JSON response so
// both the plain text and the timed segments are available in one call.
func (t *implTranscriber) Transcribe(ctx context.Context, audioPath string) (*Result, error) {
	f, err := os.Open(audioPath)
	if err != nil {
		return nil, fmt.Errorf("%w: open audio file %s: %v", errs.ErrValidation, audioPath, err)
	}
	defer f.Close()

	t.logger.Info(ctx, "Uploading audio for transcription: %s (model %s)", audioPath, t.model)

	resp, err := t.client.Audio.Transcriptions.New(ctx, oai.AudioTranscriptionNewParams{
		Model:          oai.AudioModel(t.model),
		File:           f,
		ResponseFormat: oai.AudioResponseFormatVerboseJSON,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: transcription request: %v", errs.ErrProvider, err)
	}

	raw := []byte(resp.RawJSON())
	var result Result
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("%w: decode transcription response: %v", errs.ErrProvider, err)
	}
	result.Raw = raw

	t.logger.Info(ctx, "Transcription complete: %d segments, %.1fs of audio", len(result.Segments), result.Duration)
	return &result, nil
}
