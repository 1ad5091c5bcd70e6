package transcriber

import (
	"fmt"

	oai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/nguyentantai21042004/audio-scribe/internal/logger"
)

type implTranscriber struct {
	client oai.Client
	model  string
	logger logger.Logger
}

// New creates a Transcriber backed by the OpenAI audio transcription API.
func New(apiKey, model string, log logger.Logger) (Transcriber, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("transcriber: apiKey must not be empty")
	}
	if model == "" {
		return nil, fmt.Errorf("transcriber: model must not be empty")
	}

	return &implTranscriber{
		client: oai.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
		logger: log,
	}, nil
}
