package summarizer

import (
	"context"
	"fmt"
	"strings"

	oai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"

	"github.com/nguyentantai21042004/audio-scribe/internal/logger"
	"github.com/nguyentantai21042004/audio-scribe/pkg/errs"
)

type implOpenAI struct {
	client oai.Client
	model  string
	logger logger.Logger
}

func newOpenAI(apiKey, model string, log logger.Logger) (Summarizer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("summarizer: apiKey must not be empty")
	}
	return &implOpenAI{
		client: oai.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
		logger: log,
	}, nil
}

func (s *implOpenAI) Summarize(ctx context.Context, prompt string) (string, error) {
	s.logger.Debug(ctx, "Requesting summary from OpenAI (model %s, prompt %d chars)", s.model, len(prompt))

	resp, err := s.client.Chat.Completions.New(ctx, oai.ChatCompletionNewParams{
		Model: shared.ChatModel(s.model),
		Messages: []oai.ChatCompletionMessageParamUnion{
			oai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: summary request: %v", errs.ErrProvider, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: empty response from OpenAI", errs.ErrProvider)
	}

	summary := strings.TrimSpace(resp.Choices[0].Message.Content)
	if summary == "" {
		return "", fmt.Errorf("%w: empty summary from OpenAI", errs.ErrProvider)
	}
	return summary, nil
}
