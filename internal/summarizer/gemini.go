package summarizer

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/audio-scribe/internal/logger"
	"github.com/nguyentantai21042004/audio-scribe/pkg/errs"
)

type implGemini struct {
	apiKey string
	model  string
	logger logger.Logger
}

func newGemini(apiKey, model string, log logger.Logger) (Summarizer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("summarizer: apiKey must not be empty")
	}
	return &implGemini{
		apiKey: apiKey,
		model:  model,
		logger: log,
	}, nil
}

func (s *implGemini) Summarize(ctx context.Context, prompt string) (string, error) {
	s.logger.Debug(ctx, "Requesting summary from Gemini (model %s, prompt %d chars)", s.model, len(prompt))

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  s.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("%w: create gemini client: %v", errs.ErrProvider, err)
	}

	result, err := client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("%w: summary request: %v", errs.ErrProvider, err)
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", fmt.Errorf("%w: empty response from Gemini", errs.ErrProvider)
	}

	var text strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			text.WriteString(part.Text)
		}
	}

	summary := strings.TrimSpace(text.String())
	if summary == "" {
		return "", fmt.Errorf("%w: empty summary from Gemini", errs.ErrProvider)
	}
	return summary, nil
}
