package summarizer

import (
	"fmt"

	"github.com/nguyentantai21042004/audio-scribe/internal/config"
	"github.com/nguyentantai21042004/audio-scribe/internal/logger"
	"github.com/nguyentantai21042004/audio-scribe/pkg/errs"
)

// New creates a Summarizer for the configured backend.
func New(cfg *config.Config, creds *config.Credentials, log logger.Logger) (Summarizer, error) {
	switch cfg.Summary.Backend {
	case config.BackendOpenAI:
		return newOpenAI(creds.OpenAIKey, cfg.OpenAI.SummaryModel, log)
	case config.BackendGemini:
		return newGemini(creds.GeminiKey, cfg.Gemini.Model, log)
	default:
		return nil, fmt.Errorf("%w: unknown summary backend %q", errs.ErrConfig, cfg.Summary.Backend)
	}
}
