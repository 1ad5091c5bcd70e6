package config

import (
	"fmt"
	"os"

	"github.com/nguyentantai21042004/audio-scribe/pkg/errs"
)

// Environment variables holding provider API keys.
const (
	EnvOpenAIKey = "OPENAI_API_KEY"
	EnvGeminiKey = "GEMINI_API_KEY"
)

// Credentials holds resolved provider API keys for one invocation.
type Credentials struct {
	OpenAIKey string
	GeminiKey string
}

// ResolveCredentials checks the required API keys up front so a missing
// credential fails before any provider call is attempted. The Gemini key is
// only required when summarization will run against the Gemini backend.
func ResolveCredentials(cfg *Config, summarize bool) (*Credentials, error) {
	key := os.Getenv(EnvOpenAIKey)
	if key == "" {
		return nil, fmt.Errorf("%w: %s environment variable is not set", errs.ErrConfig, EnvOpenAIKey)
	}

	creds := &Credentials{OpenAIKey: key}

	if summarize && cfg.Summary.Backend == BackendGemini {
		gkey := os.Getenv(EnvGeminiKey)
		if gkey == "" {
			return nil, fmt.Errorf("%w: %s environment variable is not set (required for summary.backend=%s)",
				errs.ErrConfig, EnvGeminiKey, BackendGemini)
		}
		creds.GeminiKey = gkey
	}

	return creds, nil
}
