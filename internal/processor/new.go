package processor

import (
	"github.com/nguyentantai21042004/audio-scribe/internal/logger"
	"github.com/nguyentantai21042004/audio-scribe/internal/output"
	"github.com/nguyentantai21042004/audio-scribe/internal/prompt"
	"github.com/nguyentantai21042004/audio-scribe/internal/summarizer"
	"github.com/nguyentantai21042004/audio-scribe/internal/transcriber"
)

type implProcessor struct {
	prompts     prompt.Store
	transcriber transcriber.Transcriber
	summarizer  summarizer.Summarizer
	writer      output.Writer
	logger      logger.Logger
}

// New creates a Processor wiring the prompt store, provider clients, and
// output writer together. The summarizer may be nil when summarization is
// never requested.
func New(prompts prompt.Store, trans transcriber.Transcriber, summ summarizer.Summarizer, writer output.Writer, log logger.Logger) Processor {
	return &implProcessor{
		prompts:     prompts,
		transcriber: trans,
		summarizer:  summ,
		writer:      writer,
		logger:      log,
	}
}
