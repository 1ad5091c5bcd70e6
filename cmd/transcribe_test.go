package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nguyentantai21042004/audio-scribe/internal/config"
)

func TestOutputDir(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.Out = "configured-out"

	assert.Equal(t, "configured-out", outputDir(cfg, ""))
	assert.Equal(t, "flag-out", outputDir(cfg, "flag-out"))
}
