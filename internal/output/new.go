package output

import (
	"time"

	"github.com/nguyentantai21042004/audio-scribe/internal/logger"
)

type implWriter struct {
	dir    string
	logger logger.Logger
	now    func() time.Time
}

// New creates a Writer targeting dir. The directory is created on first
// write, not here.
func New(dir string, log logger.Logger) Writer {
	return &implWriter{
		dir:    dir,
		logger: log,
		now:    time.Now,
	}
}
