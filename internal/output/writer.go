package output

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/nguyentantai21042004/audio-scribe/pkg/errs"
)

// timestampLayout gives second resolution; two runs in the same second fall
// back to the numeric disambiguator below.
const timestampLayout = "20060102-150405"

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// BeginRun computes the run prefix from the input file name and the current
// time. If files with the same prefix already exist, a numeric suffix is
// appended to the timestamp until the prefix is free.
func (w *implWriter) BeginRun(inputFileName string) (*Run, error) {
	base := sanitizeBaseName(inputFileName)
	ts := w.now().Format(timestampLayout)

	stamp := ts
	for n := 2; w.prefixTaken(base + "-" + stamp); n++ {
		stamp = fmt.Sprintf("%s-%d", ts, n)
	}

	return &Run{
		BaseName:  base,
		Timestamp: stamp,
		Outputs:   map[Kind]string{},
	}, nil
}

// WriteText writes one artifact fully, creating the output directory on
// demand. Failures are IO errors surfaced to the caller; no cleanup of the
// partial run is attempted.
func (w *implWriter) WriteText(run *Run, kind Kind, content string) (string, error) {
	suffix, err := kindSuffix(kind)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: create output dir %s: %v", errs.ErrIO, w.dir, err)
	}

	path := filepath.Join(w.dir, run.Prefix()+suffix)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("%w: write %s: %v", errs.ErrIO, path, err)
	}

	w.logger.Debug(context.Background(), "Wrote %s artifact: %s (%d bytes)", kind, path, len(content))
	run.Outputs[kind] = path
	return path, nil
}

func kindSuffix(kind Kind) (string, error) {
	switch kind {
	case KindText:
		return ".txt", nil
	case KindSRT:
		return ".srt", nil
	case KindJSON:
		return ".json", nil
	case KindSummary:
		return "-summary.txt", nil
	default:
		return "", fmt.Errorf("%w: unknown artifact kind %q", errs.ErrValidation, kind)
	}
}

// sanitizeBaseName strips directory and extension from the input file name
// and normalizes characters unsafe for file systems.
func sanitizeBaseName(inputFileName string) string {
	base := filepath.Base(inputFileName)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = unsafeChars.ReplaceAllString(base, "_")
	base = strings.Trim(base, "._")
	if base == "" {
		base = "audio"
	}
	return base
}

func (w *implWriter) prefixTaken(prefix string) bool {
	matches, err := filepath.Glob(filepath.Join(w.dir, prefix+"*"))
	if err != nil {
		return false
	}
	return len(matches) > 0
}
