// Package export merges the summary artifacts of prior runs into a single
// docx report.
package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/nguyentantai21042004/audio-scribe/internal/logger"
	"github.com/nguyentantai21042004/audio-scribe/pkg/errs"
)

const summarySuffix = "-summary.txt"

// Section is one run's summary within the report.
type Section struct {
	Title string
	Body  string
}

// Report collects every run summary under outDir (files named
// {baseName}-{timestamp}-summary.txt) and writes them as one styled docx
// document at destPath.
func Report(ctx context.Context, log logger.Logger, outDir, destPath string) error {
	paths, err := discoverSummaries(outDir)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		log.Info(ctx, "No summaries found in %s, nothing to export", outDir)
		return nil
	}

	log.Info(ctx, "Exporting %d summaries to %s", len(paths), destPath)

	var sections []Section
	for _, path := range paths {
		body, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("%w: read summary %s: %v", errs.ErrIO, path, err)
		}
		sections = append(sections, Section{
			Title: sectionTitle(path),
			Body:  strings.TrimSpace(string(body)),
		})
	}

	if err := writeDocx("Transcription Summaries", sections, destPath); err != nil {
		return fmt.Errorf("%w: write report %s: %v", errs.ErrIO, destPath, err)
	}

	log.Info(ctx, "Report written: %s", destPath)
	return nil
}

// discoverSummaries returns the summary artifact paths under dir, sorted so
// runs appear in timestamp order.
func discoverSummaries(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read output dir %s: %v", errs.ErrIO, dir, err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if strings.HasSuffix(e.Name(), summarySuffix) {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}

	sort.Strings(paths)
	return paths, nil
}

// sectionTitle derives a heading from the artifact file name, keeping the
// run prefix ({baseName}-{timestamp}) intact.
func sectionTitle(path string) string {
	return strings.TrimSuffix(filepath.Base(path), summarySuffix)
}
