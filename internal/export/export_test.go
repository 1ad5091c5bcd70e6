package export

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/audio-scribe/internal/logger"
)

func TestDiscoverSummaries(t *testing.T) {
	dir := t.TempDir()

	files := []string{
		"call-20260830-100000-summary.txt",
		"call-20260830-100000.txt",
		"call-20260830-100000.srt",
		"standup-20260829-090000-summary.txt",
		".hidden-summary.txt",
	}
	for _, f := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, f), []byte("body"), 0o644))
	}

	paths, err := discoverSummaries(dir)
	require.NoError(t, err)

	want := []string{
		filepath.Join(dir, "call-20260830-100000-summary.txt"),
		filepath.Join(dir, "standup-20260829-090000-summary.txt"),
	}
	assert.Equal(t, want, paths)
}

func TestDiscoverSummariesMissingDir(t *testing.T) {
	paths, err := discoverSummaries(filepath.Join(t.TempDir(), "gone"))
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestSectionTitle(t *testing.T) {
	assert.Equal(t, "call-20260830-100000", sectionTitle("/out/call-20260830-100000-summary.txt"))
}

func TestReportWritesDocx(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "call-20260830-100000-summary.txt"),
		[]byte("# Overview\n\n- **Decision**: ship it\n- Owner: Sam\n"),
		0o644,
	))

	dest := filepath.Join(t.TempDir(), "report.docx")
	err := Report(context.Background(), logger.New("error"), dir, dest)
	require.NoError(t, err)

	info, err := os.Stat(dest)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestReportNoSummaries(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "report.docx")
	err := Report(context.Background(), logger.New("error"), t.TempDir(), dest)
	require.NoError(t, err)

	_, statErr := os.Stat(dest)
	assert.True(t, os.IsNotExist(statErr), "no report file should be created")
}

func TestStripInlineMarkdown(t *testing.T) {
	assert.Equal(t, "bold and code", stripInlineMarkdown("**bold** and `code`"))
}
