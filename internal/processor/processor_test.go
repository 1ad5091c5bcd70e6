package processor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/audio-scribe/internal/logger"
	"github.com/nguyentantai21042004/audio-scribe/internal/output"
	"github.com/nguyentantai21042004/audio-scribe/internal/prompt"
	"github.com/nguyentantai21042004/audio-scribe/internal/transcriber"
	"github.com/nguyentantai21042004/audio-scribe/pkg/errs"
)

type fakeTranscriber struct {
	result *transcriber.Result
	err    error
	calls  int
}

func (f *fakeTranscriber) Transcribe(ctx context.Context, audioPath string) (*transcriber.Result, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

type fakeSummarizer struct {
	summary string
	err     error
	prompts []string
}

func (f *fakeSummarizer) Summarize(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.summary, nil
}

func transcriptionFixture() *transcriber.Result {
	res := &transcriber.Result{
		Task:     "transcribe",
		Language: "english",
		Duration: 4.0,
		Text:     "Hello world. Second sentence.",
		Segments: []transcriber.Segment{
			{ID: 0, Start: 0, End: 2, Text: "Hello world."},
			{ID: 1, Start: 2, End: 4, Text: "Second sentence."},
		},
	}
	raw, _ := json.Marshal(res)
	res.Raw = raw
	return res
}

func testHarness(t *testing.T, trans *fakeTranscriber, summ *fakeSummarizer) (Processor, string, string) {
	t.Helper()
	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")
	audio := filepath.Join(dir, "meeting.mp3")
	require.NoError(t, os.WriteFile(audio, []byte("fake-audio"), 0o644))

	log := logger.New("error")
	store := prompt.NewStore(filepath.Join(dir, "prompts.json"))
	proc := New(store, trans, summ, output.New(outDir, log), log)
	return proc, audio, outDir
}

func TestProcessFullRun(t *testing.T) {
	trans := &fakeTranscriber{result: transcriptionFixture()}
	summ := &fakeSummarizer{summary: "- decision made"}
	proc, audio, outDir := testHarness(t, trans, summ)

	outcome, err := proc.Process(context.Background(), audio, Options{Summarize: true})
	require.NoError(t, err)
	require.NoError(t, outcome.SummaryErr)

	assert.Equal(t, "Hello world. Second sentence.", outcome.TranscriptText)
	assert.Equal(t, "- decision made", outcome.SummaryText)
	assert.Len(t, outcome.Run.Outputs, 4)

	// The default prompt carries the transcript via its placeholder.
	require.Len(t, summ.prompts, 1)
	assert.Contains(t, summ.prompts[0], "Hello world. Second sentence.")
	assert.NotContains(t, summ.prompts[0], prompt.Placeholder)

	// All artifacts share the run prefix and live under out/.
	for kind, path := range outcome.Run.Outputs {
		assert.Contains(t, path, outcome.Run.Prefix(), "kind %s", kind)
		assert.Equal(t, outDir, filepath.Dir(path))
		_, statErr := os.Stat(path)
		assert.NoError(t, statErr, "kind %s", kind)
	}

	text, err := os.ReadFile(outcome.Run.Outputs[output.KindText])
	require.NoError(t, err)
	assert.Equal(t, "Hello world. Second sentence.\n", string(text))

	srt, err := os.ReadFile(outcome.Run.Outputs[output.KindSRT])
	require.NoError(t, err)
	assert.Contains(t, string(srt), "00:00:00,000 --> 00:00:02,000")

	var verbose map[string]any
	raw, err := os.ReadFile(outcome.Run.Outputs[output.KindJSON])
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &verbose))
	assert.Equal(t, "english", verbose["language"])
}

func TestProcessWithoutSummary(t *testing.T) {
	trans := &fakeTranscriber{result: transcriptionFixture()}
	summ := &fakeSummarizer{}
	proc, audio, _ := testHarness(t, trans, summ)

	outcome, err := proc.Process(context.Background(), audio, Options{Summarize: false})
	require.NoError(t, err)

	assert.Len(t, outcome.Run.Outputs, 3)
	assert.Empty(t, summ.prompts, "summarizer must not be called")
	assert.NotContains(t, outcome.Run.Outputs, output.KindSummary)
}

func TestProcessSummaryFailureIsPartialSuccess(t *testing.T) {
	trans := &fakeTranscriber{result: transcriptionFixture()}
	summ := &fakeSummarizer{err: fmt.Errorf("%w: quota exceeded", errs.ErrProvider)}
	proc, audio, _ := testHarness(t, trans, summ)

	outcome, err := proc.Process(context.Background(), audio, Options{Summarize: true})
	require.NoError(t, err, "summary failure must not fail the run")

	require.Error(t, outcome.SummaryErr)
	assert.True(t, errs.IsProvider(outcome.SummaryErr))

	// Transcript artifacts stay on disk.
	assert.Len(t, outcome.Run.Outputs, 3)
	for _, path := range outcome.Run.Outputs {
		_, statErr := os.Stat(path)
		assert.NoError(t, statErr)
	}
}

func TestProcessTranscriptionFailure(t *testing.T) {
	trans := &fakeTranscriber{err: fmt.Errorf("%w: 401 unauthorized", errs.ErrProvider)}
	proc, audio, outDir := testHarness(t, trans, &fakeSummarizer{})

	outcome, err := proc.Process(context.Background(), audio, Options{})
	require.Error(t, err)
	assert.True(t, errs.IsProvider(err))

	// The run began but produced nothing.
	require.NotNil(t, outcome)
	assert.Empty(t, outcome.Run.Outputs)
	entries, _ := os.ReadDir(outDir)
	assert.Empty(t, entries)
}

func TestProcessMissingInputFile(t *testing.T) {
	trans := &fakeTranscriber{result: transcriptionFixture()}
	proc, audio, _ := testHarness(t, trans, &fakeSummarizer{})

	_, err := proc.Process(context.Background(), audio+".gone", Options{})
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
	assert.Zero(t, trans.calls, "no provider call for a missing file")
}

func TestProcessUnknownPrompt(t *testing.T) {
	trans := &fakeTranscriber{result: transcriptionFixture()}
	proc, audio, _ := testHarness(t, trans, &fakeSummarizer{})

	_, err := proc.Process(context.Background(), audio, Options{Summarize: true, PromptName: "No Such Prompt"})
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
	assert.Zero(t, trans.calls, "prompt resolution happens before transcription")
}

func TestProcessAdHocPromptText(t *testing.T) {
	trans := &fakeTranscriber{result: transcriptionFixture()}
	summ := &fakeSummarizer{summary: "done"}
	proc, audio, _ := testHarness(t, trans, summ)

	_, err := proc.Process(context.Background(), audio, Options{
		Summarize:  true,
		PromptText: "Count the sentences.",
	})
	require.NoError(t, err)

	require.Len(t, summ.prompts, 1)
	// No placeholder: transcript appended as a labeled section.
	assert.Contains(t, summ.prompts[0], "Count the sentences.")
	assert.Contains(t, summ.prompts[0], "Transcript:\nHello world. Second sentence.")
}

func TestProcessEmptyTranscriptIsValid(t *testing.T) {
	res := &transcriber.Result{Text: "   "}
	res.Raw, _ = json.Marshal(res)
	trans := &fakeTranscriber{result: res}
	summ := &fakeSummarizer{summary: "nothing to report"}
	proc, audio, _ := testHarness(t, trans, summ)

	outcome, err := proc.Process(context.Background(), audio, Options{Summarize: true})
	require.NoError(t, err)
	require.NoError(t, outcome.SummaryErr)
	assert.Equal(t, "", outcome.TranscriptText)

	var unwrapped error = outcome.SummaryErr
	assert.False(t, errors.Is(unwrapped, errs.ErrValidation))
}
