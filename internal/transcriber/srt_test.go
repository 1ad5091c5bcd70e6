package transcriber

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSRTTimestamp(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "00:00:00,000"},
		{1.5, "00:00:01,500"},
		{59.9994, "00:00:59,999"},
		{61.25, "00:01:01,250"},
		{3661.007, "01:01:01,007"},
		{-0.5, "00:00:00,000"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, srtTimestamp(tt.seconds), "seconds=%v", tt.seconds)
	}
}

func TestFormatSRT(t *testing.T) {
	segments := []Segment{
		{ID: 0, Start: 0, End: 2.5, Text: " Hello there. "},
		{ID: 1, Start: 2.5, End: 4, Text: "Second line."},
	}

	want := "1\n" +
		"00:00:00,000 --> 00:00:02,500\n" +
		"Hello there.\n" +
		"\n" +
		"2\n" +
		"00:00:02,500 --> 00:00:04,000\n" +
		"Second line.\n"

	assert.Equal(t, want, FormatSRT(segments))
}

func TestFormatSRTSkipsBlankSegments(t *testing.T) {
	segments := []Segment{
		{Start: 0, End: 1, Text: "First."},
		{Start: 1, End: 2, Text: "   "},
		{Start: 2, End: 3, Text: "Third."},
	}

	got := FormatSRT(segments)
	// The blank segment is dropped but its index is consumed.
	assert.Contains(t, got, "1\n00:00:00,000")
	assert.Contains(t, got, "3\n00:00:02,000")
	assert.NotContains(t, got, "\n2\n")
}

func TestFormatSRTEmpty(t *testing.T) {
	assert.Equal(t, "", FormatSRT(nil))
	assert.Equal(t, "", FormatSRT([]Segment{{Text: "  "}}))
}
