package transcriber

import "encoding/json"

// Result mirrors the provider's verbose transcription payload.
type Result struct {
	Task     string    `json:"task,omitempty"`
	Language string    `json:"language,omitempty"`
	Duration float64   `json:"duration,omitempty"`
	Text     string    `json:"text"`
	Segments []Segment `json:"segments,omitempty"`

	// Raw is the untouched provider response body, preserved so the JSON
	// artifact carries every field the provider sent.
	Raw json.RawMessage `json:"-"`
}

// Segment is one timed span of the transcript.
type Segment struct {
	ID    int     `json:"id"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}
