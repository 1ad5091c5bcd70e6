package prompt

import "strings"

// Placeholder is the literal token inside a template marking where the
// transcript text is substituted.
const Placeholder = "{transcript}"

// Render builds the final prompt sent to the summarizer. Every occurrence of
// the placeholder is replaced with the transcript; templates without the
// placeholder get the transcript appended as a labeled section. An empty
// transcript passes through as empty text. The stored template is never
// mutated.
func Render(template, transcript string) string {
	transcript = strings.TrimSpace(transcript)
	if strings.Contains(template, Placeholder) {
		return strings.ReplaceAll(template, Placeholder, transcript)
	}
	return strings.TrimSpace(template) + "\n\nTranscript:\n" + transcript
}
