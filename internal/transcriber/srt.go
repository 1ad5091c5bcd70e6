package transcriber

import (
	"fmt"
	"math"
	"strings"
)

// FormatSRT renders the segments as SRT caption blocks. Segments with blank
// text are skipped; their index is still consumed so caption numbering stays
// aligned with the provider's segment order.
func FormatSRT(segments []Segment) string {
	var lines []string
	for i, seg := range segments {
		text := strings.TrimSpace(seg.Text)
		if text == "" {
			continue
		}
		lines = append(lines,
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%s --> %s", srtTimestamp(seg.Start), srtTimestamp(seg.End)),
			text,
			"",
		)
	}

	body := strings.TrimSpace(strings.Join(lines, "\n"))
	if body == "" {
		return ""
	}
	return body + "\n"
}

// srtTimestamp formats seconds as HH:MM:SS,mmm.
func srtTimestamp(seconds float64) string {
	millis := int(math.Round(seconds * 1000))
	if millis < 0 {
		millis = 0
	}
	hours := millis / 3_600_000
	millis %= 3_600_000
	minutes := millis / 60_000
	millis %= 60_000
	secs := millis / 1000
	millis %= 1000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, secs, millis)
}
