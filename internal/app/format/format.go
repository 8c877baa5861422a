package format

import (
	"fmt"
	"time"
)

// TimestampLayout is the display layout used for record dates.
const TimestampLayout = "2006-01-02 15:04:05"

var sizeUnits = []string{"B", "KB", "MB", "GB"}

// Size renders a byte count in human units with two decimal places,
// e.g. 1572864 -> "1.50 MB". Negative input is clamped to zero.
func Size(bytes int64) string {
	value := float64(bytes)
	if value < 0 {
		value = 0
	}
	for _, unit := range sizeUnits {
		if value < 1024.0 {
			return fmt.Sprintf("%.2f %s", value, unit)
		}
		value /= 1024.0
	}
	return fmt.Sprintf("%.2f TB", value)
}

// Duration renders a second count as minutes and seconds, e.g. 150 -> "2m 30s".
// Fractional seconds are truncated; negative input is clamped to zero.
func Duration(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int64(seconds)
	return fmt.Sprintf("%dm %ds", total/60, total%60)
}

// Timestamp renders an instant in the fixed display layout.
func Timestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// Preview returns the first n characters of text, or the whole string when it
// is shorter. Truncation is rune-safe so multi-byte transcripts are not split
// mid-character.
func Preview(text string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n])
}
