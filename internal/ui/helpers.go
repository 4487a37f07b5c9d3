package ui

import (
	"fmt"
	"math"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/yaared/dealspot/internal/dealroom"
)

// UnknownField is rendered for any source metadata field the service
// did not supply.
const UnknownField = "Unknown"

// TruncateString truncates a string from the end with ellipsis,
// measuring display cells rather than bytes so wide runes don't
// overflow the panel.
func TruncateString(s string, maxWidth int) string {
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, "...")
}

// FormatScore renders a [0,1] relevance score as a rounded percentage,
// e.g. 0.873 -> "87%".
func FormatScore(score float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(score*100)))
}

// FormatCreatedDate renders a source's creation date, falling back to the
// raw metadata string when it doesn't parse, and to UnknownField when absent.
func FormatCreatedDate(m dealroom.Metadata) string {
	if t, ok := m.CreatedAt(); ok {
		return t.Format("Jan 2, 2006")
	}
	if raw, ok := m.Field(dealroom.MetaDateCreated); ok {
		return raw
	}
	return UnknownField
}

// MetaFieldOrUnknown returns the metadata field's display string, or
// UnknownField when the field is missing or empty.
func MetaFieldOrUnknown(m dealroom.Metadata, key string) string {
	if v, ok := m.Field(key); ok {
		return v
	}
	return UnknownField
}

// formatElapsed formats a duration as a stopwatch string (e.g., "1.2s", "1:23")
func formatElapsed(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	mins := int(d.Minutes())
	secs := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", mins, secs)
}
