package ui

import (
	"testing"
	"time"

	"github.com/yaared/dealspot/internal/dealroom"
)

func TestFormatScore(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{0.873, "87%"},
		{0.875, "88%"}, // rounds, not truncates
		{0.0, "0%"},
		{1.0, "100%"},
		{0.004, "0%"},
		{0.005, "1%"},
		{0.5, "50%"},
	}
	for _, tt := range tests {
		if got := FormatScore(tt.score); got != tt.want {
			t.Errorf("FormatScore(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"fits", "short", 10, "short"},
		{"exact", "exactly10!", 10, "exactly10!"},
		{"truncated", "a very long deal name", 10, "a very ..."},
		{"wide runes", "日本語のテキスト", 8, "日本..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateString(tt.input, tt.maxWidth); got != tt.want {
				t.Errorf("TruncateString(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestMetaFieldOrUnknown(t *testing.T) {
	m := dealroom.Metadata{"name": "deck.pdf", "size": float64(1024)}

	if got := MetaFieldOrUnknown(m, dealroom.MetaName); got != "deck.pdf" {
		t.Errorf("expected deck.pdf, got %q", got)
	}
	if got := MetaFieldOrUnknown(m, dealroom.MetaSize); got != "1024" {
		t.Errorf("expected 1024, got %q", got)
	}
	if got := MetaFieldOrUnknown(m, dealroom.MetaAuthor); got != UnknownField {
		t.Errorf("expected %q for missing field, got %q", UnknownField, got)
	}
	if got := MetaFieldOrUnknown(nil, dealroom.MetaName); got != UnknownField {
		t.Errorf("expected %q for nil metadata, got %q", UnknownField, got)
	}
}

func TestFormatCreatedDate(t *testing.T) {
	tests := []struct {
		name string
		meta dealroom.Metadata
		want string
	}{
		{"rfc3339", dealroom.Metadata{"date_created": "2024-03-15T10:30:00Z"}, "Mar 15, 2024"},
		{"plain date", dealroom.Metadata{"date_created": "2024-03-15"}, "Mar 15, 2024"},
		{"unparseable falls back to raw", dealroom.Metadata{"date_created": "Q3 2024"}, "Q3 2024"},
		{"missing", dealroom.Metadata{}, UnknownField},
		{"nil metadata", nil, UnknownField},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatCreatedDate(tt.meta); got != tt.want {
				t.Errorf("FormatCreatedDate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{1200 * time.Millisecond, "1.2s"},
		{59 * time.Second, "59.0s"},
		{83 * time.Second, "1:23"},
		{10 * time.Minute, "10:00"},
	}
	for _, tt := range tests {
		if got := formatElapsed(tt.d); got != tt.want {
			t.Errorf("formatElapsed(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
