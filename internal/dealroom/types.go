package dealroom

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// Answer is the response to one question: generated answer text plus the
// ordered source excerpts that support it.
type Answer struct {
	Answer  string   `json:"answer"`
	Sources []Source `json:"sources"`
}

// Source is one supporting excerpt. Score is a relevance value in [0,1].
// Metadata is loosely typed on the wire; unknown keys are carried but ignored.
type Source struct {
	Text     string   `json:"text"`
	Score    float64  `json:"score"`
	Metadata Metadata `json:"metadata"`
}

// Metadata is the loosely-typed metadata mapping attached to a source.
// The service promises nothing about which keys are present or what Go
// types the JSON values decode to.
type Metadata map[string]any

// Well-known metadata keys.
const (
	MetaName        = "name"
	MetaSize        = "size"
	MetaAuthor      = "author"
	MetaDateCreated = "date_created"
)

// stringValue renders an arbitrary metadata value for display.
// JSON numbers arrive as float64; integral values drop the decimal point.
func stringValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		if val == math.Trunc(val) {
			return strconv.FormatInt(int64(val), 10)
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// Field returns the display string for a metadata key.
// Missing or empty values report ok=false.
func (m Metadata) Field(key string) (string, bool) {
	v, present := m[key]
	if !present || v == nil {
		return "", false
	}
	s := stringValue(v)
	if s == "" {
		return "", false
	}
	return s, true
}

// CreatedAt parses the date_created value. The service emits RFC 3339
// timestamps; plain dates and Unix-epoch numbers appear in older payloads.
func (m Metadata) CreatedAt() (time.Time, bool) {
	v, present := m[MetaDateCreated]
	if !present || v == nil {
		return time.Time{}, false
	}

	switch val := v.(type) {
	case string:
		for _, layout := range []string{time.RFC3339, "2006-01-02", "2006-01-02 15:04:05"} {
			if t, err := time.Parse(layout, val); err == nil {
				return t, true
			}
		}
		return time.Time{}, false
	case float64:
		return time.Unix(int64(val), 0).UTC(), true
	default:
		return time.Time{}, false
	}
}
