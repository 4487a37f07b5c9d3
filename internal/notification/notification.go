// Package notification sends desktop notifications for long-running
// operations that finish while the user is elsewhere.
package notification

import (
	"github.com/gen2brain/beeep"

	"github.com/yaared/dealspot/internal/logger"
)

var enabled = true

// SetEnabled toggles desktop notifications globally.
func SetEnabled(on bool) {
	enabled = on
}

// Enabled reports whether desktop notifications are on.
func Enabled() bool {
	return enabled
}

// notify sends a desktop notification. Failures are logged, never fatal.
func notify(title, message string) {
	if !enabled {
		return
	}
	if err := beeep.Notify(title, message, ""); err != nil {
		logger.Debug("notification failed: %v", err)
	}
}

// AnswerReady notifies that an answer arrived for the given deal.
func AnswerReady(deal string) {
	notify("dealspot", "Answer ready for "+deal)
}

// AskFailed notifies that a question could not be answered.
func AskFailed(deal string) {
	notify("dealspot", "Question failed for "+deal)
}
