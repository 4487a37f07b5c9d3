// Package clipboard copies text to the system clipboard.
package clipboard

import (
	"sync"

	xclipboard "golang.design/x/clipboard"

	apperrors "github.com/yaared/dealspot/internal/errors"
)

var (
	initOnce sync.Once
	initErr  error
)

// WriteText copies text to the system clipboard. The underlying
// library needs a one-time init that can fail on headless systems;
// that failure is returned on every call.
func WriteText(text string) error {
	const op apperrors.Op = "clipboard.WriteText"

	initOnce.Do(func() {
		initErr = xclipboard.Init()
	})
	if initErr != nil {
		return apperrors.E(op, apperrors.KindIO, initErr, "clipboard unavailable")
	}

	xclipboard.Write(xclipboard.FmtText, []byte(text))
	return nil
}
