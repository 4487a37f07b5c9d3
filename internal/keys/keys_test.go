package keys

import "testing"

// The constants are derived from tea.KeyPressMsg at init time; these
// assertions pin the string values the UI matches against.
func TestKeyStrings(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{Up, "up"},
		{Down, "down"},
		{Enter, "enter"},
		{Tab, "tab"},
		{ShiftTab, "shift+tab"},
		{Escape, "esc"},
		{PgUp, "pgup"},
		{PgDown, "pgdown"},
		{CtrlC, "ctrl+c"},
		{CtrlD, "ctrl+d"},
		{CtrlN, "ctrl+n"},
		{CtrlP, "ctrl+p"},
		{CtrlU, "ctrl+u"},
		{CtrlY, "ctrl+y"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("key constant = %q, want %q", tt.got, tt.want)
		}
	}
}
