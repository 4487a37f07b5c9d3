package ui

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// FlashType categorizes a transient footer message
type FlashType int

const (
	FlashInfo FlashType = iota
	FlashSuccess
	FlashWarning
	FlashError
)

// DefaultFlashDuration is how long a flash message stays visible
const DefaultFlashDuration = 4 * time.Second

// FlashMessage is a transient message shown in place of the key bindings
type FlashMessage struct {
	Text     string
	Type     FlashType
	Duration time.Duration
	SetAt    time.Time
}

// FlashTickMsg is sent to expire a displayed flash message
type FlashTickMsg time.Time

// FlashTick returns a command that sends a tick to expire flash messages
func FlashTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return FlashTickMsg(t)
	})
}

// Footer represents the bottom footer bar with keybindings
type Footer struct {
	width           int
	bindings        []KeyBinding
	flashMessage    *FlashMessage
	dealSelected    bool // Whether a deal is currently bound
	selectorFocused bool // Whether the deal selector has focus
	asking          bool // Whether an ask request is in flight
	hasAnswer       bool // Whether an answer is currently displayed
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{
		bindings: []KeyBinding{
			{Key: "↑/↓", Desc: "navigate"},
			{Key: "enter", Desc: "select"},
			{Key: "esc", Desc: "clear filter"},
			{Key: "tab", Desc: "switch pane"},
			{Key: "ctrl+c", Desc: "quit"},
		},
	}
}

// SetContext updates the footer's context for conditional bindings
func (f *Footer) SetContext(dealSelected, selectorFocused, asking, hasAnswer bool) {
	f.dealSelected = dealSelected
	f.selectorFocused = selectorFocused
	f.asking = asking
	f.hasAnswer = hasAnswer
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetBindings allows custom keybindings
func (f *Footer) SetBindings(bindings []KeyBinding) {
	f.bindings = bindings
}

// SetFlash displays a transient message with the default duration
func (f *Footer) SetFlash(text string, flashType FlashType) {
	f.SetFlashWithDuration(text, flashType, DefaultFlashDuration)
}

// SetFlashWithDuration displays a transient message for a custom duration
func (f *Footer) SetFlashWithDuration(text string, flashType FlashType, d time.Duration) {
	f.flashMessage = &FlashMessage{
		Text:     text,
		Type:     flashType,
		Duration: d,
		SetAt:    time.Now(),
	}
}

// ClearFlash removes any displayed flash message
func (f *Footer) ClearFlash() {
	f.flashMessage = nil
}

// HasFlash returns whether a flash message is currently displayed
func (f *Footer) HasFlash() bool {
	return f.flashMessage != nil
}

// Update expires flash messages on tick. Returns a follow-up tick command
// while a flash is still displayed.
func (f *Footer) Update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(FlashTickMsg); ok && f.flashMessage != nil {
		if time.Since(f.flashMessage.SetAt) >= f.flashMessage.Duration {
			f.flashMessage = nil
			return nil
		}
		return FlashTick()
	}
	return nil
}

// flashStyle returns the text style for a flash type
func flashStyle(t FlashType) lipgloss.Style {
	switch t {
	case FlashError:
		return lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	case FlashWarning:
		return lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)
	case FlashSuccess:
		return lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(ColorInfo)
	}
}

// View renders the footer
func (f *Footer) View() string {
	if f.flashMessage != nil {
		return FooterStyle.Width(f.width).Render(flashStyle(f.flashMessage.Type).Render(f.flashMessage.Text))
	}

	var active []KeyBinding
	switch {
	case f.asking && !f.selectorFocused:
		active = []KeyBinding{
			{Key: "esc", Desc: "cancel"},
			{Key: "tab", Desc: "switch pane"},
			{Key: "ctrl+c", Desc: "quit"},
		}
	case f.dealSelected && !f.selectorFocused:
		active = []KeyBinding{{Key: "enter", Desc: "ask"}}
		if f.hasAnswer {
			active = append(active, KeyBinding{Key: "ctrl+y", Desc: "copy answer"})
		}
		active = append(active,
			KeyBinding{Key: "ctrl+d", Desc: "change deal"},
			KeyBinding{Key: "pgup/dn", Desc: "scroll"},
			KeyBinding{Key: "tab", Desc: "switch pane"},
			KeyBinding{Key: "ctrl+c", Desc: "quit"},
		)
	default:
		active = f.bindings
		if !f.dealSelected {
			// Can't switch panes without a bound deal
			filtered := active[:0:0]
			for _, b := range active {
				if b.Key == "tab" {
					continue
				}
				filtered = append(filtered, b)
			}
			active = filtered
		}
	}

	var parts []string
	for _, b := range active {
		key := FooterKeyStyle.Render(b.Key)
		desc := FooterDescStyle.Render(": " + b.Desc)
		parts = append(parts, key+desc)
	}

	content := strings.Join(parts, "  "+lipgloss.NewStyle().Foreground(ColorBorder).Render("|")+"  ")

	return FooterStyle.Width(f.width).Render(content)
}
