package ui

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/yaared/dealspot/internal/dealroom"
	"github.com/yaared/dealspot/internal/keys"
)

// AskResult is the tagged state of the ask panel's result area.
// Exactly one variant holds at any time.
type AskResult interface {
	askResult()
}

// AskIdle means no question has been asked yet.
type AskIdle struct{}

// AskLoading means a question is in flight.
type AskLoading struct {
	Question string
	Verb     string
	Started  time.Time
}

// AskAnswered holds a completed answer with its sources.
type AskAnswered struct {
	Question string
	Answer   dealroom.Answer
}

// AskErrored holds a failed ask.
type AskErrored struct {
	Question string
	Message  string
}

func (AskIdle) askResult()     {}
func (AskLoading) askResult()  {}
func (AskAnswered) askResult() {}
func (AskErrored) askResult()  {}

// waitingVerbs are shown while an answer is in flight, one picked at
// random per question.
var waitingVerbs = []string{
	"Thinking",
	"Digging",
	"Rummaging",
	"Consulting",
	"Cross-referencing",
	"Sifting",
}

// RandomWaitingVerb picks a verb for the in-flight status line.
func RandomWaitingVerb() string {
	return waitingVerbs[rand.Intn(len(waitingVerbs))]
}

// AskTickMsg drives the stopwatch while an ask is in flight
type AskTickMsg time.Time

// AskTick returns a command that ticks the in-flight stopwatch
func AskTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return AskTickMsg(t)
	})
}

// AskPanel is the right panel: the question input plus the scrollable
// answer-and-sources area.
type AskPanel struct {
	input    textarea.Model
	viewport viewport.Model

	result AskResult

	width   int
	height  int
	focused bool
	ready   bool
}

// NewAskPanel creates an ask panel in the idle state.
func NewAskPanel() *AskPanel {
	ta := textarea.New()
	ta.Placeholder = "Ask a question about this deal..."
	ta.ShowLineNumbers = false
	ta.SetHeight(TextareaHeight)
	ta.CharLimit = 0

	vp := viewport.New()

	return &AskPanel{
		input:    ta,
		viewport: vp,
		result:   AskIdle{},
	}
}

// SetSize sets the ask panel dimensions
func (a *AskPanel) SetSize(width, height int) {
	a.width = width
	a.height = height

	innerWidth := width - BorderSize - InputPaddingWidth
	if innerWidth < 1 {
		innerWidth = 1
	}
	a.input.SetWidth(innerWidth)

	vpHeight := height - InputTotalHeight - BorderSize
	if vpHeight < 1 {
		vpHeight = 1
	}
	vpWidth := width - BorderSize
	if vpWidth < 1 {
		vpWidth = 1
	}

	a.viewport.SetWidth(vpWidth)
	a.viewport.SetHeight(vpHeight)
	a.ready = true
	a.refreshViewport()
}

// SetFocused sets the focus state
func (a *AskPanel) SetFocused(focused bool) {
	a.focused = focused
	if focused {
		a.input.Focus()
	} else {
		a.input.Blur()
	}
}

// IsFocused returns the focus state
func (a *AskPanel) IsFocused() bool {
	return a.focused
}

// Question returns the current input text, whitespace trimmed.
func (a *AskPanel) Question() string {
	return strings.TrimSpace(a.input.Value())
}

// ClearInput clears the question input
func (a *AskPanel) ClearInput() {
	a.input.Reset()
}

// SetInput replaces the question input text, e.g. restoring a
// cancelled question for editing.
func (a *AskPanel) SetInput(text string) {
	a.input.SetValue(text)
}

// Result returns the current result state.
func (a *AskPanel) Result() AskResult {
	return a.result
}

// IsAsking reports whether a question is in flight.
func (a *AskPanel) IsAsking() bool {
	_, ok := a.result.(AskLoading)
	return ok
}

// AnswerText returns the displayed answer text, if any.
func (a *AskPanel) AnswerText() (string, bool) {
	if r, ok := a.result.(AskAnswered); ok {
		return r.Answer.Answer, true
	}
	return "", false
}

// SetLoading moves the panel into the in-flight state for a question.
func (a *AskPanel) SetLoading(question, verb string) {
	a.result = AskLoading{Question: question, Verb: verb, Started: time.Now()}
	a.refreshViewport()
}

// SetAnswer replaces the result area with a completed answer.
func (a *AskPanel) SetAnswer(question string, answer dealroom.Answer) {
	a.result = AskAnswered{Question: question, Answer: answer}
	a.refreshViewport()
	a.viewport.GotoTop()
}

// SetError replaces the result area with a failure message. Any prior
// answer is discarded, matching the loading transition.
func (a *AskPanel) SetError(question, message string) {
	a.result = AskErrored{Question: question, Message: message}
	a.refreshViewport()
}

// SetIdle clears the result area, e.g. when the bound deal changes.
func (a *AskPanel) SetIdle() {
	a.result = AskIdle{}
	a.input.Reset()
	a.refreshViewport()
}

// Update handles key input and viewport scrolling while focused.
// Enter is handled by the app model, which owns the ask round-trip.
func (a *AskPanel) Update(msg tea.Msg) (*AskPanel, tea.Cmd) {
	switch m := msg.(type) {
	case AskTickMsg:
		if a.IsAsking() {
			a.refreshViewport()
			return a, AskTick()
		}
		return a, nil
	case tea.KeyPressMsg:
		if !a.focused {
			return a, nil
		}
		switch m.String() {
		case keys.PgUp, keys.PgDown:
			// The viewport's own keymap handles paging
			var cmd tea.Cmd
			a.viewport, cmd = a.viewport.Update(msg)
			return a, cmd
		case keys.CtrlU:
			a.input.Reset()
			return a, nil
		}
	}

	if !a.focused {
		return a, nil
	}
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// refreshViewport re-renders the result area into the viewport.
func (a *AskPanel) refreshViewport() {
	if !a.ready {
		return
	}
	a.viewport.SetContent(a.renderResult(a.viewport.Width()))
}

// renderSource renders one source block: name, relevance, excerpt, and
// the size/author/created metadata line. Missing fields render as
// "Unknown" rather than being omitted.
func renderSource(idx int, src dealroom.Source, width int) string {
	name := MetaFieldOrUnknown(src.Metadata, dealroom.MetaName)
	size := MetaFieldOrUnknown(src.Metadata, dealroom.MetaSize)
	author := MetaFieldOrUnknown(src.Metadata, dealroom.MetaAuthor)
	created := FormatCreatedDate(src.Metadata)

	var sb strings.Builder
	sb.WriteString(SourceNameStyle.Render(fmt.Sprintf("%d. %s", idx+1, name)))
	sb.WriteString("  ")
	sb.WriteString(SourceScoreStyle.Render(FormatScore(src.Score)))
	sb.WriteString("\n")

	text := strings.TrimSpace(src.Text)
	if text != "" {
		wrapped := lipgloss.NewStyle().Width(width).Render(text)
		sb.WriteString(SourceTextStyle.Render(wrapped))
		sb.WriteString("\n")
	}

	meta := fmt.Sprintf("size: %s  author: %s  created: %s", size, author, created)
	sb.WriteString(SourceMetaStyle.Render(meta))

	return sb.String()
}

// renderResult renders the result area for the current state.
func (a *AskPanel) renderResult(width int) string {
	if width < 1 {
		width = DefaultWrapWidth
	}

	switch r := a.result.(type) {
	case AskIdle:
		return StatusEmptyStyle.Render("Ask a question to get started.")

	case AskLoading:
		elapsed := formatElapsed(time.Since(r.Started))
		var sb strings.Builder
		sb.WriteString(QuestionStyle.Render("> " + r.Question))
		sb.WriteString("\n\n")
		sb.WriteString(StatusLoadingStyle.Render(fmt.Sprintf("%s... (%s)", r.Verb, elapsed)))
		return sb.String()

	case AskErrored:
		var sb strings.Builder
		if r.Question != "" {
			sb.WriteString(QuestionStyle.Render("> " + r.Question))
			sb.WriteString("\n\n")
		}
		sb.WriteString(StatusErrorStyle.Render("Error: " + r.Message))
		return sb.String()

	case AskAnswered:
		var sb strings.Builder
		sb.WriteString(QuestionStyle.Render("> " + r.Question))
		sb.WriteString("\n\n")
		sb.WriteString(AnswerHeadingStyle.Render("Answer"))
		sb.WriteString("\n")
		sb.WriteString(lipgloss.NewStyle().Width(width).Render(r.Answer.Answer))

		if len(r.Answer.Sources) > 0 {
			sb.WriteString("\n\n")
			sb.WriteString(AnswerHeadingStyle.Render(fmt.Sprintf("Sources (%d)", len(r.Answer.Sources))))
			for i, src := range r.Answer.Sources {
				sb.WriteString("\n\n")
				sb.WriteString(renderSource(i, src, width))
			}
		}
		return sb.String()
	}
	return ""
}

// View renders the ask panel
func (a *AskPanel) View() string {
	panelStyle := PanelStyle
	if a.focused {
		panelStyle = PanelFocusedStyle
	}

	inputStyle := InputStyle
	if a.focused {
		inputStyle = InputFocusedStyle
	}

	resultView := a.viewport.View()
	inputView := inputStyle.Width(a.width - BorderSize - BorderSize - InputPaddingWidth).Render(a.input.View())

	content := lipgloss.JoinVertical(lipgloss.Left, resultView, inputView)

	// lipgloss Width/Height size the content box; the border adds BorderSize
	return panelStyle.Width(a.width - BorderSize).Height(a.height - BorderSize).Render(content)
}
