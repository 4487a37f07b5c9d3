package ui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/yaared/dealspot/internal/keys"
)

// catalogPhase is the tagged state of the deal catalog fetch.
// Exactly one of loading / errored / ready holds at any time.
type catalogPhase int

const (
	catalogLoading catalogPhase = iota
	catalogErrored
	catalogReady
)

// Selector is the left panel: the deal catalog with a free-text filter,
// a keyboard-driven highlight cursor, and the currently bound deal.
type Selector struct {
	input textinput.Model

	phase    catalogPhase
	errMsg   string
	deals    []string // full catalog, order as returned by the service
	filtered []string // candidates matching the filter, catalog order

	highlight    int // cursor into filtered; -1 when nothing highlighted
	scrollOffset int
	visibleRows  int

	boundDeal string // deal bound to the session, empty when choosing

	width   int
	height  int
	focused bool
}

// NewSelector creates a selector in the catalog-loading phase.
func NewSelector() *Selector {
	ti := textinput.New()
	ti.Placeholder = "filter deals..."
	ti.CharLimit = FilterInputCharLimit

	return &Selector{
		input:     ti,
		phase:     catalogLoading,
		highlight: -1,
	}
}

// SetSize sets the selector panel dimensions
func (s *Selector) SetSize(width, height int) {
	s.width = width
	s.height = height

	// Inner area minus the filter input line
	rows := height - BorderSize - 1
	if rows < 1 {
		rows = 1
	}
	s.visibleRows = rows
	s.clampScroll()
}

// Width returns the selector width
func (s *Selector) Width() int {
	return s.width
}

// SetFocused sets the focus state
func (s *Selector) SetFocused(focused bool) {
	s.focused = focused
	if focused && s.boundDeal == "" {
		s.input.Focus()
	} else {
		s.input.Blur()
	}
}

// IsFocused returns the focus state
func (s *Selector) IsFocused() bool {
	return s.focused
}

// SetCatalog stores the fetched deal names and clears any fetch error.
func (s *Selector) SetCatalog(deals []string) {
	s.phase = catalogReady
	s.errMsg = ""
	s.deals = deals
	s.applyFilter()
}

// SetCatalogError moves the catalog to the errored phase. The catalog
// stays empty; there is no retry affordance.
func (s *Selector) SetCatalogError(msg string) {
	s.phase = catalogErrored
	s.errMsg = msg
	s.deals = nil
	s.filtered = nil
	s.highlight = -1
	s.scrollOffset = 0
}

// IsLoading reports whether the catalog fetch is still in flight.
func (s *Selector) IsLoading() bool {
	return s.phase == catalogLoading
}

// Filtered returns the candidate deals matching the current filter,
// catalog order preserved.
func (s *Selector) Filtered() []string {
	return s.filtered
}

// FilterText returns the current filter string.
func (s *Selector) FilterText() string {
	return s.input.Value()
}

// Highlight returns the cursor index into the filtered list (-1 when none).
func (s *Selector) Highlight() int {
	return s.highlight
}

// HighlightedDeal returns the deal under the cursor, if any.
func (s *Selector) HighlightedDeal() (string, bool) {
	if s.highlight < 0 || s.highlight >= len(s.filtered) {
		return "", false
	}
	return s.filtered[s.highlight], true
}

// BoundDeal returns the deal currently bound to the session, or "".
func (s *Selector) BoundDeal() string {
	return s.boundDeal
}

// SetBoundDeal records a successful remote bind: the filter is cleared
// and the selector shows the bound deal instead of the candidate list.
func (s *Selector) SetBoundDeal(deal string) {
	s.boundDeal = deal
	s.input.SetValue("")
	s.input.Blur()
	s.applyFilter()
}

// ClearBoundDeal returns the selector to the choosing view. The filter
// text and catalog are left as they were.
func (s *Selector) ClearBoundDeal() {
	s.boundDeal = ""
	if s.focused {
		s.input.Focus()
	}
	s.applyFilter()
}

// MoveDown advances the cursor by one, clamped at the last candidate,
// scrolling the highlighted row into view. No-op on an empty candidate set.
func (s *Selector) MoveDown() {
	if len(s.filtered) == 0 {
		return
	}
	if s.highlight < len(s.filtered)-1 {
		s.highlight++
	}
	if s.highlight >= s.scrollOffset+s.visibleRows {
		s.scrollOffset = s.highlight - s.visibleRows + 1
	}
}

// MoveUp moves the cursor back by one, clamped at zero, scrolling the
// highlighted row into view. No-op on an empty candidate set.
func (s *Selector) MoveUp() {
	if len(s.filtered) == 0 {
		return
	}
	if s.highlight > 0 {
		s.highlight--
	} else {
		s.highlight = 0
	}
	if s.highlight < s.scrollOffset {
		s.scrollOffset = s.highlight
	}
}

// ClearFilter clears the filter text. The highlight survives where the
// restored candidate list still contains it.
func (s *Selector) ClearFilter() {
	s.input.SetValue("")
	s.applyFilter()
}

// applyFilter rebuilds the candidate list: case-insensitive substring
// match against the filter, catalog order preserved. The highlight is
// clamped into the new list rather than reset, so it survives filter
// changes that keep it valid.
func (s *Selector) applyFilter() {
	query := strings.ToLower(s.input.Value())

	if query == "" {
		s.filtered = s.deals
	} else {
		s.filtered = nil
		for _, deal := range s.deals {
			if strings.Contains(strings.ToLower(deal), query) {
				s.filtered = append(s.filtered, deal)
			}
		}
	}

	if s.highlight >= len(s.filtered) {
		s.highlight = len(s.filtered) - 1
	}
	if s.highlight < -1 {
		s.highlight = -1
	}
	s.clampScroll()
}

// clampScroll keeps the scroll offset valid for the current list size.
func (s *Selector) clampScroll() {
	maxScroll := len(s.filtered) - s.visibleRows
	if maxScroll < 0 {
		maxScroll = 0
	}
	if s.scrollOffset > maxScroll {
		s.scrollOffset = maxScroll
	}
	if s.scrollOffset < 0 {
		s.scrollOffset = 0
	}
}

// Update handles key input while the selector is focused and choosing.
// Enter is intentionally not handled here: committing a selection
// triggers a remote call, which the app model owns.
func (s *Selector) Update(msg tea.Msg) (*Selector, tea.Cmd) {
	if !s.focused || s.boundDeal != "" || s.phase != catalogReady {
		return s, nil
	}

	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case keys.Down, keys.CtrlN:
			s.MoveDown()
			return s, nil
		case keys.Up, keys.CtrlP:
			s.MoveUp()
			return s, nil
		case keys.Escape:
			// Inert on an empty candidate set, like the other nav keys;
			// the filter can only be edited back out of it.
			if len(s.filtered) > 0 {
				s.ClearFilter()
			}
			return s, nil
		}
	}

	var cmd tea.Cmd
	oldValue := s.input.Value()
	s.input, cmd = s.input.Update(msg)
	if s.input.Value() != oldValue {
		s.applyFilter()
	}
	return s, cmd
}

// renderBound renders the panel once a deal is bound to the session.
func (s *Selector) renderBound(innerWidth int) string {
	var sb strings.Builder
	sb.WriteString(StatusEmptyStyle.Render("Selected deal"))
	sb.WriteString("\n\n")
	sb.WriteString(ListBoundDealStyle.Render(" " + TruncateString(s.boundDeal, innerWidth-2)))
	sb.WriteString("\n\n")
	sb.WriteString(SourceMetaStyle.Render(" ctrl+d to change deal"))
	return sb.String()
}

// renderList renders the filter input plus the scrolled candidate list.
func (s *Selector) renderList(innerWidth, innerHeight int) string {
	s.input.SetWidth(innerWidth - 3) // leave room for "/ "
	filterLine := lipgloss.NewStyle().Foreground(ColorSecondary).Bold(true).Render("/") + " " + s.input.View()

	if len(s.filtered) == 0 {
		var empty string
		if len(s.deals) == 0 {
			empty = StatusEmptyStyle.Render("No deals available.")
		} else {
			empty = StatusEmptyStyle.Render("No deals match.")
		}
		return filterLine + "\n" + empty
	}

	visibleEnd := s.scrollOffset + s.visibleRows
	if visibleEnd > len(s.filtered) {
		visibleEnd = len(s.filtered)
	}

	var lines []string
	if s.scrollOffset > 0 {
		lines = append(lines, SourceMetaStyle.Render("  ↑ more"))
	}
	for i := s.scrollOffset; i < visibleEnd; i++ {
		name := TruncateString(s.filtered[i], innerWidth-4)
		if i == s.highlight {
			lines = append(lines, ListSelectedStyle.Width(innerWidth).Render("> "+name))
		} else {
			lines = append(lines, ListItemStyle.Render("  "+name))
		}
	}
	if visibleEnd < len(s.filtered) {
		lines = append(lines, SourceMetaStyle.Render("  ↓ more"))
	}

	content := filterLine + "\n" + strings.Join(lines, "\n")

	// Trim to the panel's inner height
	all := strings.Split(content, "\n")
	if len(all) > innerHeight && innerHeight > 0 {
		all = all[:innerHeight]
	}
	return strings.Join(all, "\n")
}

// View renders the selector panel
func (s *Selector) View() string {
	style := PanelStyle
	if s.focused {
		style = PanelFocusedStyle
	}

	innerWidth := s.width - BorderSize
	innerHeight := s.height - BorderSize

	var content string
	switch {
	case s.boundDeal != "":
		content = s.renderBound(innerWidth)
	case s.phase == catalogLoading:
		content = StatusLoadingStyle.Render("Loading deals...")
	case s.phase == catalogErrored:
		content = StatusErrorStyle.Render(fmt.Sprintf("Error: %s", s.errMsg))
	default:
		content = s.renderList(innerWidth, innerHeight)
	}

	// lipgloss Width/Height size the content box; the border adds BorderSize
	return style.Width(innerWidth).Height(innerHeight).Render(content)
}
