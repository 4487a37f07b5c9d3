package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/yaared/dealspot/internal/ui"
)

// layout distributes the window between the panels. The selector takes
// a third of the width, the ask panel the rest.
func (m *Model) layout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}

	m.header.SetWidth(m.width)
	m.footer.SetWidth(m.width)

	contentHeight := m.height - ui.HeaderHeight - ui.FooterHeight
	if contentHeight < 1 {
		contentHeight = 1
	}

	selectorWidth := m.width / ui.SelectorWidthRatio
	askWidth := m.width - selectorWidth

	m.selector.SetSize(selectorWidth, contentHeight)
	m.ask.SetSize(askWidth, contentHeight)
}

// View renders the full application
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		v.SetContent("Loading...")
		return v
	}

	m.syncFooter()

	panels := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.selector.View(),
		m.ask.View(),
	)

	v.SetContent(lipgloss.JoinVertical(
		lipgloss.Left,
		m.header.View(),
		panels,
		m.footer.View(),
	))
	return v
}
