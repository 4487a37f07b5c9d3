package ui

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func newReadySelector(deals []string) *Selector {
	s := NewSelector()
	s.SetSize(40, 20)
	s.SetFocused(true)
	s.SetCatalog(deals)
	return s
}

func setFilter(s *Selector, text string) {
	s.input.SetValue(text)
	s.applyFilter()
}

func TestSelectorStartsLoading(t *testing.T) {
	s := NewSelector()
	if !s.IsLoading() {
		t.Error("expected a new selector to be in the loading phase")
	}
	if _, ok := s.HighlightedDeal(); ok {
		t.Error("expected no highlighted deal while loading")
	}
}

func TestSelectorFilterMatching(t *testing.T) {
	s := newReadySelector([]string{
		"Acme Corp Acquisition",
		"Zenith Merger",
		"acme-west expansion",
		"Summit Buyout",
	})

	// Case-insensitive substring, catalog order preserved
	setFilter(s, "acme")
	got := s.Filtered()
	want := []string{"Acme Corp Acquisition", "acme-west expansion"}
	if len(got) != len(want) {
		t.Fatalf("expected %d matches, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("match %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestSelectorFilterNoMatches(t *testing.T) {
	s := newReadySelector([]string{"Acme Corp Acquisition", "Zenith Merger"})

	setFilter(s, "zzz")
	if len(s.Filtered()) != 0 {
		t.Errorf("expected no matches, got %v", s.Filtered())
	}
	if s.Highlight() != -1 {
		t.Errorf("expected highlight -1 on empty candidate set, got %d", s.Highlight())
	}

	// Navigation on an empty candidate set is a no-op
	s.MoveDown()
	s.MoveUp()
	if s.Highlight() != -1 {
		t.Errorf("expected highlight to stay -1, got %d", s.Highlight())
	}
	if _, ok := s.HighlightedDeal(); ok {
		t.Error("expected no highlighted deal on empty candidate set")
	}

	// Escape is inert too; the filter text stays put
	s, _ = s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if s.FilterText() != "zzz" {
		t.Errorf("expected Escape to leave the filter untouched, got %q", s.FilterText())
	}
}

func TestSelectorNavigationClamps(t *testing.T) {
	s := newReadySelector([]string{"one", "two", "three"})

	if s.Highlight() != -1 {
		t.Fatalf("expected initial highlight -1, got %d", s.Highlight())
	}

	s.MoveDown()
	if s.Highlight() != 0 {
		t.Errorf("expected highlight 0 after first Down, got %d", s.Highlight())
	}

	// Down clamps at the last candidate
	for i := 0; i < 10; i++ {
		s.MoveDown()
	}
	if s.Highlight() != 2 {
		t.Errorf("expected highlight clamped at 2, got %d", s.Highlight())
	}

	// Up clamps at zero
	for i := 0; i < 10; i++ {
		s.MoveUp()
	}
	if s.Highlight() != 0 {
		t.Errorf("expected highlight clamped at 0, got %d", s.Highlight())
	}
}

func TestSelectorUpFromNoHighlight(t *testing.T) {
	s := newReadySelector([]string{"one", "two"})

	s.MoveUp()
	if s.Highlight() != 0 {
		t.Errorf("expected Up from -1 to land on 0, got %d", s.Highlight())
	}
}

func TestSelectorHighlightClampedOnFilterChange(t *testing.T) {
	s := newReadySelector([]string{"alpha deal", "beta deal", "gamma deal"})

	s.MoveDown()
	s.MoveDown()
	s.MoveDown()
	if s.Highlight() != 2 {
		t.Fatalf("expected highlight 2, got %d", s.Highlight())
	}

	// Narrowing the filter shrinks the list; the cursor clamps into range
	setFilter(s, "alpha")
	if s.Highlight() != 0 {
		t.Errorf("expected highlight clamped to 0, got %d", s.Highlight())
	}

	setFilter(s, "nothing matches this")
	if s.Highlight() != -1 {
		t.Errorf("expected highlight -1, got %d", s.Highlight())
	}
}

func TestSelectorEscapeClearsFilterOnly(t *testing.T) {
	s := newReadySelector([]string{"alpha deal", "beta deal"})
	setFilter(s, "alpha")
	s.MoveDown()

	s, _ = s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})

	if s.FilterText() != "" {
		t.Errorf("expected filter cleared, got %q", s.FilterText())
	}
	if len(s.Filtered()) != 2 {
		t.Errorf("expected full catalog restored, got %v", s.Filtered())
	}
	// The highlighted index survives the filter clear
	if s.Highlight() != 0 {
		t.Errorf("expected highlight preserved at 0, got %d", s.Highlight())
	}
}

func TestSelectorTypingFiltersViaUpdate(t *testing.T) {
	s := newReadySelector([]string{"Acme Corp", "Zenith Merger"})

	s, _ = s.Update(tea.KeyPressMsg{Code: 'z', Text: "z"})

	if s.FilterText() != "z" {
		t.Fatalf("expected filter %q, got %q", "z", s.FilterText())
	}
	if len(s.Filtered()) != 1 || s.Filtered()[0] != "Zenith Merger" {
		t.Errorf("expected only Zenith Merger, got %v", s.Filtered())
	}
}

func TestSelectorScrollFollowsHighlight(t *testing.T) {
	deals := make([]string, 30)
	for i := range deals {
		deals[i] = "deal " + string(rune('a'+i))
	}
	s := NewSelector()
	s.SetSize(40, 10) // few visible rows
	s.SetFocused(true)
	s.SetCatalog(deals)

	for i := 0; i < 20; i++ {
		s.MoveDown()
	}
	if s.Highlight() != 19 {
		t.Fatalf("expected highlight 19, got %d", s.Highlight())
	}
	if s.scrollOffset > s.Highlight() {
		t.Errorf("scroll offset %d left highlight %d above the window", s.scrollOffset, s.Highlight())
	}
	if s.Highlight() >= s.scrollOffset+s.visibleRows {
		t.Errorf("highlight %d below the window (offset %d, rows %d)", s.Highlight(), s.scrollOffset, s.visibleRows)
	}

	for i := 0; i < 20; i++ {
		s.MoveUp()
	}
	if s.scrollOffset != 0 {
		t.Errorf("expected scroll offset back at 0, got %d", s.scrollOffset)
	}
}

func TestSelectorBoundDeal(t *testing.T) {
	s := newReadySelector([]string{"Acme Corp", "Zenith Merger"})
	setFilter(s, "acme")

	s.SetBoundDeal("Acme Corp")
	if s.BoundDeal() != "Acme Corp" {
		t.Errorf("expected bound deal, got %q", s.BoundDeal())
	}
	if s.FilterText() != "" {
		t.Errorf("expected filter cleared on bind, got %q", s.FilterText())
	}

	// Keys are ignored while a deal is bound
	before := s.Highlight()
	s, _ = s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if s.Highlight() != before {
		t.Error("expected navigation to be a no-op while bound")
	}

	s.ClearBoundDeal()
	if s.BoundDeal() != "" {
		t.Errorf("expected bound deal cleared, got %q", s.BoundDeal())
	}
	if len(s.Filtered()) != 2 {
		t.Errorf("expected full catalog after unbind, got %v", s.Filtered())
	}
}

func TestSelectorCatalogError(t *testing.T) {
	s := NewSelector()
	s.SetSize(40, 20)
	s.SetCatalogError("connection refused")

	if s.IsLoading() {
		t.Error("expected selector to leave the loading phase")
	}
	view := s.View()
	if !strings.Contains(view, "connection refused") {
		t.Errorf("expected error message in view, got: %s", view)
	}
}

func TestSelectorViewShowsDeals(t *testing.T) {
	s := newReadySelector([]string{"Acme Corp", "Zenith Merger"})
	view := s.View()
	if !strings.Contains(view, "Acme Corp") {
		t.Errorf("expected deal name in view")
	}
	if !strings.Contains(view, "Zenith Merger") {
		t.Errorf("expected deal name in view")
	}
}
