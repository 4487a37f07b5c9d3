// Package app wires the dealspot panels into one Bubble Tea model and
// owns the session: one token minted per run, bound to a deal remotely,
// and carried on every question.
package app

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/yaared/dealspot/internal/clipboard"
	"github.com/yaared/dealspot/internal/config"
	"github.com/yaared/dealspot/internal/dealroom"
	"github.com/yaared/dealspot/internal/keys"
	"github.com/yaared/dealspot/internal/logger"
	"github.com/yaared/dealspot/internal/notification"
	"github.com/yaared/dealspot/internal/ui"
)

// Focus identifies which pane receives key input
type Focus int

const (
	FocusSelector Focus = iota
	FocusAsk
)

// Model is the top-level Bubble Tea model
type Model struct {
	cfg       *config.Config
	client    *dealroom.Client
	sessionID string
	version   string

	header   *ui.Header
	footer   *ui.Footer
	selector *ui.Selector
	ask      *ui.AskPanel

	focus         Focus
	selectingDeal bool // a select-deal call is in flight

	// askGen tags each ask round-trip; responses from older generations
	// are dropped so a cancelled or superseded question can't overwrite
	// the current result.
	askGen    int
	askCancel context.CancelFunc

	width  int
	height int
}

// New creates the application model. The session token is minted here
// and never changes for the lifetime of the process.
func New(cfg *config.Config, version string) *Model {
	sessionID := uuid.NewString()
	logger.Info("session started: %s", sessionID)

	notification.SetEnabled(cfg.GetNotificationsEnabled())

	m := &Model{
		cfg:       cfg,
		client:    dealroom.NewClient(cfg.GetBaseURL()),
		sessionID: sessionID,
		version:   version,
		header:    ui.NewHeader(),
		footer:    ui.NewFooter(),
		selector:  ui.NewSelector(),
		ask:       ui.NewAskPanel(),
		focus:     FocusSelector,
	}
	m.selector.SetFocused(true)
	return m
}

// SessionID returns the session token for this run.
func (m *Model) SessionID() string {
	return m.sessionID
}

// Init fires the catalog fetch.
func (m *Model) Init() tea.Cmd {
	return loadDealsCmd(m.client)
}

// setFocus moves key focus between the two panes.
func (m *Model) setFocus(f Focus) {
	m.focus = f
	m.selector.SetFocused(f == FocusSelector)
	m.ask.SetFocused(f == FocusAsk)
}

// cancelAsk abandons any in-flight question. The generation bump makes
// the eventual response stale.
func (m *Model) cancelAsk() {
	if m.askCancel != nil {
		m.askCancel()
		m.askCancel = nil
	}
	m.askGen++
}

// syncFooter updates the footer's contextual bindings.
func (m *Model) syncFooter() {
	_, hasAnswer := m.ask.AnswerText()
	m.footer.SetContext(
		m.selector.BoundDeal() != "",
		m.focus == FocusSelector,
		m.ask.IsAsking(),
		hasAnswer,
	)
}

// Update handles all application messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()

	case tea.KeyPressMsg:
		if cmd, handled := m.handleKey(msg); handled {
			m.syncFooter()
			return m, cmd
		}

	case dealsLoadedMsg:
		logger.Info("deal catalog loaded: %d deals", len(msg.deals))
		m.selector.SetCatalog(msg.deals)

	case dealsFailedMsg:
		logger.Error("deal catalog fetch failed: %v", msg.err)
		m.selector.SetCatalogError(msg.err.Error())

	case dealSelectedMsg:
		m.selectingDeal = false
		logger.WithSession(m.sessionID).Info("deal selected", "deal", msg.deal)
		m.selector.SetBoundDeal(msg.deal)
		m.header.SetDealName(msg.deal)
		m.cancelAsk()
		m.ask.SetIdle()
		m.setFocus(FocusAsk)
		m.footer.SetFlash("Selected "+msg.deal, ui.FlashSuccess)
		cmds = append(cmds, ui.FlashTick())

	case dealSelectFailedMsg:
		m.selectingDeal = false
		logger.Error("deal select failed for %q: %v", msg.deal, msg.err)
		m.footer.SetFlash("Could not select "+msg.deal, ui.FlashError)
		cmds = append(cmds, ui.FlashTick())

	case askCompletedMsg:
		if msg.gen != m.askGen {
			logger.Debug("dropping stale answer (gen %d, current %d)", msg.gen, m.askGen)
			break
		}
		m.askCancel = nil
		m.ask.SetAnswer(msg.question, msg.answer)
		notification.AnswerReady(msg.deal)

	case askFailedMsg:
		if msg.gen != m.askGen {
			logger.Debug("dropping stale ask failure (gen %d, current %d)", msg.gen, m.askGen)
			break
		}
		m.askCancel = nil
		logger.Error("ask failed: %v", msg.err)
		m.ask.SetError(msg.question, msg.err.Error())
		notification.AskFailed(m.selector.BoundDeal())

	case ui.FlashTickMsg:
		if cmd := m.footer.Update(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}

	case ui.AskTickMsg:
		var cmd tea.Cmd
		m.ask, cmd = m.ask.Update(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	// Pane-local input for anything not handled above
	if _, ok := msg.(tea.KeyPressMsg); ok {
		switch m.focus {
		case FocusSelector:
			var cmd tea.Cmd
			m.selector, cmd = m.selector.Update(msg)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		case FocusAsk:
			var cmd tea.Cmd
			m.ask, cmd = m.ask.Update(msg)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}

	m.syncFooter()
	return m, tea.Batch(cmds...)
}

// handleKey deals with application-level keys. It reports whether the
// key was consumed; unconsumed keys fall through to the focused pane.
func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case keys.CtrlC:
		m.cancelAsk()
		return tea.Quit, true

	case keys.Tab, keys.ShiftTab:
		// Pane switching only makes sense once a deal is bound
		if m.selector.BoundDeal() == "" {
			return nil, true
		}
		if m.focus == FocusSelector {
			m.setFocus(FocusAsk)
		} else {
			m.setFocus(FocusSelector)
		}
		return nil, true

	case keys.CtrlD:
		if m.selector.BoundDeal() == "" {
			return nil, false
		}
		m.cancelAsk()
		m.selector.ClearBoundDeal()
		m.header.SetDealName("")
		m.ask.SetIdle()
		m.setFocus(FocusSelector)
		return nil, true

	case keys.CtrlY:
		answer, ok := m.ask.AnswerText()
		if !ok {
			return nil, false
		}
		if err := clipboard.WriteText(answer); err != nil {
			logger.Warn("clipboard copy failed: %v", err)
			m.footer.SetFlash("Copy failed", ui.FlashError)
		} else {
			m.footer.SetFlash("Answer copied", ui.FlashSuccess)
		}
		return ui.FlashTick(), true

	case keys.Escape:
		if m.focus == FocusAsk && m.ask.IsAsking() {
			question := ""
			if r, ok := m.ask.Result().(ui.AskLoading); ok {
				question = r.Question
			}
			m.cancelAsk()
			m.ask.SetIdle()
			m.ask.SetInput(question)
			m.footer.SetFlash("Question cancelled", ui.FlashInfo)
			return ui.FlashTick(), true
		}
		return nil, false

	case keys.Enter:
		return m.handleEnter()
	}

	return nil, false
}

// handleEnter commits the focused pane's primary action: binding the
// highlighted deal, or submitting the typed question.
func (m *Model) handleEnter() (tea.Cmd, bool) {
	switch m.focus {
	case FocusSelector:
		if m.selector.BoundDeal() != "" || m.selectingDeal {
			return nil, true
		}
		deal, ok := m.selector.HighlightedDeal()
		if !ok {
			// Enter with nothing highlighted does nothing
			return nil, true
		}
		m.selectingDeal = true
		return selectDealCmd(m.client, m.sessionID, deal), true

	case FocusAsk:
		if m.ask.IsAsking() {
			return nil, true
		}
		question := m.ask.Question()
		if question == "" || m.selector.BoundDeal() == "" {
			return nil, true
		}
		m.askGen++
		ctx, cancel := context.WithCancel(context.Background())
		m.askCancel = cancel
		m.ask.SetLoading(question, ui.RandomWaitingVerb())
		m.ask.ClearInput()
		return tea.Batch(
			askCmd(ctx, m.client, m.sessionID, m.selector.BoundDeal(), question, m.askGen),
			ui.AskTick(),
		), true
	}
	return nil, false
}
