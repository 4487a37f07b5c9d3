package app

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/yaared/dealspot/internal/dealroom"
)

// dealsLoadedMsg carries the fetched deal catalog
type dealsLoadedMsg struct {
	deals []string
}

// dealsFailedMsg reports a catalog fetch failure
type dealsFailedMsg struct {
	err error
}

// dealSelectedMsg reports a successful remote deal bind
type dealSelectedMsg struct {
	deal string
}

// dealSelectFailedMsg reports a failed remote deal bind
type dealSelectFailedMsg struct {
	deal string
	err  error
}

// askCompletedMsg carries a completed answer. gen identifies which ask
// round-trip produced it; stale generations are dropped.
type askCompletedMsg struct {
	gen      int
	question string
	deal     string
	answer   dealroom.Answer
}

// askFailedMsg reports a failed ask round-trip
type askFailedMsg struct {
	gen      int
	question string
	err      error
}

// loadDealsCmd fetches the deal catalog
func loadDealsCmd(client *dealroom.Client) tea.Cmd {
	return func() tea.Msg {
		deals, err := client.ListDeals(context.Background())
		if err != nil {
			return dealsFailedMsg{err: err}
		}
		return dealsLoadedMsg{deals: deals}
	}
}

// selectDealCmd binds the session to a deal on the remote service
func selectDealCmd(client *dealroom.Client, sessionID, deal string) tea.Cmd {
	return func() tea.Msg {
		if err := client.SelectDeal(context.Background(), sessionID, deal); err != nil {
			return dealSelectFailedMsg{deal: deal, err: err}
		}
		return dealSelectedMsg{deal: deal}
	}
}

// askCmd submits a question for the bound deal
func askCmd(ctx context.Context, client *dealroom.Client, sessionID, deal, question string, gen int) tea.Cmd {
	return func() tea.Msg {
		answer, err := client.Ask(ctx, sessionID, question)
		if err != nil {
			return askFailedMsg{gen: gen, question: question, err: err}
		}
		return askCompletedMsg{gen: gen, question: question, deal: deal, answer: *answer}
	}
}
