// Package dealroom is the HTTP client for the remote deal question-answering
// service. The service owns all search ranking and answer generation; this
// package only speaks its three endpoints and decodes the wire types.
package dealroom

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	apperrors "github.com/yaared/dealspot/internal/errors"
	"github.com/yaared/dealspot/internal/logger"
)

// DefaultBaseURL is the deal service endpoint baked in at build time.
// It can be overridden via --base-url, DEALSPOT_API_URL, or the config file.
const DefaultBaseURL = "https://deals.spotapp.io/api"

// Client talks to the deal service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the given base URL. An empty baseURL
// falls back to DefaultBaseURL.
//
// The zero-timeout http.Client is deliberate: requests are single-shot and
// user-cancellable through context, and the service may take a while to
// generate an answer.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

// NewClientWithHTTP creates a client with a custom HTTP client (for testing).
func NewClientWithHTTP(baseURL string, httpClient *http.Client) *Client {
	c := NewClient(baseURL)
	if httpClient != nil {
		c.httpClient = httpClient
	}
	return c
}

// BaseURL returns the base URL this client targets.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// dealsResponse is the wire shape of GET /deals.
type dealsResponse struct {
	Deals []string `json:"deals"`
}

// ListDeals fetches the catalog of selectable deal names, order preserved.
func (c *Client) ListDeals(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/deals", nil)
	if err != nil {
		return nil, apperrors.DealsFetchFailed(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.DealsFetchFailed(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apperrors.DealsStatusFailed(resp.StatusCode)
	}

	var dr dealsResponse
	if err := json.NewDecoder(resp.Body).Decode(&dr); err != nil {
		return nil, apperrors.E(apperrors.Op("dealroom.ListDeals"), apperrors.KindDecode, "failed to parse deals response", err)
	}

	logger.ComponentLogger("dealroom").Debug("catalog fetched", "deals", len(dr.Deals))
	return dr.Deals, nil
}

// SelectDeal binds the session to a deal on the remote service. Any 2xx
// status is success; the response body carries no contract.
func (c *Client) SelectDeal(ctx context.Context, sessionID, deal string) error {
	u := fmt.Sprintf("%s/select-deal/%s/%s", c.baseURL, url.PathEscape(sessionID), url.PathEscape(deal))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, nil)
	if err != nil {
		return apperrors.DealSelectFailed(deal, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.DealSelectFailed(deal, err)
	}
	defer resp.Body.Close()
	// Drain so the connection can be reused
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apperrors.E(apperrors.Op("dealroom.SelectDeal"), apperrors.KindRemote,
			fmt.Sprintf("deal service returned status %d selecting %q", resp.StatusCode, deal))
	}
	return nil
}

// askRequest is the wire shape of the POST /ask body.
type askRequest struct {
	Question  string `json:"question"`
	SessionID string `json:"session_id"`
}

// Ask submits a question scoped to the session's selected deal and returns
// the generated answer with its supporting sources.
func (c *Client) Ask(ctx context.Context, sessionID, question string) (*Answer, error) {
	body, err := json.Marshal(askRequest{Question: question, SessionID: sessionID})
	if err != nil {
		return nil, apperrors.AskFailed(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/ask", bytes.NewReader(body))
	if err != nil {
		return nil, apperrors.AskFailed(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.AskFailed(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apperrors.E(apperrors.Op("dealroom.Ask"), apperrors.KindRemote,
			fmt.Sprintf("deal service returned status %d", resp.StatusCode))
	}

	var ans Answer
	if err := json.NewDecoder(resp.Body).Decode(&ans); err != nil {
		return nil, apperrors.E(apperrors.Op("dealroom.Ask"), apperrors.KindDecode, "failed to parse ask response", err)
	}

	logger.WithSession(sessionID).Debug("answer received", "sources", len(ans.Sources))
	return &ans, nil
}
