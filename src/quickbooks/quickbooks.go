package quickbooks

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	sandboxBaseURL    = "https://sandbox-quickbooks.api.intuit.com"
	productionBaseURL = "https://quickbooks.api.intuit.com"
	tokenURL          = "https://oauth.platform.intuit.com/oauth2/v1/tokens/bearer"

	pageSize     = 1000
	minorVersion = "65"
)

type Client struct {
	baseURL     string
	realmID     string
	accessToken string
	httpClient  *http.Client
	log         zerolog.Logger

	// TokenURL and BaseURL overrides exist for tests against httptest servers.
	TokenURL string
}

// NewClient refreshes the OAuth access token and returns a client bound to
// the resulting bearer token. The refresh happens before any query is made.
func NewClient(ctx context.Context, log zerolog.Logger, clientID, clientSecret, refreshToken, realmID, env string) (*Client, error) {
	c := &Client{
		realmID:    realmID,
		httpClient: &http.Client{Timeout: 60 * time.Second},
		log:        log,
		TokenURL:   tokenURL,
	}

	switch env {
	case "sandbox":
		c.baseURL = sandboxBaseURL
	case "production":
		c.baseURL = productionBaseURL
	default:
		return nil, fmt.Errorf("invalid QuickBooks environment: %s", env)
	}

	if err := c.refreshAccessToken(ctx, clientID, clientSecret, refreshToken); err != nil {
		return nil, err
	}
	return c, nil
}

// NewClientForBase constructs an unauthenticated client against an arbitrary
// base URL. Used by tests.
func NewClientForBase(baseURL, realmID string) *Client {
	return &Client{
		baseURL:    baseURL,
		realmID:    realmID,
		httpClient: &http.Client{},
		log:        zerolog.Nop(),
	}
}

func (c *Client) refreshAccessToken(ctx context.Context, clientID, clientSecret, refreshToken string) error {
	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", refreshToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.SetBasicAuth(clientID, clientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error().Err(err).Msg("Error refreshing QuickBooks token")
		return fmt.Errorf("quickbooks token refresh: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("quickbooks token refresh: %d - %s", resp.StatusCode, string(body))
	}

	var tokenResp struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return fmt.Errorf("quickbooks token refresh: decode: %w", err)
	}
	if tokenResp.AccessToken == "" {
		return fmt.Errorf("quickbooks token refresh: empty access token")
	}

	c.accessToken = tokenResp.AccessToken
	return nil
}

// FindAccounts returns the full chart of accounts, paging internally.
func (c *Client) FindAccounts(ctx context.Context) ([]Account, error) {
	var accounts []Account
	for pos := 1; ; pos += pageSize {
		query := fmt.Sprintf("SELECT * FROM Account STARTPOSITION %d MAXRESULTS %d", pos, pageSize)
		page, err := c.query(ctx, query)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, page.QueryResponse.Account...)
		if len(page.QueryResponse.Account) < pageSize {
			return accounts, nil
		}
	}
}

// FindJournalEntries returns journal entries dated on or after since, paging
// internally.
func (c *Client) FindJournalEntries(ctx context.Context, since time.Time) ([]JournalEntry, error) {
	var entries []JournalEntry
	for pos := 1; ; pos += pageSize {
		query := fmt.Sprintf(
			"SELECT * FROM JournalEntry WHERE TxnDate >= '%s' STARTPOSITION %d MAXRESULTS %d",
			since.Format("2006-01-02"), pos, pageSize,
		)
		page, err := c.query(ctx, query)
		if err != nil {
			return nil, err
		}
		entries = append(entries, page.QueryResponse.JournalEntry...)
		if len(page.QueryResponse.JournalEntry) < pageSize {
			return entries, nil
		}
	}
}

type queryResponse struct {
	QueryResponse struct {
		Account       []Account      `json:"Account"`
		JournalEntry  []JournalEntry `json:"JournalEntry"`
		StartPosition int            `json:"startPosition"`
		MaxResults    int            `json:"maxResults"`
	} `json:"QueryResponse"`
}

func (c *Client) query(ctx context.Context, query string) (*queryResponse, error) {
	endpoint := fmt.Sprintf("%s/v3/company/%s/query?query=%s&minorversion=%s",
		c.baseURL, c.realmID, url.QueryEscape(query), minorVersion)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error().Err(err).Msg("Error querying QuickBooks API")
		return nil, fmt.Errorf("quickbooks query: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("quickbooks query: %d - %s", resp.StatusCode, string(body))
	}

	var out queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("quickbooks query: decode: %w", err)
	}
	return &out, nil
}
