package helius

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// DefaultTimeout bounds every oracle call; a hung lookup must never stall the
// ingestion pipeline.
const DefaultTimeout = 10 * time.Second

var ErrNoTransactions = errors.New("no transactions for address")

// Client wraps the read-only Helius REST API: wallet balances, address
// transaction history and token metadata.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// Option configures Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint (tests, local fake oracle).
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.client.Timeout = d
	}
}

// WithHTTPClient sets a custom http.Client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.client = client
	}
}

func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL: "https://api.helius.xyz",
		apiKey:  apiKey,
		client:  &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Balances returns the token positions of a wallet.
func (c *Client) Balances(ctx context.Context, wallet string) (Balances, error) {
	var res Balances
	err := c.get(ctx, fmt.Sprintf("/v0/addresses/%s/balances", wallet), &res)
	if err != nil {
		return Balances{}, fmt.Errorf("get balances for wallet=%s: %w", wallet, err)
	}
	return res, nil
}

// AddressTransactions returns the recent enhanced transactions of an address,
// newest first.
func (c *Client) AddressTransactions(ctx context.Context, address string) ([]TransferEvent, error) {
	var res []TransferEvent
	err := c.get(ctx, fmt.Sprintf("/v0/addresses/%s/transactions", address), &res)
	if err != nil {
		return nil, fmt.Errorf("get transactions for address=%s: %w", address, err)
	}
	return res, nil
}

// FirstTransactionTime returns the timestamp of the oldest known transaction
// of a mint, which approximates its mint time.
func (c *Client) FirstTransactionTime(ctx context.Context, mint string) (time.Time, error) {
	txs, err := c.AddressTransactions(ctx, mint)
	if err != nil {
		return time.Time{}, err
	}
	if len(txs) == 0 {
		return time.Time{}, fmt.Errorf("mint=%s: %w", mint, ErrNoTransactions)
	}

	// history is newest first, the last entry is the mint transaction
	raw := txs[len(txs)-1].Timestamp
	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q for mint=%s: %w", raw, mint, err)
	}
	return ts, nil
}

// TokenMetadata fetches the metadata of a single mint.
func (c *Client) TokenMetadata(ctx context.Context, mint string) (TokenMetadata, error) {
	var res []TokenMetadata
	err := c.post(ctx, "/v0/tokens/metadata", map[string]any{"mintAccounts": []string{mint}}, &res)
	if err != nil {
		return TokenMetadata{}, fmt.Errorf("get metadata for mint=%s: %w", mint, err)
	}
	if len(res) == 0 {
		return TokenMetadata{}, fmt.Errorf("no metadata for mint=%s", mint)
	}
	return res[0], nil
}

// Transaction fetches a single enhanced transaction by hash.
func (c *Client) Transaction(ctx context.Context, txHash string) (TransferEvent, error) {
	var res []TransferEvent
	err := c.post(ctx, "/v0/transactions/", map[string]any{"transactions": []string{txHash}}, &res)
	if err != nil {
		return TransferEvent{}, fmt.Errorf("get transaction %s: %w", txHash, err)
	}
	if len(res) == 0 {
		return TransferEvent{}, fmt.Errorf("transaction %s not found", txHash)
	}
	return res[0], nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url(path), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request body: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url(path), bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) url(path string) string {
	return c.baseURL + path + "?api-key=" + url.QueryEscape(c.apiKey)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body) //nolint:errcheck // draining for connection reuse
		return fmt.Errorf("request %s: status=%s", req.URL.Path, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response of %s: %w", req.URL.Path, err)
	}
	return nil
}
