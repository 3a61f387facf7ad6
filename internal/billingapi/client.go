package billingapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"billingdesk/internal/config"
	"billingdesk/internal/domain"
)

// Client talks to the partner billing API. It carries the session token,
// a bounded-staleness response cache, and the single-retry policy for
// authentication failures. The aggregation core never sees this type; it
// operates on already-fetched data.
type Client struct {
	baseURL string
	client  *http.Client
	tokens  *tokenManager
	cache   *responseCache
}

// NewClient creates a billing API client from config.
func NewClient(cfg *config.BillingConfig) *Client {
	return NewClientWithEndpoint(cfg, cfg.BaseURL, cfg.TokenURL)
}

// NewClientWithEndpoint creates a client pointing at custom endpoints (for
// testing against httptest servers).
func NewClientWithEndpoint(cfg *config.BillingConfig, baseURL, tokenURL string) *Client {
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	hc := &http.Client{Timeout: timeout}
	return &Client{
		baseURL: baseURL,
		client:  hc,
		tokens:  newTokenManager(tokenURL, cfg.ClientID, cfg.ClientSecret, hc),
		cache:   newResponseCache(time.Duration(cfg.CacheTTLSecs) * time.Second),
	}
}

// ListInvoices fetches the flat invoice list for a partner account.
func (c *Client) ListInvoices(ctx context.Context, partnerID string) ([]RawInvoice, error) {
	path := fmt.Sprintf("/accounts/%s/invoices", url.PathEscape(partnerID))
	body, err := c.get(ctx, path)
	if err != nil {
		return nil, err
	}
	var lr invoiceListResponse
	if err := json.Unmarshal(body, &lr); err != nil {
		return nil, fmt.Errorf("decoding invoice list: %w", err)
	}
	return lr.Invoices, nil
}

// GetInvoice fetches a single invoice with its nested billing data.
func (c *Client) GetInvoice(ctx context.Context, partnerID, invoiceNo string) (*RawInvoice, error) {
	path := fmt.Sprintf("/accounts/%s/invoices/%s", url.PathEscape(partnerID), url.PathEscape(invoiceNo))
	body, err := c.get(ctx, path)
	if err != nil {
		return nil, err
	}
	var inv RawInvoice
	if err := json.Unmarshal(body, &inv); err != nil {
		return nil, fmt.Errorf("decoding invoice %s: %w", invoiceNo, err)
	}
	return &inv, nil
}

// ListInvoiceTypes fetches the billing-type lookup list.
func (c *Client) ListInvoiceTypes(ctx context.Context, partnerID string) ([]RawInvoiceType, error) {
	path := fmt.Sprintf("/accounts/%s/invoices/invoicetypes", url.PathEscape(partnerID))
	body, err := c.get(ctx, path)
	if err != nil {
		return nil, err
	}
	var tr invoiceTypesResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return nil, fmt.Errorf("decoding invoice types: %w", err)
	}
	return tr.InvoiceTypes, nil
}

// InvalidateCache drops all cached responses. Called after discount writes so
// the next read reflects server truth.
func (c *Client) InvalidateCache() {
	c.cache.invalidate()
}

// get performs an authenticated GET with the response cache and the 401
// policy: one token refresh, one retry, then fail.
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	if cached, ok := c.cache.get(path); ok {
		return cached, nil
	}

	body, status, err := c.do(ctx, path)
	if err != nil {
		return nil, err
	}
	if status == http.StatusUnauthorized {
		c.tokens.Invalidate()
		body, status, err = c.do(ctx, path)
		if err != nil {
			return nil, err
		}
		if status == http.StatusUnauthorized {
			return nil, domain.ErrSessionExpired
		}
	}
	switch {
	case status == http.StatusNotFound:
		return nil, domain.ErrInvoiceNotFound
	case status != http.StatusOK:
		return nil, fmt.Errorf("%w: GET %s returned status %d", domain.ErrUpstreamFailure, path, status)
	}

	c.cache.set(path, body)
	return body, nil
}

func (c *Client) do(ctx context.Context, path string) ([]byte, int, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", domain.ErrUpstreamFailure, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("reading response: %w", err)
	}
	return body, resp.StatusCode, nil
}
