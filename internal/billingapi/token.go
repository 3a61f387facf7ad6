package billingapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"billingdesk/internal/domain"
)

// refreshSkew refreshes the token slightly before its recorded expiry so
// in-flight requests do not race the deadline.
const refreshSkew = 30 * time.Second

// tokenManager holds the upstream bearer token and serializes refreshes.
// All requests share one manager; a refresh in progress blocks concurrent
// callers instead of issuing duplicate token requests.
type tokenManager struct {
	tokenURL     string
	clientID     string
	clientSecret string
	client       *http.Client

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

func newTokenManager(tokenURL, clientID, clientSecret string, client *http.Client) *tokenManager {
	return &tokenManager{
		tokenURL:     tokenURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		client:       client,
	}
}

// Token returns a valid bearer token, refreshing when missing or near expiry.
func (m *tokenManager) Token(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.token != "" && (m.expiresAt.IsZero() || time.Now().Before(m.expiresAt.Add(-refreshSkew))) {
		return m.token, nil
	}
	if err := m.refreshLocked(ctx); err != nil {
		return "", err
	}
	return m.token, nil
}

// Invalidate drops the cached token so the next request forces a refresh.
// Called after an upstream 401.
func (m *tokenManager) Invalidate() {
	m.mu.Lock()
	m.token = ""
	m.expiresAt = time.Time{}
	m.mu.Unlock()
}

func (m *tokenManager) refreshLocked(ctx context.Context) error {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", m.clientID)
	form.Set("client_secret", m.clientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.tokenURL, bytes.NewBufferString(form.Encode()))
	if err != nil {
		return fmt.Errorf("creating token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrSessionExpired, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading token response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: token endpoint returned status %d", domain.ErrSessionExpired, resp.StatusCode)
	}

	var tr tokenResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return fmt.Errorf("decoding token response: %w", err)
	}
	if tr.AccessToken == "" {
		return fmt.Errorf("%w: token endpoint returned empty token", domain.ErrSessionExpired)
	}

	m.token = tr.AccessToken
	m.expiresAt = tokenExpiry(tr)
	return nil
}

// tokenExpiry prefers the exp claim embedded in the access token over the
// expires_in hint; tokens that are opaque or carry no exp fall back to
// expires_in, and zero means never proactively refresh.
func tokenExpiry(tr tokenResponse) time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tr.AccessToken, claims); err == nil {
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			return exp.Time
		}
	}
	if tr.ExpiresIn > 0 {
		return time.Now().Add(time.Duration(tr.ExpiresIn) * time.Second)
	}
	return time.Time{}
}
