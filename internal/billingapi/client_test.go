package billingapi_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"billingdesk/internal/billingapi"
	"billingdesk/internal/config"
	"billingdesk/internal/domain"
)

func newTokenServer(t *testing.T, issued *int32) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.FormValue("grant_type"))
		assert.Equal(t, "test-client", r.FormValue("client_id"))

		n := atomic.AddInt32(issued, 1)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"access_token":"tok-%d","token_type":"Bearer","expires_in":3600}`, n)
	}))
}

func newTestClient(t *testing.T, apiHandler http.HandlerFunc, issued *int32) (*billingapi.Client, func()) {
	t.Helper()
	tokenSrv := newTokenServer(t, issued)
	apiSrv := httptest.NewServer(apiHandler)
	cfg := &config.BillingConfig{ClientID: "test-client", ClientSecret: "secret", CacheTTLSecs: 60}
	c := billingapi.NewClientWithEndpoint(cfg, apiSrv.URL, tokenSrv.URL)
	return c, func() {
		apiSrv.Close()
		tokenSrv.Close()
	}
}

func TestClient_ListInvoices(t *testing.T) {
	var issued int32
	c, cleanup := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accounts/p-1/invoices", r.URL.Path)
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		fmt.Fprint(w, `{"invoices":[{"invoiceNo":"INV-1","amount":100},{"invoiceNo":"INV-2","amount":200}]}`)
	}, &issued)
	defer cleanup()

	invoices, err := c.ListInvoices(context.Background(), "p-1")

	assert.NoError(t, err)
	assert.Len(t, invoices, 2)
	assert.Equal(t, "INV-1", invoices[0].InvoiceNo)
	assert.Equal(t, int32(1), atomic.LoadInt32(&issued), "token fetched once")
}

func TestClient_GetInvoice_NotFound(t *testing.T) {
	var issued int32
	c, cleanup := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}, &issued)
	defer cleanup()

	inv, err := c.GetInvoice(context.Background(), "p-1", "INV-404")

	assert.Nil(t, inv)
	assert.ErrorIs(t, err, domain.ErrInvoiceNotFound)
}

func TestClient_UpstreamError(t *testing.T) {
	var issued int32
	c, cleanup := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}, &issued)
	defer cleanup()

	_, err := c.ListInvoices(context.Background(), "p-1")

	assert.ErrorIs(t, err, domain.ErrUpstreamFailure)
}

func TestClient_RefreshesTokenOn401(t *testing.T) {
	var issued, calls int32
	c, cleanup := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		assert.Equal(t, "Bearer tok-2", r.Header.Get("Authorization"))
		fmt.Fprint(w, `{"invoices":[{"invoiceNo":"INV-1"}]}`)
	}, &issued)
	defer cleanup()

	invoices, err := c.ListInvoices(context.Background(), "p-1")

	assert.NoError(t, err)
	assert.Len(t, invoices, 1)
	assert.Equal(t, int32(2), atomic.LoadInt32(&issued), "401 forces one token refresh")
}

func TestClient_SessionExpiredAfterRetry(t *testing.T) {
	var issued int32
	c, cleanup := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}, &issued)
	defer cleanup()

	_, err := c.ListInvoices(context.Background(), "p-1")

	assert.ErrorIs(t, err, domain.ErrSessionExpired)
	assert.Equal(t, int32(2), atomic.LoadInt32(&issued), "exactly one retry")
}

func TestClient_TokenEndpointFailure(t *testing.T) {
	tokenSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer tokenSrv.Close()
	apiSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("API must not be called without a token")
	}))
	defer apiSrv.Close()

	cfg := &config.BillingConfig{ClientID: "test-client", ClientSecret: "secret"}
	c := billingapi.NewClientWithEndpoint(cfg, apiSrv.URL, tokenSrv.URL)

	_, err := c.ListInvoices(context.Background(), "p-1")

	assert.ErrorIs(t, err, domain.ErrSessionExpired)
}

func TestClient_CachesResponses(t *testing.T) {
	var issued, hits int32
	c, cleanup := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		fmt.Fprint(w, `{"invoices":[{"invoiceNo":"INV-1"}]}`)
	}, &issued)
	defer cleanup()

	_, err := c.ListInvoices(context.Background(), "p-1")
	assert.NoError(t, err)
	_, err = c.ListInvoices(context.Background(), "p-1")
	assert.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits), "second read served from cache")

	c.InvalidateCache()
	_, err = c.ListInvoices(context.Background(), "p-1")
	assert.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&hits), "invalidation forces a refetch")
}

func TestClient_ListInvoiceTypes(t *testing.T) {
	var issued int32
	c, cleanup := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accounts/p-1/invoices/invoicetypes", r.URL.Path)
		fmt.Fprint(w, `{"invoiceTypes":[{"id":"9","description":"License Subscriptions"}]}`)
	}, &issued)
	defer cleanup()

	types, err := c.ListInvoiceTypes(context.Background(), "p-1")

	assert.NoError(t, err)
	assert.Len(t, types, 1)
	assert.Equal(t, "9", types[0].ID)
}
