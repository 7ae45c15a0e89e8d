package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGateway_CreateOrder(t *testing.T) {
	var gotReq createOrderRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/orders", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "key-id", user)
		assert.Equal(t, "key-secret", pass)

		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		json.NewEncoder(w).Encode(createOrderResponse{
			ID:       "order_test123",
			Amount:   gotReq.Amount,
			Currency: gotReq.Currency,
			Receipt:  gotReq.Receipt,
		})
	}))
	defer srv.Close()

	g := NewGateway(srv.URL, "key-id", "key-secret")

	order, err := g.CreateOrder(context.Background(), 59900, "INR", "rcpt-1")
	require.NoError(t, err)

	assert.Equal(t, int64(59900), gotReq.Amount)
	assert.Equal(t, "order_test123", order.ID)
	assert.Equal(t, int64(59900), order.Amount)
	assert.Equal(t, "INR", order.Currency)
	assert.Equal(t, "rcpt-1", order.Receipt)
}

func TestGateway_CreateOrder_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	g := NewGateway(srv.URL, "bad", "creds")

	_, err := g.CreateOrder(context.Background(), 100, "INR", "rcpt-2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}

func TestGateway_CreateOrder_Unreachable(t *testing.T) {
	g := NewGateway("http://127.0.0.1:1", "k", "s")

	_, err := g.CreateOrder(context.Background(), 100, "INR", "rcpt-3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to call payment provider")
}
