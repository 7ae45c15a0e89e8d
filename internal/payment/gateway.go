// Package payment contains the HTTP adapter for the external payment
// provider. No Go SDK is published for the provider's order API, so the
// adapter speaks its REST surface directly.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/thevanityindia/vanity-server/internal/model"
)

var _ model.PaymentGateway = (*Gateway)(nil)

// Gateway creates provider-side order records over the provider's REST
// API using basic auth with the key id/secret pair.
type Gateway struct {
	endpoint  string
	keyID     string
	keySecret string
	client    *http.Client
}

func NewGateway(endpoint, keyID, keySecret string) *Gateway {
	return &Gateway{
		endpoint:  endpoint,
		keyID:     keyID,
		keySecret: keySecret,
		client:    &http.Client{Timeout: 15 * time.Second},
	}
}

type createOrderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type createOrderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

// CreateOrder opens an order record with the provider. Amount is in the
// currency's minor unit (paise for INR).
func (g *Gateway) CreateOrder(ctx context.Context, amountPaise int64, currency string, receipt string) (model.PaymentOrder, error) {
	body, err := json.Marshal(createOrderRequest{
		Amount:   amountPaise,
		Currency: currency,
		Receipt:  receipt,
	})
	if err != nil {
		return model.PaymentOrder{}, fmt.Errorf("failed to marshal create order request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint+"/orders", bytes.NewReader(body))
	if err != nil {
		return model.PaymentOrder{}, fmt.Errorf("failed to build create order request: %w", err)
	}
	req.SetBasicAuth(g.keyID, g.keySecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return model.PaymentOrder{}, fmt.Errorf("failed to call payment provider: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return model.PaymentOrder{}, fmt.Errorf("payment provider returned status %d", resp.StatusCode)
	}

	var decoded createOrderResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return model.PaymentOrder{}, fmt.Errorf("failed to decode provider response: %w", err)
	}

	return model.PaymentOrder{
		ID:       decoded.ID,
		Amount:   decoded.Amount,
		Currency: decoded.Currency,
		Receipt:  decoded.Receipt,
	}, nil
}
