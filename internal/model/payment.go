package model

import "context"

// PaymentGateway creates order records with the external payment
// provider. Signature verification happens locally against the shared
// key secret and does not go through this interface.
type PaymentGateway interface {
	CreateOrder(ctx context.Context, amountPaise int64, currency string, receipt string) (PaymentOrder, error)
}

// PaymentOrder is the provider-side order record opened before the
// hosted payment UI is shown. Amount is in the currency's minor unit.
type PaymentOrder struct {
	ID       string
	Amount   int64
	Currency string
	Receipt  string
}

// PaymentVerification is the provider callback payload the client
// submits to finalize a payment.
type PaymentVerification struct {
	OrderID   string
	PaymentID string
	Signature string
}
