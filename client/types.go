package client

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Principal is the signed-in user's identity.
type Principal struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Price is the canonical numeric price in rupees. The wire and seeded
// catalogs carry prices both as numbers and as currency-formatted
// strings; normalization happens here, at the decode boundary, so no
// downstream code branches on representation.
type Price float64

func (p *Price) UnmarshalJSON(raw []byte) error {
	var number float64
	if err := json.Unmarshal(raw, &number); err == nil {
		*p = Price(number)
		return nil
	}

	var formatted string
	if err := json.Unmarshal(raw, &formatted); err != nil {
		return fmt.Errorf("price must be a number or a string: %s", raw)
	}

	parsed, err := ParsePrice(formatted)
	if err != nil {
		return err
	}
	*p = Price(parsed)
	return nil
}

// ParsePrice normalizes a currency-formatted string ("₹1,000", "₹600")
// or plain numeric string into rupees. Everything that is not a digit
// or a decimal point is stripped before parsing.
func ParsePrice(raw string) (float64, error) {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}

	cleaned := b.String()
	if cleaned == "" {
		return 0, fmt.Errorf("no numeric value in price %q", raw)
	}

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse price %q: %w", raw, err)
	}
	return value, nil
}

// Product is a purchasable catalog item.
type Product struct {
	ID          string `json:"id"`
	Brand       string `json:"brand"`
	Name        string `json:"name"`
	Price       Price  `json:"price"`
	Image       string `json:"image"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory,omitempty"`
	Description string `json:"description,omitempty"`
}

// CartLine is one product's presence in the cart. LineID is the opaque
// server-assigned identifier; it is empty while the cart is guest-local.
type CartLine struct {
	LineID   string  `json:"lineId,omitempty"`
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// WishlistEntry is a product reference with no quantity.
type WishlistEntry struct {
	Product Product `json:"product"`
}

// Address is a shipping address in the user's address book.
type Address struct {
	ID      string `json:"id,omitempty"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Line1   string `json:"line1"`
	Line2   string `json:"line2,omitempty"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}

// OrderItem is a product snapshot within a placed order.
type OrderItem struct {
	ProductID string  `json:"productId"`
	Brand     string  `json:"brand"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
}

// Order is a placed order as returned by the server.
type Order struct {
	ID            string      `json:"id"`
	Items         []OrderItem `json:"items"`
	Address       Address     `json:"address"`
	PaymentMethod string      `json:"paymentMethod"`
	PaymentID     string      `json:"paymentId,omitempty"`
	Total         float64     `json:"total"`
	Status        string      `json:"status"`
	CreatedAt     time.Time   `json:"createdAt"`
}

// PaymentOrder is the provider-side order record opened before the
// hosted payment UI. Amount is in paise.
type PaymentOrder struct {
	OrderID  string `json:"orderId"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// Payment method values accepted by PlaceOrder.
const (
	PaymentMethodCOD    = "cod"
	PaymentMethodOnline = "online"
)
