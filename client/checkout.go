package client

import (
	"context"
	"net/http"
	"net/url"
)

// Profile fetches the signed-in user's profile.
func (c *Client) Profile(ctx context.Context) (Principal, error) {
	var user Principal
	if err := c.api.doData(ctx, http.MethodGet, "/api/users/profile", nil, &user); err != nil {
		return Principal{}, err
	}
	return user, nil
}

// UpdateProfile changes the signed-in user's display name. The stored
// principal is updated so the new name survives restarts.
func (c *Client) UpdateProfile(ctx context.Context, name string) (Principal, error) {
	var user Principal
	if err := c.api.doData(ctx, http.MethodPut, "/api/users/profile", map[string]string{
		"name": name,
	}, &user); err != nil {
		return Principal{}, err
	}

	c.sessionMu.Lock()
	token := c.token
	c.user = &user
	c.sessionMu.Unlock()

	if err := c.persistSession(token, user); err != nil {
		return user, err
	}
	return user, nil
}

// Addresses lists the signed-in user's address book.
func (c *Client) Addresses(ctx context.Context) ([]Address, error) {
	var addresses []Address
	if err := c.api.doData(ctx, http.MethodGet, "/api/users/addresses", nil, &addresses); err != nil {
		return nil, err
	}
	return addresses, nil
}

// AddAddress saves a new shipping address.
func (c *Client) AddAddress(ctx context.Context, address Address) (Address, error) {
	var saved Address
	if err := c.api.doData(ctx, http.MethodPost, "/api/users/addresses", address, &saved); err != nil {
		return Address{}, err
	}
	return saved, nil
}

// RemoveAddress deletes an address from the address book.
func (c *Client) RemoveAddress(ctx context.Context, addressID string) error {
	_, err := c.api.do(ctx, http.MethodDelete, "/api/users/addresses/"+addressID, nil)
	return err
}

type deliveryEstimate struct {
	Days int `json:"days"`
}

// EstimateDelivery returns the delivery lead time in days for a
// destination state.
func (c *Client) EstimateDelivery(ctx context.Context, state string) (int, error) {
	var estimate deliveryEstimate
	if err := c.api.doData(ctx, http.MethodGet, "/api/orders/delivery-estimate?state="+url.QueryEscape(state), nil, &estimate); err != nil {
		return 0, err
	}
	return estimate.Days, nil
}

// CreatePaymentOrder opens a provider order for the given rupee amount,
// the first leg of the online payment handshake. No storefront order
// exists yet; abandoning the hosted payment UI after this leaves
// nothing behind.
func (c *Client) CreatePaymentOrder(ctx context.Context, amount float64) (PaymentOrder, error) {
	var order PaymentOrder
	if err := c.api.doData(ctx, http.MethodPost, "/api/payments/create-order", map[string]any{
		"amount": amount,
	}, &order); err != nil {
		return PaymentOrder{}, err
	}
	return order, nil
}

// VerifyPayment submits the provider callback for signature
// verification. An error here is a hard stop: the caller must not place
// the order.
func (c *Client) VerifyPayment(ctx context.Context, orderID, paymentID, signature string) error {
	_, err := c.api.do(ctx, http.MethodPost, "/api/payments/verify", map[string]string{
		"orderId":   orderID,
		"paymentId": paymentID,
		"signature": signature,
	})
	return err
}

// PlaceOrder submits the server-side cart as an order against the given
// address. For the online method, paymentID must be a reference that
// already passed VerifyPayment. The server clears the cart; the local
// cache is refreshed to match.
func (c *Client) PlaceOrder(ctx context.Context, addressID, paymentMethod, paymentID string) (Order, error) {
	var order Order
	if err := c.api.doData(ctx, http.MethodPost, "/api/orders", map[string]string{
		"addressId":     addressID,
		"paymentMethod": paymentMethod,
		"paymentId":     paymentID,
	}, &order); err != nil {
		return Order{}, err
	}

	if err := c.RefreshCart(ctx); err != nil {
		return order, err
	}
	return order, nil
}

// MyOrders lists the signed-in user's orders, newest first.
func (c *Client) MyOrders(ctx context.Context) ([]Order, error) {
	var orders []Order
	if err := c.api.doData(ctx, http.MethodGet, "/api/orders/my-orders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
