package client

import (
	"context"
	"fmt"
	"math"
	"net/http"
)

// Wire shape of the server cart document.
type cartDocument struct {
	Items []cartItemDocument `json:"items"`
}

type cartItemDocument struct {
	LineID    string `json:"lineId"`
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// Cart returns a snapshot of the active cart.
func (c *Client) Cart() []CartLine {
	c.cartMu.Lock()
	defer c.cartMu.Unlock()
	return append([]CartLine(nil), c.cartLines...)
}

// CartTotal sums price times quantity over all lines, rounded to two
// decimal places.
func (c *Client) CartTotal() float64 {
	c.cartMu.Lock()
	defer c.cartMu.Unlock()

	var total float64
	for _, line := range c.cartLines {
		total += float64(line.Product.Price) * float64(line.Quantity)
	}
	return math.Round(total*100) / 100
}

// AddToCart adds quantity units of product. A product already in the
// cart gets its quantity incremented on its existing line; a second
// line is never created for the same product.
//
// The cart mutex is held across the whole operation, including the
// server round trip, so concurrent mutations are serialized and a stale
// response can never overwrite a newer cache.
func (c *Client) AddToCart(ctx context.Context, product Product, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}

	c.cartMu.Lock()
	defer c.cartMu.Unlock()

	if !c.IsAuthenticated() {
		for i, line := range c.cartLines {
			if line.Product.ID == product.ID {
				c.cartLines[i].Quantity += quantity
				return persistCollection(c.store, keyGuestCart, c.cartLines)
			}
		}
		c.cartLines = append(c.cartLines, CartLine{Product: product, Quantity: quantity})
		return persistCollection(c.store, keyGuestCart, c.cartLines)
	}

	return c.mutateServerCart(ctx, http.MethodPost, "/api/cart", map[string]any{
		"productId": product.ID,
		"quantity":  quantity,
	})
}

// UpdateQuantity sets a line's quantity. Values below 1 clamp to 1;
// removing a line requires RemoveLine, not a decrement to zero.
func (c *Client) UpdateQuantity(ctx context.Context, line CartLine, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}

	c.cartMu.Lock()
	defer c.cartMu.Unlock()

	if !c.IsAuthenticated() {
		for i, cached := range c.cartLines {
			if cached.Product.ID == line.Product.ID {
				c.cartLines[i].Quantity = quantity
				return persistCollection(c.store, keyGuestCart, c.cartLines)
			}
		}
		return nil
	}

	return c.mutateServerCart(ctx, http.MethodPut, "/api/cart/"+line.LineID, map[string]any{
		"quantity": quantity,
	})
}

// RemoveLine removes a line from the cart. Removing a line that is no
// longer present is a no-op.
func (c *Client) RemoveLine(ctx context.Context, line CartLine) error {
	c.cartMu.Lock()
	defer c.cartMu.Unlock()

	if !c.IsAuthenticated() {
		for i, cached := range c.cartLines {
			if cached.Product.ID == line.Product.ID {
				c.cartLines = append(c.cartLines[:i], c.cartLines[i+1:]...)
				return persistCollection(c.store, keyGuestCart, c.cartLines)
			}
		}
		return nil
	}

	return c.mutateServerCart(ctx, http.MethodDelete, "/api/cart/"+line.LineID, nil)
}

// ClearCart removes every line.
func (c *Client) ClearCart(ctx context.Context) error {
	c.cartMu.Lock()
	defer c.cartMu.Unlock()

	if !c.IsAuthenticated() {
		c.cartLines = nil
		return persistCollection(c.store, keyGuestCart, c.cartLines)
	}

	return c.mutateServerCart(ctx, http.MethodDelete, "/api/cart", nil)
}

// RefreshCart reloads the active cart from its authoritative copy: the
// server when signed in, durable local storage otherwise.
func (c *Client) RefreshCart(ctx context.Context) error {
	c.cartMu.Lock()
	defer c.cartMu.Unlock()

	if !c.IsAuthenticated() {
		lines, err := loadCollection[CartLine](c.store, keyGuestCart)
		if err != nil {
			return err
		}
		c.cartLines = lines
		return nil
	}

	return c.mutateServerCart(ctx, http.MethodGet, "/api/cart", nil)
}

// mutateServerCart issues a cart request and replaces the cache wholly
// with the returned authoritative document. On failure the previous
// cache is left untouched. Callers must hold cartMu.
func (c *Client) mutateServerCart(ctx context.Context, method, path string, body any) error {
	var doc cartDocument
	if err := c.api.doData(ctx, method, path, body, &doc); err != nil {
		return err
	}

	lines, err := c.linesFromDocument(ctx, doc)
	if err != nil {
		return err
	}

	c.cartLines = lines
	return nil
}

func (c *Client) linesFromDocument(ctx context.Context, doc cartDocument) ([]CartLine, error) {
	lines := make([]CartLine, 0, len(doc.Items))
	for _, item := range doc.Items {
		product, err := c.resolveProduct(ctx, item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve cart line: %w", err)
		}
		lines = append(lines, CartLine{
			LineID:   item.LineID,
			Product:  product,
			Quantity: item.Quantity,
		})
	}
	return lines, nil
}
