package client

import (
	"context"
	"fmt"
	"net/http"
)

// Wire shape of the server wishlist document.
type wishlistDocument struct {
	Items []wishlistItemDocument `json:"items"`
}

type wishlistItemDocument struct {
	ProductID string `json:"productId"`
}

// Wishlist returns a snapshot of the active wishlist.
func (c *Client) Wishlist() []WishlistEntry {
	c.wishlistMu.Lock()
	defer c.wishlistMu.Unlock()
	return append([]WishlistEntry(nil), c.wishlistEntries...)
}

// IsInWishlist reports whether the product is wishlisted. Called on
// every product-card render; the list stays small.
func (c *Client) IsInWishlist(productID string) bool {
	c.wishlistMu.Lock()
	defer c.wishlistMu.Unlock()

	for _, entry := range c.wishlistEntries {
		if entry.Product.ID == productID {
			return true
		}
	}
	return false
}

// AddToWishlist adds the product. Re-adding a wishlisted product is a
// no-op; first seen wins.
func (c *Client) AddToWishlist(ctx context.Context, product Product) error {
	c.wishlistMu.Lock()
	defer c.wishlistMu.Unlock()

	if !c.IsAuthenticated() {
		for _, entry := range c.wishlistEntries {
			if entry.Product.ID == product.ID {
				return nil
			}
		}
		c.wishlistEntries = append(c.wishlistEntries, WishlistEntry{Product: product})
		return persistCollection(c.store, keyGuestWishlist, c.wishlistEntries)
	}

	return c.mutateServerWishlist(ctx, http.MethodPost, "/api/wishlist", map[string]string{
		"productId": product.ID,
	})
}

// RemoveFromWishlist removes the product; removing an absent product is
// a no-op.
func (c *Client) RemoveFromWishlist(ctx context.Context, productID string) error {
	c.wishlistMu.Lock()
	defer c.wishlistMu.Unlock()

	if !c.IsAuthenticated() {
		for i, entry := range c.wishlistEntries {
			if entry.Product.ID == productID {
				c.wishlistEntries = append(c.wishlistEntries[:i], c.wishlistEntries[i+1:]...)
				return persistCollection(c.store, keyGuestWishlist, c.wishlistEntries)
			}
		}
		return nil
	}

	return c.mutateServerWishlist(ctx, http.MethodDelete, "/api/wishlist/"+productID, nil)
}

// RefreshWishlist reloads the active wishlist from its authoritative
// copy.
func (c *Client) RefreshWishlist(ctx context.Context) error {
	c.wishlistMu.Lock()
	defer c.wishlistMu.Unlock()

	if !c.IsAuthenticated() {
		entries, err := loadCollection[WishlistEntry](c.store, keyGuestWishlist)
		if err != nil {
			return err
		}
		c.wishlistEntries = entries
		return nil
	}

	return c.mutateServerWishlist(ctx, http.MethodGet, "/api/wishlist", nil)
}

// mutateServerWishlist issues a wishlist request and replaces the cache
// wholly with the returned document. Callers must hold wishlistMu.
func (c *Client) mutateServerWishlist(ctx context.Context, method, path string, body any) error {
	var doc wishlistDocument
	if err := c.api.doData(ctx, method, path, body, &doc); err != nil {
		return err
	}

	entries := make([]WishlistEntry, 0, len(doc.Items))
	for _, item := range doc.Items {
		product, err := c.resolveProduct(ctx, item.ProductID)
		if err != nil {
			return fmt.Errorf("failed to resolve wishlist entry: %w", err)
		}
		entries = append(entries, WishlistEntry{Product: product})
	}

	c.wishlistEntries = entries
	return nil
}
