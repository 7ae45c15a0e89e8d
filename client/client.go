// Package client is the storefront SDK: catalog browsing, the
// cart/wishlist reconciliation layer and checkout against the REST API.
//
// Carts and wishlists have exactly one authoritative copy at a time. A
// guest's collections live in durable local storage and every mutation
// is applied locally. A signed-in user's collections live on the
// server; every mutation is a round trip and the local cache is
// replaced wholly by the server's response, never patched.
package client

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/thevanityindia/vanity-server/internal/logger"
)

// Client is a storefront session. Construct one per process with New
// and share it by reference; all methods are safe for concurrent use.
type Client struct {
	api    *apiClient
	store  Storage
	logger *logger.Logger

	sessionMu sync.RWMutex
	token     string
	user      *Principal

	cartMu    sync.Mutex
	cartLines []CartLine

	wishlistMu      sync.Mutex
	wishlistEntries []WishlistEntry

	productMu    sync.RWMutex
	productCache map[string]Product
}

// New creates a client against baseURL. A previously persisted session
// is restored from storage before any caller can observe authentication
// state; a restored session starts with empty server caches until the
// first fetch. Without a restored session the guest cart and wishlist
// are loaded from storage.
func New(baseURL string, store Storage, log *logger.Logger) (*Client, error) {
	c := &Client{
		store:        store,
		logger:       log,
		productCache: map[string]Product{},
	}
	c.api = newAPIClient(baseURL, c.sessionToken)

	if err := c.restoreSession(); err != nil {
		return nil, err
	}

	if !c.IsAuthenticated() {
		if err := c.loadGuestCollections(); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// IsAuthenticated reports whether a principal is signed in.
func (c *Client) IsAuthenticated() bool {
	c.sessionMu.RLock()
	defer c.sessionMu.RUnlock()
	return c.user != nil
}

// CurrentUser returns the signed-in principal, or ok=false for a guest.
func (c *Client) CurrentUser() (Principal, bool) {
	c.sessionMu.RLock()
	defer c.sessionMu.RUnlock()
	if c.user == nil {
		return Principal{}, false
	}
	return *c.user, true
}

func (c *Client) sessionToken() string {
	c.sessionMu.RLock()
	defer c.sessionMu.RUnlock()
	return c.token
}

func (c *Client) restoreSession() error {
	rawToken, ok, err := c.store.Get(keyToken)
	if err != nil {
		return fmt.Errorf("failed to restore session token: %w", err)
	}
	if !ok {
		return nil
	}

	rawUser, ok, err := c.store.Get(keyUser)
	if err != nil {
		return fmt.Errorf("failed to restore principal: %w", err)
	}
	if !ok {
		return nil
	}

	var token string
	if err := json.Unmarshal(rawToken, &token); err != nil {
		return fmt.Errorf("failed to decode stored token: %w", err)
	}
	var user Principal
	if err := json.Unmarshal(rawUser, &user); err != nil {
		return fmt.Errorf("failed to decode stored principal: %w", err)
	}

	c.sessionMu.Lock()
	c.token = token
	c.user = &user
	c.sessionMu.Unlock()

	return nil
}

func (c *Client) loadGuestCollections() error {
	lines, err := loadCollection[CartLine](c.store, keyGuestCart)
	if err != nil {
		return err
	}
	entries, err := loadCollection[WishlistEntry](c.store, keyGuestWishlist)
	if err != nil {
		return err
	}

	c.cartMu.Lock()
	c.cartLines = lines
	c.cartMu.Unlock()

	c.wishlistMu.Lock()
	c.wishlistEntries = entries
	c.wishlistMu.Unlock()

	return nil
}

func loadCollection[T any](store Storage, key string) ([]T, error) {
	raw, ok, err := store.Get(key)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", key, err)
	}
	if !ok {
		return nil, nil
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return items, nil
}

func persistCollection[T any](store Storage, key string, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := store.Set(key, raw); err != nil {
		return fmt.Errorf("failed to persist %s: %w", key, err)
	}
	return nil
}

func (c *Client) cacheProducts(products []Product) {
	c.productMu.Lock()
	defer c.productMu.Unlock()
	for _, product := range products {
		c.productCache[product.ID] = product
	}
}

func (c *Client) cachedProduct(id string) (Product, bool) {
	c.productMu.RLock()
	defer c.productMu.RUnlock()
	product, ok := c.productCache[id]
	return product, ok
}
