package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// RequestPasscode asks the server to email a single-use sign-in code.
func (c *Client) RequestPasscode(ctx context.Context, email string) error {
	_, err := c.api.do(ctx, http.MethodPost, "/api/auth/send-otp", map[string]string{
		"email": email,
	})
	return err
}

// VerifyPasscode submits the emailed code. On success the session is
// persisted for restarts and the active cart and wishlist switch to the
// server's copies, replacing whatever the guest cache held. The guest's
// durable local copies stay on disk but are no longer read.
func (c *Client) VerifyPasscode(ctx context.Context, email, code string) (Principal, error) {
	env, err := c.api.do(ctx, http.MethodPost, "/api/auth/verify-otp", map[string]string{
		"email": email,
		"otp":   code,
	})
	if err != nil {
		return Principal{}, err
	}

	var user Principal
	if err := json.Unmarshal(env.User, &user); err != nil {
		return Principal{}, fmt.Errorf("failed to decode principal: %w", err)
	}
	if env.Token == "" {
		return Principal{}, fmt.Errorf("server returned no session token")
	}

	if err := c.persistSession(env.Token, user); err != nil {
		return Principal{}, err
	}

	c.sessionMu.Lock()
	c.token = env.Token
	c.user = &user
	c.sessionMu.Unlock()

	if err := c.RefreshCart(ctx); err != nil {
		return user, err
	}
	if err := c.RefreshWishlist(ctx); err != nil {
		return user, err
	}

	return user, nil
}

// SignOut clears the session and its durable copy, then repopulates the
// cart and wishlist from the last guest snapshot in local storage.
// Idempotent.
func (c *Client) SignOut() error {
	c.sessionMu.Lock()
	c.token = ""
	c.user = nil
	c.sessionMu.Unlock()

	if err := c.store.Delete(keyToken); err != nil {
		return fmt.Errorf("failed to clear stored token: %w", err)
	}
	if err := c.store.Delete(keyUser); err != nil {
		return fmt.Errorf("failed to clear stored principal: %w", err)
	}

	return c.loadGuestCollections()
}

func (c *Client) persistSession(token string, user Principal) error {
	rawToken, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("failed to encode token: %w", err)
	}
	rawUser, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode principal: %w", err)
	}

	if err := c.store.Set(keyToken, rawToken); err != nil {
		return fmt.Errorf("failed to persist token: %w", err)
	}
	if err := c.store.Set(keyUser, rawUser); err != nil {
		return fmt.Errorf("failed to persist principal: %w", err)
	}
	return nil
}
