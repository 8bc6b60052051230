package api

import (
	"context"
	"net/http"

	"go.uber.org/zap"
)

// Login authenticates and stores the issued access token in the local store.
func (c *Client) Login(ctx context.Context, creds Credentials) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/login", creds, &resp); err != nil {
		return nil, err
	}
	if resp.AccessToken != "" {
		if err := c.tokens.SetToken(resp.AccessToken); err != nil {
			c.logger.Warn("failed to persist token", zap.Error(err))
		}
	}
	return &resp, nil
}

// Register creates an account and stores the issued access token.
func (c *Client) Register(ctx context.Context, creds Credentials) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/registration", creds, &resp); err != nil {
		return nil, err
	}
	if resp.AccessToken != "" {
		if err := c.tokens.SetToken(resp.AccessToken); err != nil {
			c.logger.Warn("failed to persist token", zap.Error(err))
		}
	}
	return &resp, nil
}

// Logout ends the session. The local token is cleared even when the request
// fails; a stale server-side session is preferable to a stuck client.
func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "/logout", nil, nil)
	if clearErr := c.tokens.ClearToken(); clearErr != nil {
		c.logger.Warn("failed to clear token", zap.Error(clearErr))
	}
	return err
}

// CheckAuth refreshes the session. Any failure — transport, status, or a
// response without a token — clears the stored token and reads as "not
// authenticated"; it is never escalated as an error.
func (c *Client) CheckAuth(ctx context.Context) bool {
	var resp AuthResponse
	if err := c.do(ctx, http.MethodGet, "/refresh", nil, &resp); err != nil {
		c.logger.Debug("session check failed", zap.Error(err))
		c.clearToken()
		return false
	}
	if resp.AccessToken == "" {
		c.clearToken()
		return false
	}
	if err := c.tokens.SetToken(resp.AccessToken); err != nil {
		c.logger.Warn("failed to persist refreshed token", zap.Error(err))
	}
	return true
}

// Me fetches the authenticated user's profile.
func (c *Client) Me(ctx context.Context) (*UserInfo, error) {
	var info UserInfo
	if err := c.do(ctx, http.MethodGet, "/me", nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

func (c *Client) clearToken() {
	if err := c.tokens.ClearToken(); err != nil {
		c.logger.Warn("failed to clear token", zap.Error(err))
	}
}
