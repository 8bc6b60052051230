package api

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// GetFavorites fetches the server-side favorite tickers.
func (c *Client) GetFavorites(ctx context.Context) ([]string, error) {
	var favorites []string
	if err := c.do(ctx, http.MethodGet, "/favorites", nil, &favorites); err != nil {
		return nil, err
	}
	return favorites, nil
}

// AddFavorite marks a ticker as a server-side favorite. Failures are logged
// and swallowed; the toggle degrades to a no-op.
func (c *Client) AddFavorite(ctx context.Context, ticker string) {
	req := favoriteRequest{Ticker: strings.ToLower(ticker)}
	if err := c.do(ctx, http.MethodPost, "/favorites/add", req, nil); err != nil {
		c.logger.Warn("failed to add favorite", zap.String("ticker", req.Ticker), zap.Error(err))
	}
}

// RemoveFavorite unmarks a server-side favorite. Failures are logged and
// swallowed.
func (c *Client) RemoveFavorite(ctx context.Context, ticker string) {
	req := favoriteRequest{Ticker: strings.ToLower(ticker)}
	if err := c.do(ctx, http.MethodDelete, "/favorites/remove", req, nil); err != nil {
		c.logger.Warn("failed to remove favorite", zap.String("ticker", req.Ticker), zap.Error(err))
	}
}
