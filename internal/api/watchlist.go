package api

import (
	"encoding/json"
	"fmt"

	"github.com/rajeshacpt/Invest-Guru/internal/model"
)

// Watchlist returns the authenticated user's watchlist in service order.
func (c *Client) Watchlist(token string) ([]model.WatchlistItem, error) {
	resp, err := c.http.R().
		SetHeader("Authorization", "Bearer "+token).
		Get(c.baseURL + "/watchlist")
	if err != nil {
		return nil, fmt.Errorf("fetch watchlist: %w", err)
	}
	if resp.StatusCode() == 401 || resp.StatusCode() == 403 {
		return nil, ErrUnauthorized
	}
	if !resp.IsSuccess() {
		return nil, &StatusError{Code: resp.StatusCode(), Body: resp.String()}
	}
	var items []model.WatchlistItem
	if err := json.Unmarshal(resp.Body(), &items); err != nil {
		return nil, fmt.Errorf("decode watchlist: %w", err)
	}
	return items, nil
}

// AddToWatchlist appends a symbol to the user's watchlist. Callers must
// reload the watchlist afterwards; the add response carries no list state.
func (c *Client) AddToWatchlist(token, symbol string) error {
	resp, err := c.http.R().
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", "Bearer "+token).
		SetBody(map[string]string{"symbol": symbol}).
		Post(c.baseURL + "/watchlist")
	if err != nil {
		return fmt.Errorf("add to watchlist: %w", err)
	}
	if resp.StatusCode() == 401 || resp.StatusCode() == 403 {
		return ErrUnauthorized
	}
	if !resp.IsSuccess() {
		return &StatusError{Code: resp.StatusCode(), Body: resp.String()}
	}
	return nil
}
