package api

import (
	"encoding/json"
	"fmt"

	"github.com/rajeshacpt/Invest-Guru/internal/model"
)

// Quote fetches the current quote for a symbol. No authentication. The
// symbol must already be normalized; see model.NormalizeSymbol.
func (c *Client) Quote(symbol string) (*model.Quote, error) {
	resp, err := c.http.R().Get(c.baseURL + "/quotes/" + symbol)
	if err != nil {
		return nil, fmt.Errorf("fetch quote: %w", err)
	}
	if resp.StatusCode() == 404 {
		return nil, fmt.Errorf("quote for %s: %w", symbol, ErrNotFound)
	}
	if !resp.IsSuccess() {
		return nil, &StatusError{Code: resp.StatusCode(), Body: resp.String()}
	}
	var quote model.Quote
	if err := json.Unmarshal(resp.Body(), &quote); err != nil {
		return nil, fmt.Errorf("decode quote: %w", err)
	}
	return &quote, nil
}
