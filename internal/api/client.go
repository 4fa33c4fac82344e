// Package api is the HTTP client for the Invest-Guru service: auth,
// watchlist, quotes, and background job submission against a single
// configured origin.
package api

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client talks to the Invest-Guru service. All methods issue exactly one
// HTTP exchange; there are no retries and no polling.
type Client struct {
	baseURL string
	http    *resty.Client
}

// NewClient creates a client for the given origin, with optional proxy
// support.
func NewClient(baseURL, proxyURL string) *Client {
	httpClient := resty.New()
	httpClient.SetTimeout(30 * time.Second)
	if proxyURL != "" {
		httpClient.SetProxy(proxyURL)
	}
	return &Client{
		baseURL: baseURL,
		http:    httpClient,
	}
}

// BaseURL returns the resolved origin the client was built with.
func (c *Client) BaseURL() string { return c.baseURL }

// Health probes the service liveness endpoint and returns its status string.
func (c *Client) Health() (string, error) {
	resp, err := c.http.R().Get(c.baseURL + "/health")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	if !resp.IsSuccess() {
		return "", fmt.Errorf("%w: status %d", ErrUnreachable, resp.StatusCode())
	}
	var result struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return "", fmt.Errorf("decode health: %w", err)
	}
	return result.Status, nil
}

// UserInfo is the authenticated user's identity as reported by the service.
type UserInfo struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// Me returns the identity behind the given credential.
func (c *Client) Me(token string) (*UserInfo, error) {
	resp, err := c.http.R().
		SetHeader("Authorization", "Bearer "+token).
		Get(c.baseURL + "/me")
	if err != nil {
		return nil, fmt.Errorf("fetch identity: %w", err)
	}
	if resp.StatusCode() == 401 || resp.StatusCode() == 403 {
		return nil, ErrUnauthorized
	}
	if !resp.IsSuccess() {
		return nil, &StatusError{Code: resp.StatusCode(), Body: resp.String()}
	}
	var user UserInfo
	if err := json.Unmarshal(resp.Body(), &user); err != nil {
		return nil, fmt.Errorf("decode identity: %w", err)
	}
	return &user, nil
}
