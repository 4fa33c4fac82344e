package api

import (
	"encoding/json"
	"fmt"
)

type credentialsBody struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register creates a new account. A non-success response becomes a
// *RegistrationError carrying the service's detail text.
func (c *Client) Register(username, password string) error {
	resp, err := c.http.R().
		SetHeader("Content-Type", "application/json").
		SetBody(credentialsBody{Username: username, Password: password}).
		Post(c.baseURL + "/auth/register")
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}
	if !resp.IsSuccess() {
		return &RegistrationError{Detail: detailOr(resp.String(), "Registration failed")}
	}
	return nil
}

// Login exchanges credentials for a bearer token. A non-success response
// becomes a *CredentialsError carrying the service's detail text.
func (c *Client) Login(username, password string) (string, error) {
	resp, err := c.http.R().
		SetHeader("Content-Type", "application/json").
		SetBody(credentialsBody{Username: username, Password: password}).
		Post(c.baseURL + "/auth/login")
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}
	if !resp.IsSuccess() {
		return "", &CredentialsError{Detail: detailOr(resp.String(), "Invalid credentials")}
	}
	var result struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return "", fmt.Errorf("decode login response: %w", err)
	}
	if result.AccessToken == "" {
		return "", fmt.Errorf("login response missing access_token")
	}
	return result.AccessToken, nil
}
