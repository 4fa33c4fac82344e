package api

import (
	"errors"
	"fmt"
)

// Sentinel errors for responses that carry no useful detail text.
var (
	// ErrUnauthorized is returned when the service rejects the bearer
	// credential on an authenticated route.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound is returned when a quote symbol is unknown to the service.
	ErrNotFound = errors.New("not found")

	// ErrUnreachable is returned when the health probe cannot reach the
	// service at all.
	ErrUnreachable = errors.New("service unreachable")
)

// RegistrationError is a rejected account registration. Detail carries the
// service's response body text, or a generic message if the body was empty.
type RegistrationError struct {
	Detail string
}

func (e *RegistrationError) Error() string { return e.Detail }

// CredentialsError is a rejected login.
type CredentialsError struct {
	Detail string
}

func (e *CredentialsError) Error() string { return e.Detail }

// StatusError is any other non-success response: the catch-all service
// failure in the taxonomy.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("status %d: %s", e.Code, e.Body)
	}
	return fmt.Sprintf("status %d", e.Code)
}

// detailOr returns body if non-empty, else the fallback message.
func detailOr(body, fallback string) string {
	if body != "" {
		return body
	}
	return fallback
}
