package model

import "time"

// Session is the client's belief about whether it holds a valid bearer
// credential. A zero Session means anonymous.
type Session struct {
	Token     string    `json:"token"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Present reports whether the session carries a credential.
func (s Session) Present() bool {
	return s.Token != ""
}
