package models

import "time"

// Session is the server-side record binding a session id to an
// authenticated identity. It is stored by a session storage that enforces
// ExpiresAt on its own.
type Session struct {
	UserID      string    `json:"user_id"`
	Token       string    `json:"token"`
	DisplayName string    `json:"display_name"`
	Email       string    `json:"email"`
	CreatedAt   time.Time `json:"created_at"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// IsExpiredAt reports whether the session is no longer valid at t.
func (s Session) IsExpiredAt(t time.Time) bool {
	return !s.ExpiresAt.IsZero() && !t.Before(s.ExpiresAt)
}

// SessionContext is the per-request handle on a session. It is created by
// the session gateway, passed explicitly into gateway operations and never
// shared between requests.
//
// An empty ID or a nil Session means the request is anonymous.
type SessionContext struct {
	ID      string
	Session *Session
}

// Authenticated reports whether a live session is bound to the context.
func (sc *SessionContext) Authenticated() bool {
	return sc != nil && sc.ID != "" && sc.Session != nil
}
