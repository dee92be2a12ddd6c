// Package utils provides general-purpose helper utilities
// used across different parts of the service.
// Includes tools for working with context, type-safe keys, password
// hashing, HTTP response writing, identifier generation and JWT token
// generation and validation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-auth-gate/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

var (
	// UserIDCtxKey is the key under which the bearer-token user id is stored.
	UserIDCtxKey = contextKey("userID")

	// SessionCtxKey is the key under which the request's
	// *models.SessionContext is stored by the session middleware.
	SessionCtxKey = contextKey("session")
)

// GetUserIDFromContext retrieves the user identifier from the context.
//
// Example usage:
//
//	userID, ok := utils.GetUserIDFromContext(ctx)
//	if !ok {
//	    // handle missing user in context
//	}
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(string)
	return userID, ok && userID != ""
}

// WithSessionContext returns a copy of ctx carrying sc.
func WithSessionContext(ctx context.Context, sc *models.SessionContext) context.Context {
	return context.WithValue(ctx, SessionCtxKey, sc)
}

// GetSessionContext returns the session context stored in ctx. When none is
// present a fresh anonymous context is returned with ok == false.
func GetSessionContext(ctx context.Context) (*models.SessionContext, bool) {
	sc, ok := ctx.Value(SessionCtxKey).(*models.SessionContext)
	if !ok || sc == nil {
		return &models.SessionContext{}, false
	}
	return sc, true
}
