// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")
)

// Response messages.
const (
	msgInvalidJSON     = "Invalid JSON was passed"
	msgBodyTooLarge    = "Request body is too large"
	msgInternalError   = "Internal Server Error"
	msgLoggedOut       = "Logged out successfully."
	msgLogoutFailed    = "Could not log out, please try again."
	msgTooManyRequests = "Too many requests from this IP, please try again later."
	msgWelcome         = "Welcome to the app!"
	msgWelcomeNamedFmt = "Welcome to the app, %s!"
	msgNotFound        = "Not Found"
)
