// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// Package adapter provides a typed client for the go-auth-gate HTTP API.
//
// [AuthClient] keeps the session cookie in a cookie jar and the bearer token
// returned by signup or login, so a single value can drive a full
// signup, login, logout sequence. Non-2xx responses are mapped by
// mapHTTPError to a [*ResponseError] that wraps one of the sentinels in
// errors.go, so callers can use [errors.Is] (e.g. [ErrBadRequest] for 400,
// [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-auth-gate/models"
)

// AuthClient defines communication with the go-auth-gate server.
type AuthClient interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or an empty string.
	Token() string

	// Signup registers a new account via POST /api/user/signup. On success
	// the returned token is stored via SetToken and the session cookie is
	// kept in the jar.
	Signup(ctx context.Context, req models.SignupRequest) (models.AuthResponse, error)

	// Login authenticates via POST /api/user/login, storing the token and
	// the session cookie like Signup.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)

	// Logout destroys the server-side session via POST /api/user/logout and
	// forgets the stored token.
	Logout(ctx context.Context) (models.MessageResponse, error)

	// Me returns the identity behind the stored bearer token via
	// GET /api/user/me.
	Me(ctx context.Context) (models.Identity, error)

	// Greeting returns the message of GET /, which names the session owner
	// when the session cookie is live.
	Greeting(ctx context.Context) (string, error)

	// Version returns the server build information from GET /api/version.
	Version(ctx context.Context) (models.AppBuildInfo, error)
}
