// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

const (
	defaultClientServerURL = "http://localhost:8080"
	defaultClientTimeout   = 15 * time.Second
)

// ClientConfig configures the command-line client.
type ClientConfig struct {
	// ServerURL is the base URL of the go-auth-gate server.
	// Env: AUTH_GATE_SERVER_URL
	ServerURL string `env:"AUTH_GATE_SERVER_URL"`

	// RequestTimeout bounds every request made by the client.
	// Env: AUTH_GATE_CLIENT_TIMEOUT
	RequestTimeout time.Duration `env:"AUTH_GATE_CLIENT_TIMEOUT"`

	// Token is a bearer token sent with authenticated requests.
	// Env: AUTH_GATE_TOKEN
	Token string `env:"AUTH_GATE_TOKEN"`

	// LogLevel is the zerolog level name of the client logger.
	// Env: AUTH_GATE_LOG_LEVEL
	LogLevel string `env:"AUTH_GATE_LOG_LEVEL"`
}

// GetClientConfig reads the client configuration from the environment and
// the leading flags of args. Flags override the environment. The arguments
// left after the flags are returned as the command to run.
//
// Flags:
//
//	-a server base URL
//	-timeout request timeout (e.g., "10s")
//	-token bearer token
//	-log-level zerolog level name
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	cfg := &ClientConfig{
		ServerURL:      defaultClientServerURL,
		RequestTimeout: defaultClientTimeout,
		LogLevel:       "warn",
	}

	if err := parseEnv(cfg); err != nil {
		return nil, nil, err
	}

	fs := flag.NewFlagSet("go-auth-gate-client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "Server base URL")
	fs.DurationVar(&cfg.RequestTimeout, "timeout", cfg.RequestTimeout, "Request timeout (e.g., 10s)")
	fs.StringVar(&cfg.Token, "token", cfg.Token, "Bearer token")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	if cfg.ServerURL == "" {
		return nil, nil, ErrClientServerURLRequired
	}
	if cfg.RequestTimeout <= 0 {
		return nil, nil, ErrClientTimeoutInvalid
	}

	return cfg, fs.Args(), nil
}
