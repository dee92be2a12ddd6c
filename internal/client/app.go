package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/MKhiriev/go-auth-gate/internal/adapter"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/models"
)

type App struct {
	api    adapter.AuthClient
	out    io.Writer
	logger *logger.Logger
}

func NewApp(api adapter.AuthClient, out io.Writer, logger *logger.Logger) *App {
	return &App{
		api:    api,
		out:    out,
		logger: logger,
	}
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return ErrNoCommand
	}

	cmd, rest := args[0], args[1:]
	a.logger.Debug().Str("command", cmd).Int("args", len(rest)).Msg("running client command")

	switch cmd {
	case "signup":
		if len(rest) != 3 {
			return fmt.Errorf("%s: %w", cmd, ErrWrongArgs)
		}
		return a.signup(ctx, rest[0], rest[1], rest[2])
	case "login":
		if len(rest) != 2 {
			return fmt.Errorf("%s: %w", cmd, ErrWrongArgs)
		}
		return a.login(ctx, rest[0], rest[1])
	case "me":
		return a.me(ctx)
	case "home":
		return a.home(ctx)
	case "logout":
		return a.logout(ctx)
	case "version":
		return a.version(ctx)
	case "demo":
		if len(rest) != 3 {
			return fmt.Errorf("%s: %w", cmd, ErrWrongArgs)
		}
		return a.demo(ctx, rest[0], rest[1], rest[2])
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, cmd)
	}
}

func (a *App) signup(ctx context.Context, name, email, password string) error {
	resp, err := a.api.Signup(ctx, models.SignupRequest{Name: name, Email: email, Password: password})
	if err != nil {
		return fmt.Errorf("signup: %w", err)
	}
	return a.print(resp)
}

func (a *App) login(ctx context.Context, email, password string) error {
	resp, err := a.api.Login(ctx, models.LoginRequest{Email: email, Password: password})
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	return a.print(resp)
}

func (a *App) me(ctx context.Context) error {
	identity, err := a.api.Me(ctx)
	if err != nil {
		return fmt.Errorf("me: %w", err)
	}
	return a.print(identity)
}

func (a *App) home(ctx context.Context) error {
	greeting, err := a.api.Greeting(ctx)
	if err != nil {
		return fmt.Errorf("home: %w", err)
	}
	return a.print(models.MessageResponse{Message: greeting})
}

func (a *App) logout(ctx context.Context) error {
	resp, err := a.api.Logout(ctx)
	if err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return a.print(resp)
}

func (a *App) version(ctx context.Context) error {
	info, err := a.api.Version(ctx)
	if err != nil {
		return fmt.Errorf("version: %w", err)
	}
	return a.print(info)
}

// demo signs up, checks the identity and greeting, logs out, then logs back
// in and out again. The first failing step ends the run.
func (a *App) demo(ctx context.Context, name, email, password string) error {
	steps := []func() error{
		func() error { return a.signup(ctx, name, email, password) },
		func() error { return a.me(ctx) },
		func() error { return a.home(ctx) },
		func() error { return a.logout(ctx) },
		func() error { return a.login(ctx, email, password) },
		func() error { return a.home(ctx) },
		func() error { return a.logout(ctx) },
	}

	for _, step := range steps {
		if err := step(); err != nil {
			return fmt.Errorf("demo: %w", err)
		}
	}
	return nil
}

func (a *App) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("error writing output: %w", err)
	}
	return nil
}
