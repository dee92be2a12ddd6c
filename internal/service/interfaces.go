package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-auth-gate/models"
)

// CredentialService owns user records: it validates and hashes credentials
// on signup and checks them on login.
type CredentialService interface {
	CreateUser(ctx context.Context, name, email, password string) (models.User, error)
	Authenticate(ctx context.Context, email, password string) (models.User, error)
	FindUser(ctx context.Context, userID string) (models.User, error)
}

type AuthService interface {
	Signup(ctx context.Context, name, email, password string) (models.AuthResult, error)
	Login(ctx context.Context, email, password string) (models.AuthResult, error)
	Identify(ctx context.Context, userID string) (models.Identity, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// SessionGateway binds an authenticated identity and its token to a
// server-side session and tears it down on logout. The per-request
// *models.SessionContext is always passed in explicitly.
type SessionGateway interface {
	LoadSession(ctx context.Context, sessionID string) (*models.SessionContext, error)
	EstablishSession(ctx context.Context, sc *models.SessionContext, identity models.Identity, token models.Token) error
	DestroySession(ctx context.Context, sc *models.SessionContext) error
	CurrentIdentity(sc *models.SessionContext) (models.Identity, bool)
}

type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.AppBuildInfo
}
