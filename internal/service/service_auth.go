package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-auth-gate/internal/config"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/utils"
	"github.com/MKhiriev/go-auth-gate/models"
	"github.com/golang-jwt/jwt/v5"
)

// authService is the concrete implementation of AuthService.
// It delegates credential checks to a CredentialService and issues HS256
// JWT tokens for the resulting identity.
type authService struct {
	credentials CredentialService

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// genericLoginErrors replaces the login failure messages with one that
	// does not tell the caller which field was wrong.
	genericLoginErrors bool

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService over credentials, populated
// with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(credentials CredentialService, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		credentials:        credentials,
		tokenSignKey:       cfg.TokenSignKey,
		tokenIssuer:        cfg.TokenIssuer,
		tokenDuration:      cfg.TokenDuration,
		genericLoginErrors: cfg.GenericLoginErrors,
		logger:             logger,
	}
}

// Signup creates the account and issues a token for it. Credential errors
// are returned unchanged.
func (a *authService) Signup(ctx context.Context, name, email, password string) (models.AuthResult, error) {
	user, err := a.credentials.CreateUser(ctx, name, email, password)
	if err != nil {
		return models.AuthResult{}, err
	}

	return a.issue(ctx, user)
}

// Login checks the credentials and issues a token. Credential errors are
// returned unchanged in kind; with generic login errors enabled the
// not-found and wrong-password messages are replaced by
// "Invalid email or password".
func (a *authService) Login(ctx context.Context, email, password string) (models.AuthResult, error) {
	user, err := a.credentials.Authenticate(ctx, email, password)
	if err != nil {
		return models.AuthResult{}, a.loginError(err)
	}

	return a.issue(ctx, user)
}

// Identify returns the identity of the user a token was issued to.
func (a *authService) Identify(ctx context.Context, userID string) (models.Identity, error) {
	user, err := a.credentials.FindUser(ctx, userID)
	if err != nil {
		return models.Identity{}, err
	}

	return user.Identity(), nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim and the user id as "sub", and expires after
// tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.CreateToken").Msg("error creating token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Returns the decoded token or one of:
//   - ErrTokenExpired if the exp claim has passed.
//   - ErrTokenSignatureInvalid if the signature does not verify.
//   - ErrTokenInvalid for any other problem (malformed, wrong issuer, no subject).
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	switch {
	case err == nil:
		return token, nil
	case errors.Is(err, jwt.ErrTokenExpired):
		return models.Token{}, ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return models.Token{}, ErrTokenSignatureInvalid
	default:
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenInvalid
	}
}

func (a *authService) issue(ctx context.Context, user models.User) (models.AuthResult, error) {
	token, err := a.CreateToken(ctx, user)
	if err != nil {
		return models.AuthResult{}, err
	}

	return models.AuthResult{
		Identity: user.Identity(),
		Token:    token,
	}, nil
}

func (a *authService) loginError(err error) error {
	if !a.genericLoginErrors {
		return err
	}

	var notFound *NotFoundError
	if errors.As(err, &notFound) {
		return &NotFoundError{Email: notFound.Email, Message: MsgInvalidEmailOrPassword}
	}

	var invalid *InvalidCredentialsError
	if errors.As(err, &invalid) {
		return &InvalidCredentialsError{Email: invalid.Email, Message: MsgInvalidEmailOrPassword}
	}

	return err
}
