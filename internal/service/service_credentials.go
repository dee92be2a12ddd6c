// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-auth-gate/internal/config"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/store"
	"github.com/MKhiriev/go-auth-gate/internal/utils"
	"github.com/MKhiriev/go-auth-gate/models"
	"github.com/go-playground/validator/v10"
)

// dummyPassword is hashed once at construction; comparing against its hash
// on an unknown email makes that path cost one bcrypt comparison, the same
// as a known email.
const dummyPassword = "go-auth-gate-dummy-password"

// credentialService is the concrete implementation of CredentialService.
type credentialService struct {
	userRepository store.UserRepository
	validate       *validator.Validate
	strength       StrengthPolicy
	hashCost       int
	dummyHash      string
	logger         *logger.Logger
}

// NewCredentialService constructs a CredentialService over userRepository.
// A nil policy selects [DefaultStrengthPolicy]. Passwords are hashed with
// cfg.PasswordHashCost.
//
// Returns an error only if the cost is outside bcrypt's accepted range.
func NewCredentialService(userRepository store.UserRepository, policy StrengthPolicy, cfg config.App, logger *logger.Logger) (CredentialService, error) {
	if policy == nil {
		policy = DefaultStrengthPolicy
	}

	dummyHash, err := utils.HashPassword(dummyPassword, cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("error preparing credential service: %w", err)
	}

	return &credentialService{
		userRepository: userRepository,
		validate:       validator.New(validator.WithRequiredStructEnabled()),
		strength:       policy,
		hashCost:       cfg.PasswordHashCost,
		dummyHash:      dummyHash,
		logger:         logger,
	}, nil
}

// CreateUser validates the input, hashes the password and persists a new
// user. Checks run in this order and the first failure is returned:
//   - any field empty         → *ValidationError "All fields are required"
//   - malformed email         → *ValidationError "Email is not valid"
//   - password over 72 bytes  → *ValidationError "Password must be at most 72 bytes long"
//   - weak password           → *ValidationError "Password not strong enough"
//   - email already taken     → *ConflictError
//
// The returned user never carries the password hash.
func (s *credentialService) CreateUser(ctx context.Context, name, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if field := firstEmpty("name", name, "email", email, "password", password); field != "" {
		return models.User{}, &ValidationError{Field: field, Message: MsgAllFieldsRequired}
	}

	if err := s.validate.Var(email, "email"); err != nil {
		return models.User{}, &ValidationError{Field: "email", Message: MsgEmailNotValid}
	}

	if len(password) > utils.MaxPasswordBytes {
		return models.User{}, &ValidationError{Field: "password", Message: MsgPasswordTooLong}
	}

	if !s.strength(password) {
		return models.User{}, &ValidationError{Field: "password", Message: MsgPasswordNotStrong}
	}

	hash, err := utils.HashPassword(password, s.hashCost)
	if err != nil {
		log.Err(err).Str("func", "*credentialService.CreateUser").Msg("error hashing password")
		return models.User{}, err
	}

	user, err := s.userRepository.CreateUser(ctx, models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return models.User{}, &ConflictError{Email: email}
		}
		log.Err(err).Str("func", "*credentialService.CreateUser").Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	user.PasswordHash = ""
	log.Info().Str("user_id", user.ID).Msg("user created")

	return user, nil
}

// Authenticate checks email and password against the stored record.
//
// Returns the user without its hash, or:
//   - *ValidationError if email or password is empty.
//   - *NotFoundError if no user has this email.
//   - *InvalidCredentialsError if the password does not match.
func (s *credentialService) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if field := firstEmpty("email", email, "password", password); field != "" {
		return models.User{}, &ValidationError{Field: field, Message: MsgAllFieldsRequired}
	}

	user, err := s.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			// keep timing equal to the known-email path
			_, _ = utils.ComparePassword(s.dummyHash, password)
			return models.User{}, &NotFoundError{Email: email}
		}
		log.Err(err).Str("func", "*credentialService.Authenticate").Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	ok, err := utils.ComparePassword(user.PasswordHash, password)
	if err != nil {
		log.Err(err).Str("func", "*credentialService.Authenticate").Str("user_id", user.ID).Msg("stored hash is unusable")
		return models.User{}, err
	}
	if !ok {
		log.Debug().Str("user_id", user.ID).Msg("wrong password")
		return models.User{}, &InvalidCredentialsError{Email: email}
	}

	user.PasswordHash = ""
	return user, nil
}

// FindUser returns the user with userID without its hash, or a
// *NotFoundError.
func (s *credentialService) FindUser(ctx context.Context, userID string) (models.User, error) {
	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, &NotFoundError{Message: "User not found"}
		}
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	user.PasswordHash = ""
	return user, nil
}

// firstEmpty takes name/value pairs and returns the name of the first empty
// value, or "".
func firstEmpty(pairs ...string) string {
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] == "" {
			return pairs[i]
		}
	}
	return ""
}
