package service

import (
	"errors"
	"fmt"
)

// Sentinels matched by the typed errors below through their Is methods, so
// callers can test the kind with errors.Is without a type assertion.
var (
	// ErrValidation is the kind of [ValidationError].
	ErrValidation = errors.New("validation failed")

	// ErrConflict is the kind of [ConflictError].
	ErrConflict = errors.New("conflict")

	// ErrNotFound is the kind of [NotFoundError].
	ErrNotFound = errors.New("not found")

	// ErrInvalidCredentials is the kind of [InvalidCredentialsError].
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrSessionTeardown is the kind of [SessionTeardownError].
	ErrSessionTeardown = errors.New("session teardown failed")
)

var (
	ErrTokenCreationFailed   = errors.New("token creation failed")
	ErrTokenExpired          = errors.New("token is expired")
	ErrTokenSignatureInvalid = errors.New("token signature is invalid")
	ErrTokenInvalid          = errors.New("token is invalid")

	ErrSessionPersistFailed = errors.New("session could not be persisted")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// User-facing messages carried by the typed errors.
const (
	MsgAllFieldsRequired      = "All fields are required"
	MsgEmailNotValid          = "Email is not valid"
	MsgPasswordNotStrong      = "Password not strong enough"
	MsgPasswordTooLong        = "Password must be at most 72 bytes long"
	MsgEmailInUse             = "Email already in use"
	MsgIncorrectEmail         = "Incorrect email"
	MsgIncorrectPassword      = "Incorrect password"
	MsgInvalidEmailOrPassword = "Invalid email or password"
)

// ValidationError reports input that breaks a credential rule.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// ConflictError reports a signup with an email that is already registered.
type ConflictError struct {
	Email string
}

func (e *ConflictError) Error() string { return MsgEmailInUse }

func (e *ConflictError) Is(target error) bool { return target == ErrConflict }

// NotFoundError reports a login with an email that has no account.
// Message overrides the default text when set.
type NotFoundError struct {
	Email   string
	Message string
}

func (e *NotFoundError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return MsgIncorrectEmail
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// InvalidCredentialsError reports a password that does not match the stored
// hash. Message overrides the default text when set.
type InvalidCredentialsError struct {
	Email   string
	Message string
}

func (e *InvalidCredentialsError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return MsgIncorrectPassword
}

func (e *InvalidCredentialsError) Is(target error) bool { return target == ErrInvalidCredentials }

// SessionTeardownError reports that the session storage failed to delete a
// session on logout.
type SessionTeardownError struct {
	SessionID string
	Err       error
}

func (e *SessionTeardownError) Error() string {
	return fmt.Sprintf("could not destroy session %q: %v", e.SessionID, e.Err)
}

func (e *SessionTeardownError) Is(target error) bool { return target == ErrSessionTeardown }

func (e *SessionTeardownError) Unwrap() error { return e.Err }
