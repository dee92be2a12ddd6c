package models

import "time"

// User represents a registered account.
// PasswordHash is a bcrypt digest and is never serialized to JSON.
type User struct {
	// ID is the opaque unique identifier assigned by the store layer.
	ID string `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the unique login identifier of the user.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the password.
	// It MUST never hold the plaintext password.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Identity returns the public identity of the user.
func (u User) Identity() Identity {
	return Identity{
		UserID: u.ID,
		Name:   u.Name,
		Email:  u.Email,
	}
}

// Identity is the non-secret view of an authenticated user returned to
// callers and bound to sessions.
type Identity struct {
	UserID string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// AuthResult is the outcome of a successful signup or login.
type AuthResult struct {
	Identity Identity
	Token    Token
}
