package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/go-auth-gate/models"
)

// UserRepository persists user accounts. Implementations enforce email
// uniqueness atomically through the storage's own constraint.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, id string) (models.User, error)
}

// SessionStorage keeps server-side sessions keyed by session id. Expiry is
// enforced by the storage itself: Get never returns a session whose ttl has
// elapsed.
type SessionStorage interface {
	Save(ctx context.Context, id string, session models.Session, ttl time.Duration) error
	Get(ctx context.Context, id string) (models.Session, error)
	Delete(ctx context.Context, id string) error
}

// SessionSweeper is implemented by session storages that need an external
// janitor to reclaim expired entries.
type SessionSweeper interface {
	Sweep(ctx context.Context) (int, error)
}

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// IDGenerator produces opaque unique identifiers.
type IDGenerator interface {
	Generate() string
}
