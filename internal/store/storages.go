package store

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-auth-gate/internal/config"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/utils"
)

// Storages groups the storage backends handed to the service layer.
type Storages struct {
	// UserRepository is the SQL-backed user account store.
	UserRepository UserRepository

	// SessionStorage holds server-side sessions, in Redis or in memory.
	SessionStorage SessionStorage

	closers []io.Closer
}

// NewStorages initialises the storage layer:
//  1. Opens the user database selected by cfg.DB.Driver (PostgreSQL with a
//     bounded connect retry, or SQLite).
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Connects to Redis when cfg.Sessions.RedisAddress is set, otherwise
//     falls back to the in-memory session storage.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	var (
		db  *DB
		err error
	)
	switch cfg.DB.Driver {
	case config.DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	case config.DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.DB.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	s := &Storages{
		UserRepository: NewUserRepository(db, utils.NewUUIDGenerator(), log),
		closers:        []io.Closer{db},
	}

	if cfg.Sessions.RedisAddress == "" {
		s.SessionStorage = NewMemorySessionStorage(log)
		return s, nil
	}

	rdb, err := NewRedisClient(ctx, cfg.Sessions, log)
	if err != nil {
		s.Close()
		return nil, err
	}
	s.SessionStorage = NewRedisSessionStorage(rdb, log)
	s.closers = append(s.closers, rdb)

	return s, nil
}

// Close releases every underlying connection.
func (s *Storages) Close() error {
	var errs []error
	for _, c := range s.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
