package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-auth-gate/internal/config"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/sethvargo/go-retry"
)

const (
	connectMaxRetries = 3
	connectRetryBase  = 500 * time.Millisecond
)

type pinger interface {
	PingContext(ctx context.Context) error
}

func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := sql.Open(config.DriverPostgres, cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occurred during database connection")
		return nil, fmt.Errorf("error occurred during database connection: %w", err)
	}

	// setup connections
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	classifier := NewPostgresErrorClassifier()
	backoff := retry.WithMaxRetries(connectMaxRetries, retry.NewExponential(connectRetryBase))

	// ping database
	if err = pingWithRetry(ctx, conn, classifier, backoff, log); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		conn.Close()
		return nil, fmt.Errorf("error connecting database: %w", err)
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	// construct a DB struct
	db := &DB{
		DB:     conn,
		driver: config.DriverPostgres,
		logger: log,
	}

	return db, nil
}

// pingWithRetry pings the database, retrying with backoff only while the
// classifier reports the failure as retryable.
func pingWithRetry(ctx context.Context, p pinger, classifier ErrorClassificator, backoff retry.Backoff, log *logger.Logger) error {
	attempt := 0
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		err := p.PingContext(ctx)
		if err == nil {
			return nil
		}

		if classifier.Classify(err) == Retryable {
			log.Warn().Err(err).Int("attempt", attempt).Msg("database is not reachable yet, retrying")
			return retry.RetryableError(err)
		}

		return err
	})
}

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	// if postgres returns error
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
