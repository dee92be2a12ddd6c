package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-auth-gate/internal/config"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/models"
	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "sess:"

// redisSessionStorage keeps each session as a JSON value under
// "sess:<id>" with a Redis key TTL, so expiry needs no janitor.
type redisSessionStorage struct {
	rdb    *redis.Client
	logger *logger.Logger
}

// NewRedisClient connects to Redis and verifies the connection with PING.
func NewRedisClient(ctx context.Context, cfg config.Sessions, log *logger.Logger) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewRedisClient").Msg("error connecting redis (ping)")
		rdb.Close()
		return nil, fmt.Errorf("error connecting redis: %w", err)
	}
	log.Info().Str("func", "NewRedisClient").Msg("connected to redis successfully")

	return rdb, nil
}

func NewRedisSessionStorage(rdb *redis.Client, logger *logger.Logger) SessionStorage {
	logger.Debug().Msg("creating redis session storage")
	return &redisSessionStorage{
		rdb:    rdb,
		logger: logger,
	}
}

func (s *redisSessionStorage) Save(ctx context.Context, id string, session models.Session, ttl time.Duration) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("error encoding session: %w", err)
	}

	if err = s.rdb.Set(ctx, sessionKey(id), data, ttl).Err(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*redisSessionStorage.Save").Msg("error saving session")
		return fmt.Errorf("error saving session: %w", err)
	}

	return nil
}

func (s *redisSessionStorage) Get(ctx context.Context, id string) (models.Session, error) {
	data, err := s.rdb.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return models.Session{}, ErrSessionNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*redisSessionStorage.Get").Msg("error loading session")
		return models.Session{}, fmt.Errorf("error loading session: %w", err)
	}

	var session models.Session
	if err = json.Unmarshal(data, &session); err != nil {
		return models.Session{}, fmt.Errorf("error decoding session: %w", err)
	}

	return session, nil
}

// Delete removes the session. Deleting a missing key is not an error.
func (s *redisSessionStorage) Delete(ctx context.Context, id string) error {
	if err := s.rdb.Del(ctx, sessionKey(id)).Err(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*redisSessionStorage.Delete").Msg("error deleting session")
		return fmt.Errorf("error deleting session: %w", err)
	}

	return nil
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}
