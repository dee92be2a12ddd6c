package store

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-auth-gate/internal/config"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStorages_SQLiteWithMemorySessions(t *testing.T) {
	s, err := NewStorages(context.Background(), config.Storage{
		DB: config.DB{Driver: config.DriverSQLite, DSN: ":memory:"},
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	assert.NotNil(t, s.UserRepository)
	_, ok := s.SessionStorage.(SessionSweeper)
	assert.True(t, ok, "in-memory storage must be sweepable")
}

func TestNewStorages_SQLiteWithRedisSessions(t *testing.T) {
	mr := miniredis.RunT(t)

	s, err := NewStorages(context.Background(), config.Storage{
		DB:       config.DB{Driver: config.DriverSQLite, DSN: ":memory:"},
		Sessions: config.Sessions{RedisAddress: mr.Addr()},
	}, logger.Nop())
	require.NoError(t, err)

	_, ok := s.SessionStorage.(SessionSweeper)
	assert.False(t, ok)
	assert.NoError(t, s.Close())
}

func TestNewStorages_UnsupportedDriver(t *testing.T) {
	_, err := NewStorages(context.Background(), config.Storage{
		DB: config.DB{Driver: "mysql", DSN: "x"},
	}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}
