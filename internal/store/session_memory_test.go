package store

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testClock struct{ t time.Time }

func (c *testClock) now() time.Time { return c.t }

func newTestMemoryStorage() (*memorySessionStorage, *testClock) {
	clock := &testClock{t: fixedNow}
	s := NewMemorySessionStorage(logger.Nop()).(*memorySessionStorage)
	s.now = clock.now
	return s, clock
}

func TestMemorySessionStorage_SaveGetDelete(t *testing.T) {
	s, _ := newTestMemoryStorage()
	ctx := context.Background()
	session := models.Session{UserID: "u1", Token: "tok", DisplayName: "John"}

	require.NoError(t, s.Save(ctx, "sid", session, time.Hour))

	got, err := s.Get(ctx, "sid")
	require.NoError(t, err)
	assert.Equal(t, session, got)

	require.NoError(t, s.Delete(ctx, "sid"))
	_, err = s.Get(ctx, "sid")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	// deleting twice is fine
	require.NoError(t, s.Delete(ctx, "sid"))
}

func TestMemorySessionStorage_Expiry(t *testing.T) {
	s, clock := newTestMemoryStorage()
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "short", models.Session{UserID: "u1"}, time.Minute))
	require.NoError(t, s.Save(ctx, "long", models.Session{UserID: "u2"}, time.Hour))
	require.NoError(t, s.Save(ctx, "forever", models.Session{UserID: "u3"}, 0))

	clock.t = clock.t.Add(time.Minute)

	_, err := s.Get(ctx, "short")
	assert.ErrorIs(t, err, ErrSessionNotFound, "session must expire exactly at its ttl")

	_, err = s.Get(ctx, "long")
	assert.NoError(t, err)

	removed, err := s.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.Len(t, s.sessions, 2)

	clock.t = clock.t.Add(24 * time.Hour)
	removed, err = s.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	_, err = s.Get(ctx, "forever")
	assert.NoError(t, err)
}

func TestMemorySessionStorage_SweepCancelled(t *testing.T) {
	s, _ := newTestMemoryStorage()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Sweep(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
