package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/models"
)

type memorySession struct {
	session   models.Session
	expiresAt time.Time
}

// memorySessionStorage is the in-process session storage used when no
// Redis address is configured. Expired entries are hidden from Get at once
// and reclaimed by Sweep.
type memorySessionStorage struct {
	mu       sync.RWMutex
	sessions map[string]memorySession
	now      func() time.Time
	logger   *logger.Logger
}

// MemorySessionStorage is the union of the storage and sweeper roles of the
// in-process store.
type MemorySessionStorage interface {
	SessionStorage
	SessionSweeper
}

func NewMemorySessionStorage(logger *logger.Logger) MemorySessionStorage {
	logger.Debug().Msg("creating in-memory session storage")
	return &memorySessionStorage{
		sessions: make(map[string]memorySession),
		now:      time.Now,
		logger:   logger,
	}
}

// Save stores session under id. A non-positive ttl keeps it until Delete.
func (s *memorySessionStorage) Save(_ context.Context, id string, session models.Session, ttl time.Duration) error {
	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = s.now().Add(ttl)
	}

	s.mu.Lock()
	s.sessions[id] = memorySession{session: session, expiresAt: expiresAt}
	s.mu.Unlock()

	return nil
}

func (s *memorySessionStorage) Get(_ context.Context, id string) (models.Session, error) {
	s.mu.RLock()
	item, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok || item.expired(s.now()) {
		return models.Session{}, ErrSessionNotFound
	}

	return item.session, nil
}

func (s *memorySessionStorage) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()

	return nil
}

// Sweep removes every expired session and returns how many were removed.
func (s *memorySessionStorage) Sweep(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	now := s.now()
	removed := 0

	s.mu.Lock()
	for id, item := range s.sessions {
		if item.expired(now) {
			delete(s.sessions, id)
			removed++
		}
	}
	s.mu.Unlock()

	return removed, nil
}

func (m memorySession) expired(now time.Time) bool {
	return !m.expiresAt.IsZero() && !now.Before(m.expiresAt)
}
