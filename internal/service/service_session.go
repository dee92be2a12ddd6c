package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-auth-gate/internal/config"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/store"
	"github.com/MKhiriev/go-auth-gate/models"
)

// sessionGateway is the concrete implementation of SessionGateway over a
// SessionStorage. Expiry is left to the storage; the gateway only computes
// the ExpiresAt stamp stored with each session.
type sessionGateway struct {
	storage store.SessionStorage
	ids     store.IDGenerator
	ttl     time.Duration
	now     func() time.Time
	logger  *logger.Logger
}

func NewSessionGateway(storage store.SessionStorage, ids store.IDGenerator, cfg config.App, logger *logger.Logger) SessionGateway {
	return &sessionGateway{
		storage: storage,
		ids:     ids,
		ttl:     cfg.SessionTTL,
		now:     time.Now,
		logger:  logger,
	}
}

// LoadSession builds the session context for a request. An empty id, an
// unknown id and an expired session all give an anonymous context. A storage
// failure is returned as an error together with a context that keeps
// sessionID but no Session, so the request stays anonymous while a later
// DestroySession still targets the stored key.
func (g *sessionGateway) LoadSession(ctx context.Context, sessionID string) (*models.SessionContext, error) {
	if sessionID == "" {
		return &models.SessionContext{}, nil
	}

	session, err := g.storage.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return &models.SessionContext{}, nil
		}
		return &models.SessionContext{ID: sessionID}, fmt.Errorf("error loading session: %w", err)
	}

	if session.IsExpiredAt(g.now()) {
		return &models.SessionContext{}, nil
	}

	return &models.SessionContext{ID: sessionID, Session: &session}, nil
}

// EstablishSession binds identity and token to sc and persists it for the
// configured ttl. Every call allocates a fresh session id; a previous id held
// by sc is deleted once the new session is stored. sc is only updated once
// the storage has accepted the session.
func (g *sessionGateway) EstablishSession(ctx context.Context, sc *models.SessionContext, identity models.Identity, token models.Token) error {
	if sc == nil {
		return fmt.Errorf("%w: nil session context", ErrSessionPersistFailed)
	}

	log := logger.FromContext(ctx)
	id := g.ids.Generate()

	now := g.now()
	session := models.Session{
		UserID:      identity.UserID,
		Token:       token.SignedString,
		DisplayName: identity.Name,
		Email:       identity.Email,
		CreatedAt:   now,
		ExpiresAt:   now.Add(g.ttl),
	}

	if err := g.storage.Save(ctx, id, session, g.ttl); err != nil {
		log.Err(err).Str("func", "*sessionGateway.EstablishSession").Msg("error saving session")
		return fmt.Errorf("%w: %w", ErrSessionPersistFailed, err)
	}

	if previous := sc.ID; previous != "" && previous != id {
		if err := g.storage.Delete(ctx, previous); err != nil {
			log.Err(err).Str("func", "*sessionGateway.EstablishSession").Msg("error deleting replaced session")
		}
	}

	sc.ID = id
	sc.Session = &session

	return nil
}

// DestroySession deletes the session held by sc and clears sc. A context
// without a session is a no-op, so repeated calls succeed. A storage failure
// is returned as *SessionTeardownError and leaves sc untouched.
func (g *sessionGateway) DestroySession(ctx context.Context, sc *models.SessionContext) error {
	if sc == nil || sc.ID == "" {
		return nil
	}

	if err := g.storage.Delete(ctx, sc.ID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sessionGateway.DestroySession").Msg("error deleting session")
		return &SessionTeardownError{SessionID: sc.ID, Err: err}
	}

	sc.ID = ""
	sc.Session = nil

	return nil
}

// CurrentIdentity returns the identity bound to a live session in sc.
func (g *sessionGateway) CurrentIdentity(sc *models.SessionContext) (models.Identity, bool) {
	if !sc.Authenticated() || sc.Session.IsExpiredAt(g.now()) {
		return models.Identity{}, false
	}

	return models.Identity{
		UserID: sc.Session.UserID,
		Name:   sc.Session.DisplayName,
		Email:  sc.Session.Email,
	}, true
}
