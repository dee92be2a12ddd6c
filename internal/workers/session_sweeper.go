package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/store"
)

// SessionSweeperWorker periodically removes expired sessions from an
// in-process session storage.
type SessionSweeperWorker struct {
	sweeper  store.SessionSweeper
	interval time.Duration
	logger   *logger.Logger
}

func NewSessionSweeperWorker(sweeper store.SessionSweeper, interval time.Duration, logger *logger.Logger) *SessionSweeperWorker {
	return &SessionSweeperWorker{
		sweeper:  sweeper,
		interval: interval,
		logger:   logger,
	}
}

func (w *SessionSweeperWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Info().Dur("interval", w.interval).Msg("session sweeper started")
	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("session sweeper stopped")
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *SessionSweeperWorker) sweep(ctx context.Context) {
	removed, err := w.sweeper.Sweep(ctx)
	if err != nil {
		if ctx.Err() == nil {
			w.logger.Err(err).Msg("error sweeping expired sessions")
		}
		return
	}

	if removed > 0 {
		w.logger.Debug().Int("removed", removed).Msg("expired sessions swept")
	}
}
