package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-auth-gate/internal/config"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/store"
)

type Workers struct {
	workers []Worker
	wg      sync.WaitGroup
}

// NewWorkers builds the background workers needed by storages. The session
// sweeper is only started when the session storage expires entries in
// process, Redis expires keys on its own.
func NewWorkers(storages *store.Storages, cfg config.Workers, logger *logger.Logger) *Workers {
	w := &Workers{}

	if sweeper, ok := storages.SessionStorage.(store.SessionSweeper); ok && cfg.SessionSweepInterval > 0 {
		w.workers = append(w.workers, NewSessionSweeperWorker(sweeper, cfg.SessionSweepInterval, logger))
	}

	logger.Info().Int("count", len(w.workers)).Msg("background workers created")
	return w
}

// Run starts every worker on its own goroutine and returns immediately.
// Use Wait to block until they have all stopped.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		w.wg.Add(1)
		go func() {
			defer w.wg.Done()
			worker.Run(ctx)
		}()
	}
}

// Wait blocks until every worker started by Run has returned.
func (w *Workers) Wait() {
	w.wg.Wait()
}

// NewWorkersOf groups already constructed workers.
func NewWorkersOf(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}
