package server

import (
	"context"
	"fmt"
	"net"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-auth-gate/internal/config"
	"github.com/MKhiriev/go-auth-gate/internal/handler"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/workers"
)

type server struct {
	httpServer *httpServer
	workers    *workers.Workers
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, w *workers.Workers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		workers:    w,
		logger:     logger,
	}, nil
}

// RunServer serves until SIGTERM, SIGINT or SIGQUIT arrives, then shuts the
// HTTP server and the workers down.
func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Error().Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}

func (s *server) run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.httpServer.server.Addr)
	if err != nil {
		return fmt.Errorf("error listening on %s: %w", s.httpServer.server.Addr, err)
	}

	return s.serve(ctx, listener)
}

// serve runs the workers and the HTTP server on listener until ctx is done
// or the server fails. Workers are stopped and awaited before returning.
func (s *server) serve(ctx context.Context, listener net.Listener) error {
	workersCtx, stopWorkers := context.WithCancel(ctx)
	defer stopWorkers()

	if s.workers != nil {
		s.workers.Run(workersCtx)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpServer.serve(listener)
	}()

	var serveErr error
	select {
	case <-ctx.Done():
		s.logger.Info().Msg("shutdown requested")
		s.Shutdown()
		serveErr = <-errCh
	case serveErr = <-errCh:
	}

	stopWorkers()
	if s.workers != nil {
		s.workers.Wait()
	}

	if serveErr != nil {
		return fmt.Errorf("HTTP server failed: %w", serveErr)
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
