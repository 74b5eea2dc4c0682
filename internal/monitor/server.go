package monitor

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/dbehnke/tetra-corebs/internal/logger"
)

// Server exposes a Hub's WebSocket endpoint over HTTP, following the
// same listener-first Start/graceful-shutdown pattern as
// internal/metrics.Server.
type Server struct {
	enabled bool
	port    int
	path    string
	hub     *Hub
	log     *logger.Logger
	server  *http.Server
}

// NewServer returns a monitor Server. path is the WebSocket endpoint
// (e.g. "/ws").
func NewServer(enabled bool, port int, path string, hub *Hub, log *logger.Logger) *Server {
	if log == nil {
		log = logger.New(logger.Config{Level: "info"})
	}
	return &Server{enabled: enabled, port: port, path: path, hub: hub, log: log.WithComponent("monitor")}
}

// Start runs the hub event loop and the HTTP server concurrently
// until ctx is cancelled, then shuts down gracefully. Returns nil
// immediately if the server is disabled.
func (s *Server) Start(ctx context.Context) error {
	if !s.enabled {
		s.log.Info("monitor server disabled")
		return nil
	}

	go s.hub.Run(ctx)

	mux := http.NewServeMux()
	mux.Handle(s.path, s.hub.Handler())

	addr := fmt.Sprintf(":%d", s.port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	actualPort := listener.Addr().(*net.TCPAddr).Port

	s.server = &http.Server{Handler: mux}

	s.log.Info("starting monitor server", logger.Int("port", actualPort), logger.String("path", s.path))

	errChan := make(chan error, 1)
	go func() {
		if err := s.server.Serve(listener); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		s.log.Info("shutting down monitor server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("monitor server shutdown error: %w", err)
		}
		return ctx.Err()
	case err := <-errChan:
		return err
	}
}
