package metrics

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/dbehnke/tetra-corebs/internal/logger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server exposes a Metrics registry over HTTP via promhttp.Handler,
// following the teacher's pkg/metrics/prometheus.go PrometheusServer
// shape (listener-first Start, graceful shutdown on context
// cancellation).
type Server struct {
	enabled bool
	port    int
	path    string
	log     *logger.Logger
	server  *http.Server
}

// NewServer returns a metrics Server. path is the scrape endpoint
// (e.g. "/metrics").
func NewServer(enabled bool, port int, path string, log *logger.Logger) *Server {
	if log == nil {
		log = logger.New(logger.Config{Level: "info"})
	}
	return &Server{enabled: enabled, port: port, path: path, log: log.WithComponent("metrics")}
}

// Start blocks serving metrics until ctx is cancelled, then shuts down
// gracefully. Returns nil immediately if the server is disabled.
func (s *Server) Start(ctx context.Context) error {
	if !s.enabled {
		s.log.Info("metrics server disabled")
		return nil
	}

	mux := http.NewServeMux()
	mux.Handle(s.path, promhttp.Handler())

	addr := fmt.Sprintf(":%d", s.port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	actualPort := listener.Addr().(*net.TCPAddr).Port

	s.server = &http.Server{Handler: mux}

	s.log.Info("starting metrics server", logger.Int("port", actualPort), logger.String("path", s.path))

	errChan := make(chan error, 1)
	go func() {
		if err := s.server.Serve(listener); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		s.log.Info("shutting down metrics server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("metrics server shutdown error: %w", err)
		}
		return ctx.Err()
	case err := <-errChan:
		return err
	}
}
