package metrics

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type ServerOpt func(*Server)

// WithHost sets the address the metrics server listens on.
func WithHost(host string) ServerOpt {
	return func(s *Server) {
		s.host = host
	}
}

// WithPort sets the port the metrics server listens on.
func WithPort(port int) ServerOpt {
	return func(s *Server) {
		s.port = port
	}
}

// Server serves a gatherer on /metrics until its context ends.
type Server struct {
	gatherer prometheus.Gatherer
	host     string
	port     int
}

func NewServer(gatherer prometheus.Gatherer, opts ...ServerOpt) *Server {
	s := &Server{
		gatherer: gatherer,
		host:     "127.0.0.1",
		port:     9090,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Handler returns the /metrics handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	return mux
}

func (s *Server) Start(ctx context.Context) error {
	l, err := net.Listen("tcp", net.JoinHostPort(s.host, fmt.Sprint(s.port)))
	if err != nil {
		return fmt.Errorf("listening for metrics: %w", err)
	}

	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(l)
	}()

	slog.InfoContext(ctx, "metrics server listening", "addr", l.Addr().String())

	select {
	case <-ctx.Done():
	case err := <-errCh:
		return fmt.Errorf("serving metrics: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("shutting down metrics server: %w", err)
	}
	return nil
}
