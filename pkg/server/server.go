// Package server exposes package queries over HTTP.
//
// # Routes
//
//	GET /api/packages          names query, a JSON array of strings
//	GET /api/packages/{name}   detail query, a JSON object
//	GET /healthz               liveness, {"status":"ok"}
//	GET /metrics               Prometheus exposition (when configured)
//
// Errors are JSON objects of the form {"error": "...", "code": "..."}.
// A missing or unreadable status file yields 500, an invalid package name
// 400. Unknown package names are not errors; they return an empty detail.
package server

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/dpkgview/pkg/index"
)

// ShutdownTimeout bounds how long Run waits for in-flight requests.
const ShutdownTimeout = 10 * time.Second

// Querier answers the two package queries. *index.Service implements it.
type Querier interface {
	Names(ctx context.Context) ([]string, error)
	Detail(ctx context.Context, name string) (*index.Detail, error)
}

// Options configures a Server.
type Options struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Logger       *log.Logger
	// Metrics is mounted at /metrics when non-nil.
	Metrics http.Handler
}

// Server is the HTTP API.
type Server struct {
	q       Querier
	opts    Options
	logger  *log.Logger
	handler http.Handler
}

// New creates a server answering from q.
func New(q Querier, opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	s := &Server{q: q, opts: opts, logger: logger}
	s.handler = s.routes()
	return s
}

// Handler returns the routed handler with all middleware applied.
func (s *Server) Handler() http.Handler { return s.handler }

// Run listens on the configured address and serves until ctx is cancelled,
// then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.opts.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is like Run but accepts connections on ln.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      s.handler,
		ReadTimeout:  s.opts.ReadTimeout,
		WriteTimeout: s.opts.WriteTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
