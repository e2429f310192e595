package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Server wraps http.Server around a listener bound up front, so a taken
// port surfaces as an error from Listen.
type Server struct {
	srv             *http.Server
	ln              net.Listener
	log             *zap.Logger
	shutdownTimeout time.Duration
}

// Listen binds addr. The returned Server is not serving yet.
func Listen(addr string, h http.Handler, shutdownTimeout time.Duration, log *zap.Logger) (*Server, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen %s: %w", addr, err)
	}
	return &Server{
		srv: &http.Server{
			Handler:           h,
			ReadHeaderTimeout: 10 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
		ln:              ln,
		log:             log,
		shutdownTimeout: shutdownTimeout,
	}, nil
}

// Addr is the bound address; useful when listening on port 0.
func (s *Server) Addr() net.Addr { return s.ln.Addr() }

// Serve blocks until ctx is cancelled or the server fails, then drains
// in-flight requests for up to the shutdown timeout.
func (s *Server) Serve(ctx context.Context) error {
	errc := make(chan error, 1)
	go func() {
		s.log.Info("listening", zap.String("addr", s.ln.Addr().String()))
		errc <- s.srv.Serve(s.ln)
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	if err := s.srv.Shutdown(sctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
