package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/thevanityindia/vanity-server/internal/model"
)

// HTTPServer wraps http.Server with listener selection and graceful
// shutdown.
type HTTPServer struct {
	server *http.Server
	addr   string
}

// NewHTTPServer creates a new HTTPServer serving handler on addr.
func NewHTTPServer(handler http.Handler, addr string) *HTTPServer {
	return &HTTPServer{
		server: &http.Server{
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
		addr: addr,
	}
}

// Address returns the address the server listens on.
func (s *HTTPServer) Address() string {
	return s.addr
}

// Start opens a listener through the security layer and serves until
// Stop is called. It blocks.
func (s *HTTPServer) Start(sl model.SecurityLayer) error {
	listener, err := sl.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}

	if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to serve: %w", err)
	}
	return nil
}

// Stop shuts the server down, waiting for in-flight requests up to the
// context deadline.
func (s *HTTPServer) Stop(ctx context.Context) error {
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}
