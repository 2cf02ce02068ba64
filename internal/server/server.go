package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/haguru/userdirectory/internal/interfaces"
)

var (
	ReadTimeout  = 10 * time.Second
	WriteTimeout = 10 * time.Second
	IdleTimeout  = 30 * time.Second
)

type Server struct {
	Port   string
	Host   string
	server *http.Server
	router chi.Router
	Logger interfaces.Logger
}

// NewServer creates a new Server instance with the specified host and port.
// Middlewares wrap every route registered afterwards, outermost first.
func NewServer(host, port string, logger interfaces.Logger, middlewares ...func(http.Handler) http.Handler) interfaces.Server {
	router := chi.NewRouter()
	router.Use(middlewares...)

	server := &http.Server{
		Addr:         host + ":" + port,
		Handler:      router,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
		IdleTimeout:  IdleTimeout,
	}

	return &Server{
		Host:   host,
		Port:   port,
		server: server,
		router: router,
		Logger: logger,
	}
}

// AddRoute registers handler for method on route. Route may carry chi
// path parameters such as {username}.
func (s *Server) AddRoute(method, route string, handler http.Handler) error {
	if handler == nil {
		return fmt.Errorf("nil handler for %s %s", method, route)
	}
	if method == "" || route == "" {
		return fmt.Errorf("method and route are required, got %q %q", method, route)
	}

	s.router.Method(method, route, handler)
	s.Logger.Info("Route added", "method", method, "route", route)
	return nil
}

// Handler returns the router with every registered route.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe starts the HTTP server and listens for incoming requests.
func (s *Server) ListenAndServe() error {
	s.Logger.Info("Starting server", "host", s.Host, "port", s.Port)
	err := s.server.ListenAndServe()
	if err != nil {
		s.Logger.Error("Failed to start server", "error", err)
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
