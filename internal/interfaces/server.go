package interfaces

import (
	"net/http"
)

// Server interface defines the methods for a server implementation.
type Server interface {
	// AddRoute registers handler for the given HTTP method and path pattern.
	AddRoute(method, route string, handler http.Handler) error
	// Handler returns the root handler, mostly for tests.
	Handler() http.Handler
	ListenAndServe() error
}
