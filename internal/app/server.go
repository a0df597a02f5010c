package app

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/adielbeauty/storefront/internal/session"
	"github.com/adielbeauty/storefront/pkg/httpx"
)

// Server is the assembled storefront
type Server struct {
	Handlers *Handlers
	Registry *session.Registry
}

// NewServer creates a new server
func NewServer(handlers *Handlers, registry *session.Registry) *Server {
	return &Server{Handlers: handlers, Registry: registry}
}

// Router returns a router serving every storefront route. Tracing and logging wrap the
// session middleware so session lookups show up inside the request span. Only the
// /api and /auth routes carry a session; routes added to the returned router later
// (health, metrics, docs) never touch the registry.
func (s *Server) Router(middlewares httpx.MiddlewareConfig) *mux.Router {
	router := mux.NewRouter()
	httpx.RegisterMiddlewares(router, middlewares)

	// Session-bound routes
	sessioned := router.MatcherFunc(sessionPaths).Subrouter()
	sessioned.Use(s.Registry.Middleware)

	s.Handlers.Catalog.RegisterRoutes(sessioned)
	s.Handlers.Cart.RegisterRoutes(sessioned)
	s.Handlers.Checkout.RegisterRoutes(sessioned)
	s.Handlers.Identity.RegisterRoutes(sessioned)
	s.Handlers.Review.RegisterRoutes(sessioned)
	s.Handlers.Contact.RegisterRoutes(sessioned)
	return router
}

func sessionPaths(r *http.Request, _ *mux.RouteMatch) bool {
	return strings.HasPrefix(r.URL.Path, "/api/") || strings.HasPrefix(r.URL.Path, "/auth/")
}
