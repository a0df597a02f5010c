package httpx

import (
	"net/http"

	"github.com/gorilla/mux"
)

// MiddlewareConfig holds middleware configuration
type MiddlewareConfig struct {
	EnableLogging bool
	EnableTracing bool
}

// DefaultMiddlewareConfig returns default middleware configuration
func DefaultMiddlewareConfig() MiddlewareConfig {
	return MiddlewareConfig{
		EnableLogging: true,
		EnableTracing: true,
	}
}

// RegisterMiddlewares registers the router-wide middlewares.
// Tracing runs outermost so request logs carry the trace id.
func RegisterMiddlewares(router *mux.Router, config MiddlewareConfig) {
	if config.EnableTracing {
		router.Use(func(next http.Handler) http.Handler {
			return TracingMiddleware("http-request", next)
		})
	}

	if config.EnableLogging {
		router.Use(LoggingMiddleware)
	}
}
