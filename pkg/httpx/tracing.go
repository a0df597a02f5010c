package httpx

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// TracingMiddleware wraps HTTP handlers with OpenTelemetry tracing. Spans are
// named after the matched route template, falling back to operationName.
func TracingMiddleware(operationName string, next http.Handler) http.Handler {
	return otelhttp.NewHandler(next, operationName,
		otelhttp.WithSpanNameFormatter(routeSpanName),
	)
}

// routeSpanName keeps product and item ids out of span names
func routeSpanName(operation string, r *http.Request) string {
	route := mux.CurrentRoute(r)
	if route == nil {
		return operation
	}
	tpl, err := route.GetPathTemplate()
	if err != nil {
		return operation
	}
	return r.Method + " " + tpl
}
