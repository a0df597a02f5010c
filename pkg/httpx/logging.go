package httpx

import (
	"net/http"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/adielbeauty/storefront/pkg/logger"
)

// SessionHeader carries the browser session id in both directions
const SessionHeader = "X-Session-ID"

// LoggingMiddleware logs HTTP requests with structured logging. The completion
// line carries the session id the response was served under, when there is one.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Capture status and body size
		ww := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

		// Get trace ID
		ctx := r.Context()
		span := trace.SpanFromContext(ctx)
		traceID := "no-trace"
		if span.SpanContext().IsValid() {
			traceID = span.SpanContext().TraceID().String()
		}

		// Request start is noisy, keep it at debug
		logger.Debug(ctx).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("remote_addr", r.RemoteAddr).
			Str("user_agent", r.UserAgent()).
			Str("trace_id", traceID).
			Msg("HTTP request started")

		next.ServeHTTP(ww, r)

		duration := time.Since(start)

		// Client errors warn, server errors error
		logEvent := logger.WithContext(ctx).Info()
		if ww.statusCode >= 500 {
			logEvent = logger.WithContext(ctx).Error()
		} else if ww.statusCode >= 400 {
			logEvent = logger.WithContext(ctx).Warn()
		}

		if sid := ww.Header().Get(SessionHeader); sid != "" {
			logEvent = logEvent.Str("session_id", sid)
		}

		logEvent.
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.statusCode).
			Int("bytes", ww.written).
			Dur("duration", duration).
			Int64("duration_ms", duration.Milliseconds()).
			Str("trace_id", traceID).
			Msg("HTTP request completed")
	})
}

// statusRecorder wraps http.ResponseWriter to capture status code and body size
type statusRecorder struct {
	http.ResponseWriter
	statusCode int
	written    int
}

func (rw *statusRecorder) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *statusRecorder) Write(b []byte) (int, error) {
	n, err := rw.ResponseWriter.Write(b)
	rw.written += n
	return n, err
}
