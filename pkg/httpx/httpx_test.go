package httpx

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adielbeauty/storefront/pkg/auth"
	"github.com/adielbeauty/storefront/pkg/logger"
)

func TestAuthMiddleware(t *testing.T) {
	token, err := auth.GenerateToken(7, "jane@example.com", "Jane")
	require.NoError(t, err)

	var seen *auth.Claims
	h := AuthMiddleware(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = ClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"bad token", "Bearer nope", http.StatusUnauthorized},
		{"valid token", "Bearer " + token, http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h(rec, req)
			assert.Equal(t, tt.status, rec.Code)
		})
	}

	require.NotNil(t, seen)
	assert.Equal(t, uint(7), seen.UserID)
}

func TestOptionalAuthMiddlewarePassesAnonymous(t *testing.T) {
	called := false
	h := OptionalAuthMiddleware(func(w http.ResponseWriter, r *http.Request) {
		_, ok := ClaimsFromContext(r.Context())
		assert.False(t, ok)
		called = true
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	h(httptest.NewRecorder(), req)
	assert.True(t, called)
}

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondError(rec, http.StatusBadRequest, "bad input")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "bad input", resp.Error)
}

func TestMetricsWrapCountsStatus(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics("test_service", reg)

	h := m.Wrap("/teapot", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	h(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/teapot", nil))

	families, err := reg.Gather()
	require.NoError(t, err)

	var count float64
	for _, mf := range families {
		if mf.GetName() != "test_service_requests_total" {
			continue
		}
		for _, metric := range mf.GetMetric() {
			for _, label := range metric.GetLabel() {
				if label.GetName() == "status" && label.GetValue() == "418" {
					count += metric.GetCounter().GetValue()
				}
			}
		}
	}
	assert.Equal(t, float64(1), count)
}

func TestNilMetricsPassThrough(t *testing.T) {
	var m *Metrics
	called := false
	m.Wrap("/x", func(w http.ResponseWriter, r *http.Request) { called = true })(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.True(t, called)
}

func TestLoggingMiddlewareRecordsCompletion(t *testing.T) {
	var buf bytes.Buffer
	previous := logger.Logger
	logger.Logger = zerolog.New(&buf)
	t.Cleanup(func() { logger.Logger = previous })

	h := LoggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(SessionHeader, "3f1c0a52-0a61-4d7b-9e55-8c3d4a1b2c3d")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("missing"))
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/products/nope", nil))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &line))
	assert.Equal(t, "warn", line["level"])
	assert.Equal(t, "3f1c0a52-0a61-4d7b-9e55-8c3d4a1b2c3d", line["session_id"])
	assert.Equal(t, float64(http.StatusNotFound), line["status"])
	assert.Equal(t, float64(len("missing")), line["bytes"])
	assert.Equal(t, "HTTP request completed", line["message"])
}

func TestRouteSpanName(t *testing.T) {
	var name string
	router := mux.NewRouter()
	router.HandleFunc("/api/products/{id}", func(w http.ResponseWriter, r *http.Request) {
		name = routeSpanName("http-request", r)
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/products/avon-lipsticks", nil))
	assert.Equal(t, "GET /api/products/{id}", name)

	assert.Equal(t, "http-request", routeSpanName("http-request", httptest.NewRequest(http.MethodGet, "/", nil)))
}
