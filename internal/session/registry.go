package session

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/adielbeauty/storefront/internal/cart/storage"
	identitydomain "github.com/adielbeauty/storefront/internal/identity/domain"
	"github.com/adielbeauty/storefront/pkg/auth"
	"github.com/adielbeauty/storefront/pkg/httpx"
	"github.com/adielbeauty/storefront/pkg/logger"
)

// HeaderName carries the browser session id in both directions
const HeaderName = httpx.SessionHeader

var activeSessions = promauto.NewGauge(
	prometheus.GaugeOpts{
		Name: "storefront_active_sessions",
		Help: "Number of browser sessions held in memory",
	},
)

type contextKey struct{}

// WithSession returns a context carrying s
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext returns the session placed by the registry middleware
func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(contextKey{}).(*Session)
	return s, ok && s != nil
}

// FromRequest returns the request's session, answering 500 when the registry
// middleware did not run
func FromRequest(w http.ResponseWriter, r *http.Request) (*Session, bool) {
	s, ok := FromContext(r.Context())
	if !ok {
		logger.Error(r.Context()).Msg("Request has no session")
		httpx.RespondError(w, http.StatusInternalServerError, "Session unavailable")
	}
	return s, ok
}

// ProfileLoader restores a signed-in identity from its user id
type ProfileLoader interface {
	Handle(ctx context.Context, userID uint) *identitydomain.Identity
}

// Registry holds a bounded set of live sessions. An evicted session loses only
// transient state; its cart and wishlist come back from storage.
type Registry struct {
	mu       sync.Mutex
	cache    *lru.Cache
	deps     Deps
	profiles ProfileLoader
}

// NewRegistry creates a registry holding at most size sessions. profiles may be nil.
func NewRegistry(size int, deps Deps, profiles ProfileLoader) (*Registry, error) {
	cache, err := lru.NewWithEvict(size, func(key, value interface{}) {
		activeSessions.Dec()
		if s, ok := value.(*Session); ok {
			_ = s.Checkout.Back()
			logger.Logger.Debug().Str("session_id", s.ID).Msg("Session evicted")
		}
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create session cache: %w", err)
	}

	return &Registry{
		cache:    cache,
		deps:     deps,
		profiles: profiles,
	}, nil
}

// Get returns the live session for id, creating it when absent
func (r *Registry) Get(ctx context.Context, id string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	if v, ok := r.cache.Get(id); ok {
		return v.(*Session)
	}

	s := New(ctx, id, r.deps)
	r.cache.Add(id, s)
	activeSessions.Inc()

	logger.Debug(ctx).Str("session_id", id).Msg("Session created")
	return s
}

// Len returns the number of live sessions
func (r *Registry) Len() int {
	return r.cache.Len()
}

// Middleware attaches the browser's session to the request context. A missing
// or malformed id is replaced by a fresh one, echoed in the response header.
// Reads under a fresh id get a throwaway session so anonymous traffic never
// pushes live sessions out of the registry.
func (r *Registry) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		id := req.Header.Get(HeaderName)
		_, err := uuid.Parse(id)
		supplied := err == nil
		if !supplied {
			id = uuid.New().String()
		}
		w.Header().Set(HeaderName, id)

		ctx := req.Context()

		// Cache only sessions a browser has claimed or is about to change
		var s *Session
		if supplied || !isRead(req.Method) {
			s = r.Get(ctx, id)
		} else {
			s = r.transient(ctx, id)
		}
		r.restoreIdentity(req, s)

		next.ServeHTTP(w, req.WithContext(WithSession(ctx, s)))
	})
}

// transient builds an unregistered session over throwaway storage
func (r *Registry) transient(ctx context.Context, id string) *Session {
	deps := r.deps
	deps.Storage = func(string) storage.LocalStorage {
		return storage.NewMemoryStorage()
	}
	return New(ctx, id, deps)
}

func isRead(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}

// restoreIdentity signs the session in from a valid bearer token when the
// session does not already hold that user
func (r *Registry) restoreIdentity(req *http.Request, s *Session) {
	token, ok := httpx.BearerToken(req)
	if !ok {
		return
	}
	claims, err := auth.ValidateToken(token)
	if err != nil {
		return
	}
	if current := s.Identity.Current(); current != nil && current.UserID == claims.UserID {
		return
	}

	// Tokens issued before the last sign-out stay signed out
	if out := s.Identity.SignedOutAt(); !out.IsZero() {
		if claims.IssuedAt == nil || !claims.IssuedAt.After(out) {
			return
		}
	}

	var who *identitydomain.Identity
	if r.profiles != nil {
		who = r.profiles.Handle(req.Context(), claims.UserID)
	}
	if who == nil {
		who = &identitydomain.Identity{
			UserID: claims.UserID,
			Email:  claims.Email,
			Name:   claims.Name,
		}
	}
	s.Identity.Set(*who)
}
