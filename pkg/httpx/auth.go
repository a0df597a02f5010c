package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/adielbeauty/storefront/pkg/auth"
	"github.com/adielbeauty/storefront/pkg/logger"
)

type contextKey string

const claimsKey contextKey = "claims"

// WithClaims returns a context carrying the authenticated claims
func WithClaims(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// ClaimsFromContext returns the claims placed by the auth middleware, if any
func ClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*auth.Claims)
	return claims, ok && claims != nil
}

// BearerToken extracts the token from an "Authorization: Bearer" header
func BearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// AuthMiddleware rejects requests without a valid bearer token
func AuthMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			logger.Warn(r.Context()).Msg("Missing authorization header")
			RespondError(w, http.StatusUnauthorized, "Please sign in to continue")
			return
		}

		token, ok := BearerToken(r)
		if !ok {
			logger.Warn(r.Context()).Msg("Invalid authorization header format")
			RespondError(w, http.StatusUnauthorized, "Invalid authorization header format")
			return
		}

		claims, err := auth.ValidateToken(token)
		if err != nil {
			logger.Warn(r.Context()).Err(err).Msg("Invalid token")
			RespondError(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		logger.Debug(r.Context()).
			Uint("user_id", claims.UserID).
			Str("email", claims.Email).
			Msg("User authenticated")

		next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
	}
}

// OptionalAuthMiddleware attaches claims when a valid token is present
func OptionalAuthMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if token, ok := BearerToken(r); ok {
			if claims, err := auth.ValidateToken(token); err == nil {
				r = r.WithContext(WithClaims(r.Context(), claims))
			}
		}
		next.ServeHTTP(w, r)
	}
}
