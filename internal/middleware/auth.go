package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"app/internal/token"

	"github.com/rs/zerolog"
)

// Injected key type to avoid context collisions
type contextKey string

const AdminContextKey = contextKey("admin")

// unauthorized writes a 401 in the same {"detail": ...} envelope the API
// handlers use.
func unauthorized(w http.ResponseWriter, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"detail": detail})
}

// AuthMiddleware guards admin-only endpoints with a bearer session token.
func AuthMiddleware(jwtSecret string, logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				unauthorized(w, "Not authenticated")
				return
			}
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				unauthorized(w, "Invalid authorization header")
				return
			}
			claims, err := token.Validate(parts[1], jwtSecret)
			if err != nil {
				logger.Error().Msgf("Invalid token: %+v", err)
				unauthorized(w, "Invalid token")
				return
			}
			// Embed admin username into request context
			ctx := context.WithValue(r.Context(), AdminContextKey, claims.Username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
