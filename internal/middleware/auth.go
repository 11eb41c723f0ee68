// internal/middleware/auth.go
package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/joao-vitor-prudente/personia/internal/auth"
	"github.com/joao-vitor-prudente/personia/internal/domain"
)

type identityContextKey string

const identityKey identityContextKey = "personia_identity"

// AuthMiddleware creates a middleware that resolves the caller's identity
// from the Authorization header. The identity is re-derived on every
// request; nothing is cached between calls.
func AuthMiddleware(parser *auth.IdentityParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				respondWithError(w, http.StatusUnauthorized, domain.ErrUnauthenticated.Error())
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				respondWithError(w, http.StatusUnauthorized, "Invalid authorization header")
				return
			}

			identity, err := parser.Parse(parts[1])
			if err != nil {
				if errors.Is(err, domain.ErrMalformedIdentity) {
					respondWithError(w, http.StatusForbidden, err.Error())
					return
				}
				respondWithError(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFrom returns the resolved identity placed on the context by
// AuthMiddleware.
func IdentityFrom(ctx context.Context) (*auth.Identity, error) {
	identity, ok := ctx.Value(identityKey).(*auth.Identity)
	if !ok || identity == nil {
		return nil, domain.ErrUnauthenticated
	}
	return identity, nil
}

// WithIdentity places an identity on the context. Used by tests.
func WithIdentity(ctx context.Context, identity *auth.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// respondWithError sends a JSON error response
func respondWithError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
