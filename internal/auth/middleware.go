package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/mateusvb/auth-api/internal/httputil"
)

// ContextKey is a type for context keys to avoid collisions
type ContextKey string

const (
	ClaimsContextKey ContextKey = "token_claims"
)

// Middleware handles authentication for protected routes
type Middleware struct {
	tokenService TokenService
}

func NewMiddleware(tokenService TokenService) *Middleware {
	return &Middleware{tokenService: tokenService}
}

// RequireAuth gates a route behind a bearer-token check. A missing token
// is denied access (401); a present-but-invalid token is a distinct
// failure (400). Valid claims are attached to the request context.
func (m *Middleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var token string

		// Split on whitespace and take the second segment. Anything in
		// that position counts as a presented token; the verifier, not
		// the header shape, decides whether it is valid.
		authHeader := r.Header.Get("Authorization")
		if parts := strings.Split(authHeader, " "); len(parts) >= 2 {
			token = parts[1]
		}

		if token == "" {
			httputil.RespondMessage(w, "Access denied!", http.StatusUnauthorized)
			return
		}

		claims, err := m.tokenService.VerifyToken(token)
		if err != nil {
			httputil.RespondMessage(w, "Invalid token!", http.StatusBadRequest)
			return
		}

		ctx := context.WithValue(r.Context(), ClaimsContextKey, claims)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetClaimsFromContext extracts the verified token claims from the request
// context. The second return is false outside RequireAuth-guarded routes.
func GetClaimsFromContext(ctx context.Context) (*TokenClaims, bool) {
	claims, ok := ctx.Value(ClaimsContextKey).(*TokenClaims)
	return claims, ok
}
