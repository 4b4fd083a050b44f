package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/chefcheck/chefcheck/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"
)

type contextKey string

const UserContextKey contextKey = "user"

// Auth verifies bearer tokens and enforces role requirements. One instance is
// shared by every route so the secret is read exactly once at startup.
type Auth struct {
	Secret string
}

// NewAuth creates the authorization gate
func NewAuth(secret string) *Auth {
	return &Auth{Secret: secret}
}

// Authenticate verifies the JWT in the Authorization header and stores the
// claims in the request context. Any valid session passes.
func (a *Auth) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := a.claimsFromRequest(r)
		if !ok {
			respondError(w, http.StatusUnauthorized, "Invalid or missing token")
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole builds middleware rejecting sessions whose role is not in the
// allowed set. It must run after Authenticate.
func (a *Auth) RequireRole(roles ...string) mux.MiddlewareFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFrom(r.Context())
			if !ok {
				respondError(w, http.StatusUnauthorized, "Invalid or missing token")
				return
			}

			role, _ := claims["role"].(string)
			if !allowed[role] {
				respondError(w, http.StatusForbidden, "Insufficient permissions")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// ValidateToken checks a raw token string (used for websocket upgrades where
// the token arrives as a query parameter instead of a header)
func (a *Auth) ValidateToken(token string) (jwt.MapClaims, error) {
	return utils.ValidateToken(token, a.Secret)
}

func (a *Auth) claimsFromRequest(r *http.Request) (jwt.MapClaims, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, false
	}

	// Bearer token
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, false
	}

	claims, err := utils.ValidateToken(parts[1], a.Secret)
	if err != nil {
		return nil, false
	}
	return claims, true
}

func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	fmt.Fprintf(w, "{\"error\":%q}", message)
}

// ClaimsFrom extracts the authenticated user's claims from a request context
func ClaimsFrom(ctx context.Context) (jwt.MapClaims, bool) {
	claims, ok := ctx.Value(UserContextKey).(jwt.MapClaims)
	return claims, ok
}

// UserIDFrom returns the authenticated user's id, if any
func UserIDFrom(ctx context.Context) string {
	if claims, ok := ClaimsFrom(ctx); ok {
		if id, ok := claims["id"].(string); ok {
			return id
		}
	}
	return ""
}

// UserNameFrom returns the authenticated user's display name, if any
func UserNameFrom(ctx context.Context) string {
	if claims, ok := ClaimsFrom(ctx); ok {
		if name, ok := claims["name"].(string); ok {
			return name
		}
	}
	return ""
}
