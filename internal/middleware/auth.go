package middleware

import (
	"context"
	"net/http"

	"tajobs/internal/auth"
	"tajobs/internal/utils"
)

type contextKey string

const identityKey contextKey = "identity"

// Identity is the authenticated caller, reconstructed from the session
// token on every request. It is attached to the context as one immutable
// value rather than loose fields.
type Identity struct {
	UserID int64
	Email  string
	Role   string
}

// IdentityFrom returns the caller identity set by RequireAuth.
func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}

// WithIdentity is used by tests to seed a request context.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// RequireAuth gates a route on a valid session cookie. It never mutates
// stored state; it only verifies and attaches the identity.
func RequireAuth(jwtSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, err := r.Cookie(auth.CookieName)
			if err != nil || c.Value == "" {
				utils.Fail(w, http.StatusUnauthorized, "No token provided")
				return
			}
			claims, err := auth.ParseToken(c.Value, jwtSecret)
			if err != nil {
				utils.Fail(w, http.StatusUnauthorized, "Invalid token")
				return
			}
			id := Identity{UserID: claims.UserID, Email: claims.Email, Role: claims.Role}
			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
		})
	}
}
