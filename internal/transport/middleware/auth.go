package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/servicehub-backend/internal/auth"
	"github.com/heartmarshall/servicehub-backend/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateAccessToken(token string) (auth.Principal, error)
}

// Auth puts the principal of a valid bearer token into the request context.
// Requests without a token, or with one that does not verify, continue
// anonymously: consultation recording still reads the token's email claim
// on its own, and protected routes are guarded by RequireUser.
func Auth(validator tokenValidator, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := BearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			principal, err := validator.ValidateAccessToken(token)
			if err != nil {
				logger.DebugContext(r.Context(), "bearer token rejected", slog.String("error", err.Error()))
				next.ServeHTTP(w, r)
				return
			}

			ctx := ctxutil.WithUserID(r.Context(), principal.UserID)
			ctx = ctxutil.WithUserRole(ctx, principal.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireUser rejects requests that carry no verified principal.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// BearerToken returns the token of an "Authorization: Bearer" header, or "".
func BearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
}
