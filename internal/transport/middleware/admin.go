package middleware

import (
	"context"

	"github.com/heartmarshall/servicehub-backend/internal/domain"
	"github.com/heartmarshall/servicehub-backend/pkg/ctxutil"
)

// RequireAdmin returns domain.ErrUnauthorized without a principal and
// domain.ErrForbidden if the principal is not an admin.
// Use in REST handlers, not as HTTP middleware.
func RequireAdmin(ctx context.Context) error {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}
	if ctxutil.UserRoleFromCtx(ctx) != string(domain.RoleAdmin) {
		return domain.ErrForbidden
	}
	return nil
}
