package identity

import (
	"context"
	"fmt"

	"github.com/heartmarshall/servicehub-backend/internal/domain"
	"github.com/heartmarshall/servicehub-backend/pkg/ctxutil"
)

// CurrentUser returns the authenticated user of the request. It never
// creates anything.
func (s *Service) CurrentUser(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get current user: %w", err)
	}
	return u, nil
}
