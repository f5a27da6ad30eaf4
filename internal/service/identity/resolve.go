package identity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/servicehub-backend/internal/domain"
)

// Resolve maps a classified actor to a persisted user.
//
// A token whose email claim names an existing user wins. Otherwise the
// token's fallback is resolved: an id must reference an existing user, a
// complete guest is saved or found by email, and anything else becomes the
// shared anonymous user.
func (s *Service) Resolve(ctx context.Context, in domain.ActorInput) (*domain.User, error) {
	switch a := in.(type) {
	case domain.Authenticated:
		if email := s.emailHint(a.Token); email != "" {
			u, err := s.users.GetByEmail(ctx, email)
			if err == nil {
				s.metrics.ActorResolved(string(domain.ActorKindAuthenticated))
				return u, nil
			}
			if !errors.Is(err, domain.ErrNotFound) {
				return nil, fmt.Errorf("get user by token email: %w", err)
			}
			s.log.DebugContext(ctx, "token email has no user, using fallback", slog.String("email", email))
		}
		return s.Resolve(ctx, a.Fallback)

	case domain.IDOnly:
		u, err := s.users.GetByID(ctx, a.ID)
		if err != nil {
			return nil, fmt.Errorf("get user %d: %w", a.ID, err)
		}
		s.metrics.ActorResolved(string(domain.ActorKindID))
		return u, nil

	case domain.Guest:
		u, err := s.SaveOrFind(ctx, SaveInput{
			Email:     a.Email,
			Firstname: a.Firstname,
			Lastname:  a.Lastname,
			Password:  a.Password,
		})
		if err != nil {
			return nil, err
		}
		s.metrics.ActorResolved(string(domain.ActorKindGuest))
		return u, nil

	default:
		u, err := s.Anonymous(ctx)
		if err != nil {
			return nil, err
		}
		s.metrics.ActorResolved(string(domain.ActorKindAnonymous))
		return u, nil
	}
}

// Anonymous returns the shared anonymous user, creating it on first use.
func (s *Service) Anonymous(ctx context.Context) (*domain.User, error) {
	u, err := s.SaveOrFind(ctx, SaveInput{
		Email:     s.cfg.AnonymousEmail,
		Firstname: s.cfg.AnonymousFirstname,
		Lastname:  s.cfg.AnonymousLastname,
		Role:      domain.RoleStandardUser,
	})
	if err != nil {
		return nil, fmt.Errorf("anonymous user: %w", err)
	}
	return u, nil
}
