package identity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/servicehub-backend/internal/domain"
)

// SaveInput describes a user to be found or created.
type SaveInput struct {
	ID        int64
	Email     string
	Firstname string
	Lastname  string
	Password  string
	Role      domain.Role
}

// SaveOrFind returns the user with the given id, else the user with the
// given email, else a newly created one. A concurrent insert of the same
// email is retried up to cfg.ConflictRetries times after the first attempt,
// and the retry finds the winner's row.
func (s *Service) SaveOrFind(ctx context.Context, in SaveInput) (*domain.User, error) {
	in.Email = domain.NormalizeEmail(in.Email)
	in.Firstname = strings.TrimSpace(in.Firstname)
	in.Lastname = strings.TrimSpace(in.Lastname)

	var lastErr error
	for attempt := 1; attempt <= s.cfg.ConflictRetries+1; attempt++ {
		var saved *domain.User
		err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
			var findErr error
			saved, findErr = s.find(txCtx, in)
			if findErr != nil || saved != nil {
				return findErr
			}

			var createErr error
			saved, createErr = s.create(txCtx, in)
			return createErr
		})
		if err == nil {
			return saved, nil
		}
		if !errors.Is(err, domain.ErrAlreadyExists) {
			return nil, err
		}

		lastErr = err
		s.metrics.ConflictRetry()
		s.log.WarnContext(ctx, "user email conflict, retrying",
			slog.String("email", in.Email),
			slog.Int("attempt", attempt),
		)
	}

	return nil, fmt.Errorf("save user %s: %w", in.Email, lastErr)
}

// find returns (nil, nil) when no user matches.
func (s *Service) find(ctx context.Context, in SaveInput) (*domain.User, error) {
	if in.ID > 0 {
		u, err := s.users.GetByID(ctx, in.ID)
		if err == nil {
			return u, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("get user %d: %w", in.ID, err)
		}
	}

	if in.Email == "" {
		return nil, nil
	}
	u, err := s.users.GetByEmail(ctx, in.Email)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return nil, nil
}

func (s *Service) create(ctx context.Context, in SaveInput) (*domain.User, error) {
	if in.Email == "" {
		return nil, domain.NewValidationError("email", "required")
	}

	hash, err := s.passwords.Encode(in.Password)
	if err != nil {
		return nil, fmt.Errorf("encode password: %w", err)
	}

	role := in.Role
	if role == "" {
		role = domain.RoleStandardUser
	}

	u, err := s.users.Create(ctx, &domain.User{
		Email:        in.Email,
		Firstname:    in.Firstname,
		Lastname:     in.Lastname,
		PasswordHash: hash,
		Role:         role,
	})
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.InfoContext(ctx, "user created",
		slog.Int64("user_id", u.ID),
		slog.String("email", u.Email),
	)
	return u, nil
}
