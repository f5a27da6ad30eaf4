// Package identity reconciles the actor of a request with a persisted user.
package identity

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/servicehub-backend/internal/auth"
	"github.com/heartmarshall/servicehub-backend/internal/config"
	"github.com/heartmarshall/servicehub-backend/internal/domain"
	"github.com/heartmarshall/servicehub-backend/internal/metrics"
)

type userRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
}

type passwordEncoder interface {
	Encode(password string) (string, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service resolves actors to users, creating guests and the anonymous
// sentinel on demand.
type Service struct {
	log       *slog.Logger
	users     userRepo
	passwords passwordEncoder
	tx        txManager
	metrics   *metrics.Metrics
	cfg       config.IdentityConfig
	emailHint func(token string) string
}

// NewService creates a new identity service.
func NewService(
	log *slog.Logger,
	users userRepo,
	passwords passwordEncoder,
	tx txManager,
	m *metrics.Metrics,
	cfg config.IdentityConfig,
) *Service {
	if cfg.ConflictRetries < 1 {
		cfg.ConflictRetries = 1
	}
	return &Service{
		log:       log.With("service", "identity"),
		users:     users,
		passwords: passwords,
		tx:        tx,
		metrics:   m,
		cfg:       cfg,
		emailHint: auth.EmailHint,
	}
}
