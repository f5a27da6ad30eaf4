// Package consultation records and lists consultations of service listings.
package consultation

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/servicehub-backend/internal/domain"
	"github.com/heartmarshall/servicehub-backend/internal/metrics"
)

type consultationRepo interface {
	Create(ctx context.Context, c *domain.Consultation) (*domain.Consultation, error)
	GetByID(ctx context.Context, id int64) (*domain.Consultation, error)
	List(ctx context.Context, f domain.ConsultationFilter) ([]domain.Consultation, error)
	Delete(ctx context.Context, id int64) error
}

type listingRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.ServiceListing, error)
	MarkChecked(ctx context.Context, id int64) error
}

type actorResolver interface {
	Resolve(ctx context.Context, in domain.ActorInput) (*domain.User, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements consultation tracking.
type Service struct {
	log           *slog.Logger
	consultations consultationRepo
	listings      listingRepo
	actors        actorResolver
	tx            txManager
	metrics       *metrics.Metrics
	now           func() time.Time
}

// NewService creates a new consultation service.
func NewService(
	log *slog.Logger,
	consultations consultationRepo,
	listings listingRepo,
	actors actorResolver,
	tx txManager,
	m *metrics.Metrics,
) *Service {
	return &Service{
		log:           log.With("service", "consultation"),
		consultations: consultations,
		listings:      listings,
		actors:        actors,
		tx:            tx,
		metrics:       m,
		now:           time.Now,
	}
}
