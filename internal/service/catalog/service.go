// Package catalog manages service listings and their keywords.
package catalog

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/servicehub-backend/internal/config"
	"github.com/heartmarshall/servicehub-backend/internal/domain"
)

type listingRepo interface {
	Create(ctx context.Context, l *domain.ServiceListing) (*domain.ServiceListing, error)
	GetByID(ctx context.Context, id int64) (*domain.ServiceListing, error)
	UpdateState(ctx context.Context, id int64, state domain.ServiceState) (*domain.ServiceListing, error)
	Delete(ctx context.Context, id int64) error
	ListRecent(ctx context.Context, f domain.ListingFilter) ([]domain.ServiceListing, error)
	ListPopular(ctx context.Context, f domain.ListingFilter) ([]domain.ServiceListing, error)
}

type keywordRepo interface {
	AddKeyword(ctx context.Context, serviceID int64, raw string) (*domain.Keyword, error)
	UpdateKeyword(ctx context.Context, id int64, raw string) (*domain.Keyword, error)
	DeleteKeyword(ctx context.Context, id int64) (*domain.Keyword, error)
}

type auditLog interface {
	Log(ctx context.Context, rec domain.AuditRecord) (*domain.AuditRecord, error)
	ListByService(ctx context.Context, serviceID int64, limit int) ([]domain.AuditRecord, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements catalog management.
type Service struct {
	log      *slog.Logger
	listings listingRepo
	keywords keywordRepo
	audit    auditLog
	tx       txManager
	cfg      config.SearchConfig
}

// NewService creates a new catalog service.
func NewService(
	log *slog.Logger,
	listings listingRepo,
	keywords keywordRepo,
	audit auditLog,
	tx txManager,
	cfg config.SearchConfig,
) *Service {
	return &Service{
		log:      log.With("service", "catalog"),
		listings: listings,
		keywords: keywords,
		audit:    audit,
		tx:       tx,
		cfg:      cfg,
	}
}
