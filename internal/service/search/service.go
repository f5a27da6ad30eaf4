// Package search finds service listings by keyword, name, or keyword prefix
// and records keyword and name searches in the search log.
package search

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/servicehub-backend/internal/config"
	"github.com/heartmarshall/servicehub-backend/internal/domain"
	"github.com/heartmarshall/servicehub-backend/internal/keyword"
	"github.com/heartmarshall/servicehub-backend/internal/metrics"
)

type listingRepo interface {
	SearchByKeywords(ctx context.Context, tokens []string) ([]domain.ServiceListing, error)
	SearchByName(ctx context.Context, name string) ([]domain.ServiceListing, error)
	SearchByKeywordPrefixes(ctx context.Context, prefixes []string) ([]domain.ServiceListing, error)
}

type searchLog interface {
	RecordQuery(ctx context.Context, raw string) *domain.SearchHistory
	RecordResults(ctx context.Context, results []domain.ServiceListing, h *domain.SearchHistory) error
}

// Service runs searches against the listing store.
type Service struct {
	log      *slog.Logger
	listings listingRepo
	history  searchLog
	metrics  *metrics.Metrics
	cfg      config.SearchConfig
	stem     func(string) string
}

// NewService creates a new search service.
func NewService(
	log *slog.Logger,
	listings listingRepo,
	history searchLog,
	m *metrics.Metrics,
	cfg config.SearchConfig,
) *Service {
	return &Service{
		log:      log.With("service", "search"),
		listings: listings,
		history:  history,
		metrics:  m,
		cfg:      cfg,
		stem:     keyword.Normalize,
	}
}
