// Package searchlog records search queries and the listings they returned.
package searchlog

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/servicehub-backend/internal/domain"
	"github.com/heartmarshall/servicehub-backend/internal/metrics"
)

type historyRepo interface {
	CreateHistory(ctx context.Context, h *domain.SearchHistory) (*domain.SearchHistory, error)
	CreateResult(ctx context.Context, historyID int64, serviceIDs []int64) (*domain.SearchResult, error)
	ListHistoryByUser(ctx context.Context, userID int64, limit int) ([]domain.SearchHistory, error)
	PurgeHistoryBefore(ctx context.Context, threshold time.Time) (int64, error)
}

type actorProvider interface {
	CurrentUser(ctx context.Context) (*domain.User, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements the search log.
type Service struct {
	log     *slog.Logger
	history historyRepo
	actors  actorProvider
	tx      txManager
	metrics *metrics.Metrics
	now     func() time.Time
}

// NewService creates a new search log service.
func NewService(
	log *slog.Logger,
	history historyRepo,
	actors actorProvider,
	tx txManager,
	m *metrics.Metrics,
) *Service {
	return &Service{
		log:     log.With("service", "searchlog"),
		history: history,
		actors:  actors,
		tx:      tx,
		metrics: m,
		now:     time.Now,
	}
}
