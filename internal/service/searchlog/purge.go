package searchlog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/servicehub-backend/internal/domain"
)

// PurgeOlderThan deletes search history (and, by cascade, its results)
// older than retentionDays. It returns the number of removed history rows.
func (s *Service) PurgeOlderThan(ctx context.Context, retentionDays int) (int64, error) {
	if retentionDays <= 0 {
		return 0, domain.NewValidationError("retention_days", "must be positive")
	}

	threshold := s.now().AddDate(0, 0, -retentionDays)
	n, err := s.history.PurgeHistoryBefore(ctx, threshold)
	if err != nil {
		return 0, fmt.Errorf("purge search history: %w", err)
	}

	s.metrics.HistoryPurged(n)
	s.log.InfoContext(ctx, "search history purged",
		slog.Int64("deleted", n),
		slog.Time("threshold", threshold),
	)
	return n, nil
}
