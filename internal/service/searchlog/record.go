package searchlog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/servicehub-backend/internal/domain"
	"github.com/heartmarshall/servicehub-backend/internal/metrics"
)

// RecordQuery stores the raw query for the current user. It returns nil when
// there is no resolvable user or the write fails; the search goes on either way.
func (s *Service) RecordQuery(ctx context.Context, raw string) *domain.SearchHistory {
	user, err := s.actors.CurrentUser(ctx)
	if err != nil || user == nil {
		s.log.WarnContext(ctx, "search query not recorded: no current user", slog.Any("error", err))
		return nil
	}

	userID := user.ID
	h, err := s.history.CreateHistory(ctx, &domain.SearchHistory{
		SearchQuery: raw,
		UserID:      &userID,
		Timestamp:   s.now(),
	})
	if err != nil {
		s.metrics.SearchSoftFailure(metrics.StageRecordQuery)
		s.log.ErrorContext(ctx, "record search query",
			slog.Int64("user_id", userID),
			slog.String("error", err.Error()),
		)
		return nil
	}
	return h
}

// RecordResults links the active listings of a search to its history entry.
// Nothing is written for a nil history or when no active listing remains.
func (s *Service) RecordResults(ctx context.Context, results []domain.ServiceListing, h *domain.SearchHistory) error {
	if h == nil {
		return nil
	}
	ids := domain.ListingIDs(domain.FilterActive(results))
	if len(ids) == 0 {
		return nil
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.history.CreateResult(txCtx, h.ID, ids); err != nil {
			return fmt.Errorf("create search result: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.DebugContext(ctx, "search results recorded",
		slog.Int64("search_history_id", h.ID),
		slog.Int("count", len(ids)),
	)
	return nil
}
