package searchlog

import (
	"context"
	"fmt"

	"github.com/heartmarshall/servicehub-backend/internal/domain"
)

// DefaultHistoryLimit caps history listings when the caller passes no limit.
const DefaultHistoryLimit = 50

// HistoryByUser returns the user's searches, newest first.
func (s *Service) HistoryByUser(ctx context.Context, userID int64, limit int) ([]domain.SearchHistory, error) {
	if userID <= 0 {
		return nil, domain.NewValidationError("userId", "must be positive")
	}
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	items, err := s.history.ListHistoryByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list search history: %w", err)
	}
	return items, nil
}

// MyHistory returns the search history of the authenticated user.
func (s *Service) MyHistory(ctx context.Context, limit int) ([]domain.SearchHistory, error) {
	user, err := s.actors.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	return s.HistoryByUser(ctx, user.ID, limit)
}
