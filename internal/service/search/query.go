package search

import (
	"context"
	"fmt"

	"github.com/heartmarshall/servicehub-backend/internal/domain"
	"github.com/heartmarshall/servicehub-backend/internal/metrics"
)

// Query runs a keyword search for the current request: the raw query is
// logged, the engine runs, and the active listings found are linked to the
// log entry. A failure to link the results is returned to the caller.
func (s *Service) Query(ctx context.Context, query string) ([]domain.ServiceListing, error) {
	h := s.history.RecordQuery(ctx, query)
	found := domain.FilterActive(s.SearchByKeywords(ctx, query))
	s.metrics.ObserveSearch(metrics.SearchKeyword, len(found))

	if err := s.history.RecordResults(ctx, found, h); err != nil {
		return nil, fmt.Errorf("record search results: %w", err)
	}
	return found, nil
}

// QueryByName is Query for the name search. The log entry is the name with
// the "name:" prefix.
func (s *Service) QueryByName(ctx context.Context, name string) ([]domain.ServiceListing, error) {
	h := s.history.RecordQuery(ctx, domain.NameQueryPrefix+name)
	found := domain.FilterActive(s.SearchByName(ctx, name))
	s.metrics.ObserveSearch(metrics.SearchName, len(found))

	if err := s.history.RecordResults(ctx, found, h); err != nil {
		return nil, fmt.Errorf("record search results: %w", err)
	}
	return found, nil
}

// QueryByPrefixes returns the active listings matching any keyword prefix.
// Prefix searches are not logged.
func (s *Service) QueryByPrefixes(ctx context.Context, prefixes []string) ([]domain.ServiceListing, error) {
	if len(prefixes) == 0 {
		return nil, domain.NewValidationError("k", "at least one keyword is required")
	}
	if s.cfg.MaxPrefixKeywords > 0 && len(prefixes) > s.cfg.MaxPrefixKeywords {
		return nil, domain.NewValidationError("k", fmt.Sprintf("at most %d keywords", s.cfg.MaxPrefixKeywords))
	}

	found := domain.FilterActive(s.SearchByPrefixKeywords(ctx, prefixes))
	s.metrics.ObserveSearch(metrics.SearchPrefix, len(found))
	return found, nil
}
