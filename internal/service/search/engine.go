package search

import (
	"context"
	"log/slog"
	"strings"

	"github.com/heartmarshall/servicehub-backend/internal/domain"
	"github.com/heartmarshall/servicehub-backend/internal/metrics"
)

// The engine methods never fail: a store error is logged and answered with
// an empty result.

// SearchByKeywords returns the listings having at least one keyword equal to
// a whitespace-separated token of query, ignoring case.
func (s *Service) SearchByKeywords(ctx context.Context, query string) []domain.ServiceListing {
	tokens := s.queryTokens(query)
	if len(tokens) == 0 {
		return []domain.ServiceListing{}
	}

	found, err := s.listings.SearchByKeywords(ctx, tokens)
	if err != nil {
		return s.softFail(ctx, "keyword search", query, err)
	}
	return found
}

// SearchByName returns the listings whose name contains name, ignoring case.
func (s *Service) SearchByName(ctx context.Context, name string) []domain.ServiceListing {
	if strings.TrimSpace(name) == "" {
		return []domain.ServiceListing{}
	}

	found, err := s.listings.SearchByName(ctx, name)
	if err != nil {
		return s.softFail(ctx, "name search", name, err)
	}
	return found
}

// SearchByPrefixKeywords returns the listings having a keyword that starts
// with any of the given prefixes.
func (s *Service) SearchByPrefixKeywords(ctx context.Context, prefixes []string) []domain.ServiceListing {
	cleaned := make([]string, 0, len(prefixes))
	for _, p := range prefixes {
		if p = strings.ToLower(strings.TrimSpace(p)); p != "" {
			cleaned = append(cleaned, p)
		}
	}
	if len(cleaned) == 0 {
		return []domain.ServiceListing{}
	}

	found, err := s.listings.SearchByKeywordPrefixes(ctx, cleaned)
	if err != nil {
		return s.softFail(ctx, "prefix search", strings.Join(cleaned, ","), err)
	}
	return found
}

func (s *Service) queryTokens(query string) []string {
	tokens := domain.QueryTokens(query)
	if !s.cfg.StemQueries {
		return tokens
	}
	for i, t := range tokens {
		tokens[i] = s.stem(t)
	}
	return tokens
}

func (s *Service) softFail(ctx context.Context, op, input string, err error) []domain.ServiceListing {
	s.metrics.SearchSoftFailure(metrics.StageEngine)
	s.log.ErrorContext(ctx, op+" failed",
		slog.String("input", input),
		slog.String("error", err.Error()),
	)
	return []domain.ServiceListing{}
}
