package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/servicehub-backend/internal/domain"
)

// CreateListing creates a listing with its keywords in one transaction.
func (s *Service) CreateListing(ctx context.Context, input CreateListingInput) (*domain.ServiceListing, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	keywords := make([]domain.Keyword, len(input.Keywords))
	for i, k := range input.Keywords {
		keywords[i] = domain.Keyword{Name: strings.TrimSpace(k)}
	}

	var created *domain.ServiceListing
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.listings.Create(txCtx, &domain.ServiceListing{
			Name:        strings.TrimSpace(input.Name),
			Description: strings.TrimSpace(input.Description),
			State:       input.State,
			Keywords:    keywords,
		})
		if createErr != nil {
			return fmt.Errorf("create service: %w", createErr)
		}
		return s.record(txCtx, domain.AuditEntityService, created.ID, created.ID, domain.AuditActionCreate, map[string]any{
			"name":     created.Name,
			"state":    created.State.String(),
			"keywords": keywordNames(created.Keywords),
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "service created",
		slog.Int64("service_id", created.ID),
		slog.String("name", created.Name),
		slog.Int("keywords", len(created.Keywords)),
	)
	return created, nil
}

// GetListing returns a listing with its keywords, whatever its state.
func (s *Service) GetListing(ctx context.Context, id int64) (*domain.ServiceListing, error) {
	l, err := s.listings.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get service %d: %w", id, err)
	}
	return l, nil
}

// UpdateState changes the publication state of a listing.
func (s *Service) UpdateState(ctx context.Context, id int64, state domain.ServiceState) (*domain.ServiceListing, error) {
	if !state.IsValid() {
		return nil, domain.NewValidationError("state", "must be ACTIVE, INACTIVE or SUSPENDED")
	}

	var l *domain.ServiceListing
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var updErr error
		l, updErr = s.listings.UpdateState(txCtx, id, state)
		if updErr != nil {
			return fmt.Errorf("update service state: %w", updErr)
		}
		return s.record(txCtx, domain.AuditEntityService, id, id, domain.AuditActionUpdate, map[string]any{
			"state": state.String(),
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "service state changed",
		slog.Int64("service_id", id),
		slog.String("state", state.String()),
	)
	return l, nil
}

// DeleteListing removes a listing and everything attached to it.
func (s *Service) DeleteListing(ctx context.Context, id int64) error {
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.listings.Delete(txCtx, id); err != nil {
			return fmt.Errorf("delete service %d: %w", id, err)
		}
		return s.record(txCtx, domain.AuditEntityService, id, id, domain.AuditActionDelete, nil)
	})
	if err != nil {
		return err
	}
	s.log.InfoContext(ctx, "service deleted", slog.Int64("service_id", id))
	return nil
}

// Recent returns the newest active listings.
func (s *Service) Recent(ctx context.Context, maxRows int) ([]domain.ServiceListing, error) {
	items, err := s.listings.ListRecent(ctx, domain.ListingFilter{ActiveOnly: true, Limit: s.rows(maxRows)})
	if err != nil {
		return nil, fmt.Errorf("list recent services: %w", err)
	}
	return items, nil
}

// Popular returns the active listings with the most consultations.
func (s *Service) Popular(ctx context.Context, maxRows int) ([]domain.ServiceListing, error) {
	items, err := s.listings.ListPopular(ctx, domain.ListingFilter{ActiveOnly: true, Limit: s.rows(maxRows)})
	if err != nil {
		return nil, fmt.Errorf("list popular services: %w", err)
	}
	return items, nil
}

// rows applies the configured default and ceiling to a requested row count.
func (s *Service) rows(requested int) int {
	if requested <= 0 {
		requested = s.cfg.MaxRows
	}
	if s.cfg.MaxRowsLimit > 0 && requested > s.cfg.MaxRowsLimit {
		requested = s.cfg.MaxRowsLimit
	}
	return requested
}

func keywordNames(kws []domain.Keyword) []string {
	names := make([]string, len(kws))
	for i, k := range kws {
		names[i] = k.Name
	}
	return names
}
