package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/servicehub-backend/internal/domain"
)

// AddKeyword attaches a keyword to a listing. The stored name is normalized.
func (s *Service) AddKeyword(ctx context.Context, serviceID int64, raw string) (*domain.Keyword, error) {
	if err := validateKeyword(raw); err != nil {
		return nil, err
	}

	var k *domain.Keyword
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var addErr error
		k, addErr = s.keywords.AddKeyword(txCtx, serviceID, raw)
		if addErr != nil {
			return fmt.Errorf("add keyword: %w", addErr)
		}
		return s.record(txCtx, domain.AuditEntityKeyword, k.ID, serviceID, domain.AuditActionCreate, map[string]any{
			"keyword": k.Name,
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "keyword added",
		slog.Int64("service_id", serviceID),
		slog.String("keyword", k.Name),
	)
	return k, nil
}

// UpdateKeyword renames a keyword. The stored name is normalized.
func (s *Service) UpdateKeyword(ctx context.Context, id int64, raw string) (*domain.Keyword, error) {
	if err := validateKeyword(raw); err != nil {
		return nil, err
	}

	var k *domain.Keyword
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var updErr error
		k, updErr = s.keywords.UpdateKeyword(txCtx, id, raw)
		if updErr != nil {
			return fmt.Errorf("update keyword: %w", updErr)
		}
		return s.record(txCtx, domain.AuditEntityKeyword, id, k.ServiceID, domain.AuditActionUpdate, map[string]any{
			"keyword": k.Name,
		})
	})
	if err != nil {
		return nil, err
	}
	return k, nil
}

// DeleteKeyword removes a keyword.
func (s *Service) DeleteKeyword(ctx context.Context, id int64) error {
	return s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		k, err := s.keywords.DeleteKeyword(txCtx, id)
		if err != nil {
			return fmt.Errorf("delete keyword %d: %w", id, err)
		}
		return s.record(txCtx, domain.AuditEntityKeyword, id, k.ServiceID, domain.AuditActionDelete, map[string]any{
			"keyword": k.Name,
		})
	})
}
