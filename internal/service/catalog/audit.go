package catalog

import (
	"context"
	"fmt"

	"github.com/heartmarshall/servicehub-backend/internal/domain"
	"github.com/heartmarshall/servicehub-backend/pkg/ctxutil"
)

// AuditTrail returns the recorded changes of a listing, newest first.
// Records of deleted listings stay readable.
func (s *Service) AuditTrail(ctx context.Context, serviceID int64, limit int) ([]domain.AuditRecord, error) {
	records, err := s.audit.ListByService(ctx, serviceID, limit)
	if err != nil {
		return nil, fmt.Errorf("audit trail of service %d: %w", serviceID, err)
	}
	return records, nil
}

// record appends an audit entry attributed to the user in ctx, if any.
// It must run inside the transaction of the change it describes.
func (s *Service) record(
	ctx context.Context,
	entity domain.AuditEntity,
	entityID, serviceID int64,
	action domain.AuditAction,
	changes map[string]any,
) error {
	rec := domain.AuditRecord{
		EntityType: entity,
		EntityID:   entityID,
		ServiceID:  serviceID,
		Action:     action,
		Changes:    changes,
	}
	if uid, ok := ctxutil.UserIDFromCtx(ctx); ok {
		rec.UserID = &uid
	}
	if _, err := s.audit.Log(ctx, rec); err != nil {
		return fmt.Errorf("audit %s %d: %w", entity, entityID, err)
	}
	return nil
}
