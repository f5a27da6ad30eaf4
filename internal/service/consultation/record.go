package consultation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/servicehub-backend/internal/domain"
)

// Record stores a consultation of the listing by the resolved actor and
// marks the listing as checked. Both writes share one transaction.
func (s *Service) Record(ctx context.Context, serviceID int64, actor domain.ActorInput) (*domain.Consultation, error) {
	if serviceID <= 0 {
		return nil, domain.NewValidationError("serviceId", "must be positive")
	}

	if _, err := s.listings.GetByID(ctx, serviceID); err != nil {
		return nil, fmt.Errorf("get service %d: %w", serviceID, err)
	}

	user, err := s.actors.Resolve(ctx, actor)
	if err != nil {
		return nil, fmt.Errorf("resolve actor: %w", err)
	}

	var created *domain.Consultation
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.consultations.Create(txCtx, &domain.Consultation{
			ServiceID:      serviceID,
			UserID:         user.ID,
			ConsultingDate: s.now(),
			Checked:        true,
		})
		if createErr != nil {
			return &domain.BusinessRuleError{Op: "create consultation", Err: createErr}
		}

		if err := s.listings.MarkChecked(txCtx, serviceID); err != nil {
			return fmt.Errorf("mark service checked: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.ConsultationRecorded()
	s.log.InfoContext(ctx, "consultation recorded",
		slog.Int64("consultation_id", created.ID),
		slog.Int64("service_id", serviceID),
		slog.Int64("user_id", user.ID),
	)

	return created, nil
}
