package consultation

import (
	"context"
	"fmt"

	"github.com/heartmarshall/servicehub-backend/internal/domain"
)

// Get returns a consultation by id.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Consultation, error) {
	c, err := s.consultations.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get consultation %d: %w", id, err)
	}
	return c, nil
}

// List returns the most recent consultations.
func (s *Service) List(ctx context.Context, limit int) ([]domain.Consultation, error) {
	return s.list(ctx, domain.ConsultationFilter{Limit: limit})
}

// ByUser returns the consultations of a user. An unknown user yields an
// empty list.
func (s *Service) ByUser(ctx context.Context, userID int64, limit int) ([]domain.Consultation, error) {
	if userID <= 0 {
		return nil, domain.NewValidationError("userId", "must be positive")
	}
	return s.list(ctx, domain.ConsultationFilter{UserID: userID, Limit: limit})
}

// ByService returns the consultations of a listing.
func (s *Service) ByService(ctx context.Context, serviceID int64, limit int) ([]domain.Consultation, error) {
	if serviceID <= 0 {
		return nil, domain.NewValidationError("serviceId", "must be positive")
	}
	return s.list(ctx, domain.ConsultationFilter{ServiceID: serviceID, Limit: limit})
}

func (s *Service) list(ctx context.Context, f domain.ConsultationFilter) ([]domain.Consultation, error) {
	items, err := s.consultations.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list consultations: %w", err)
	}
	return items, nil
}

// Delete removes a consultation.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.consultations.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete consultation %d: %w", id, err)
	}
	s.log.InfoContext(ctx, "consultation deleted", "consultation_id", id)
	return nil
}
