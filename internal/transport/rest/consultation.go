package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/servicehub-backend/internal/domain"
	"github.com/heartmarshall/servicehub-backend/internal/transport/middleware"
)

type consultationService interface {
	Record(ctx context.Context, serviceID int64, actor domain.ActorInput) (*domain.Consultation, error)
	Get(ctx context.Context, id int64) (*domain.Consultation, error)
	List(ctx context.Context, limit int) ([]domain.Consultation, error)
	ByUser(ctx context.Context, userID int64, limit int) ([]domain.Consultation, error)
	ByService(ctx context.Context, serviceID int64, limit int) ([]domain.Consultation, error)
	Delete(ctx context.Context, id int64) error
}

// ConsultationHandler serves the consultation endpoints.
type ConsultationHandler struct {
	svc consultationService
	log *slog.Logger
}

// NewConsultationHandler creates a ConsultationHandler.
func NewConsultationHandler(svc consultationService, logger *slog.Logger) *ConsultationHandler {
	return &ConsultationHandler{svc: svc, log: logger.With("handler", "consultation")}
}

// actorRequest is the optional body of a consultation. Every field may be
// omitted.
type actorRequest struct {
	ID        int64  `json:"id"        validate:"gte=0"`
	Email     string `json:"email"     validate:"omitempty,email,max=254"`
	Firstname string `json:"firstname" validate:"max=100"`
	Lastname  string `json:"lastname"  validate:"max=100"`
	Password  string `json:"password"  validate:"max=72"`
}

// Record handles POST /api/consultations/{serviceId}. The actor is taken
// from the bearer token, falling back to the optional JSON body.
func (h *ConsultationHandler) Record(w http.ResponseWriter, r *http.Request) {
	serviceID, err := pathID(r, "serviceId")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var descriptor *domain.ActorDescriptor
	var req actorRequest
	switch err := decodeJSON(w, r, &req); {
	case errors.Is(err, errEmptyBody):
	case err != nil:
		handleError(h.log, w, r, err)
		return
	default:
		descriptor = &domain.ActorDescriptor{
			ID:        req.ID,
			Email:     req.Email,
			Firstname: req.Firstname,
			Lastname:  req.Lastname,
			Password:  req.Password,
		}
	}

	actor := domain.ClassifyActor(middleware.BearerToken(r), descriptor)
	c, err := h.svc.Record(r.Context(), serviceID, actor)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toConsultationResponse(*c))
}

// Get handles GET /api/consultations/{id}.
func (h *ConsultationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toConsultationResponse(*c))
}

// List handles GET /api/consultations?limit=.
func (h *ConsultationHandler) List(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, func(ctx context.Context, limit int) ([]domain.Consultation, error) {
		return h.svc.List(ctx, limit)
	})
}

// ByUser handles GET /api/consultations/user/{userId}.
func (h *ConsultationHandler) ByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	h.list(w, r, func(ctx context.Context, limit int) ([]domain.Consultation, error) {
		return h.svc.ByUser(ctx, userID, limit)
	})
}

// ByService handles GET /api/consultations/service/{serviceId}.
func (h *ConsultationHandler) ByService(w http.ResponseWriter, r *http.Request) {
	serviceID, err := pathID(r, "serviceId")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	h.list(w, r, func(ctx context.Context, limit int) ([]domain.Consultation, error) {
		return h.svc.ByService(ctx, serviceID, limit)
	})
}

func (h *ConsultationHandler) list(
	w http.ResponseWriter,
	r *http.Request,
	fetch func(ctx context.Context, limit int) ([]domain.Consultation, error),
) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	items, err := fetch(r.Context(), limit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toConsultationResponses(items))
}

// Delete handles DELETE /api/consultations/{id}. Admin only.
func (h *ConsultationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
