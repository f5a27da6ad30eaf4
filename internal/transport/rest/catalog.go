package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/servicehub-backend/internal/domain"
	"github.com/heartmarshall/servicehub-backend/internal/service/catalog"
	"github.com/heartmarshall/servicehub-backend/internal/transport/dataloader"
	"github.com/heartmarshall/servicehub-backend/internal/transport/middleware"
)

type catalogService interface {
	CreateListing(ctx context.Context, input catalog.CreateListingInput) (*domain.ServiceListing, error)
	GetListing(ctx context.Context, id int64) (*domain.ServiceListing, error)
	UpdateState(ctx context.Context, id int64, state domain.ServiceState) (*domain.ServiceListing, error)
	DeleteListing(ctx context.Context, id int64) error
	AddKeyword(ctx context.Context, serviceID int64, raw string) (*domain.Keyword, error)
	UpdateKeyword(ctx context.Context, id int64, raw string) (*domain.Keyword, error)
	DeleteKeyword(ctx context.Context, id int64) error
	Recent(ctx context.Context, maxRows int) ([]domain.ServiceListing, error)
	Popular(ctx context.Context, maxRows int) ([]domain.ServiceListing, error)
	AuditTrail(ctx context.Context, serviceID int64, limit int) ([]domain.AuditRecord, error)
}

// CatalogHandler serves the listing and keyword endpoints.
type CatalogHandler struct {
	svc            catalogService
	log            *slog.Logger
	attachKeywords func(ctx context.Context, listings []domain.ServiceListing) error
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(svc catalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		svc:            svc,
		log:            logger.With("handler", "catalog"),
		attachKeywords: dataloader.AttachKeywords,
	}
}

type createListingRequest struct {
	Name        string   `json:"name"        validate:"required,max=200"`
	Description string   `json:"description" validate:"max=2000"`
	State       string   `json:"state"       validate:"omitempty,oneof=ACTIVE INACTIVE SUSPENDED"`
	Keywords    []string `json:"keywords"    validate:"max=50,dive,required,max=100"`
}

type updateStateRequest struct {
	State string `json:"state" validate:"required,oneof=ACTIVE INACTIVE SUSPENDED"`
}

type keywordRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// Create handles POST /api/services. Admin only.
func (h *CatalogHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req createListingRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, bodyRequired(err))
		return
	}

	l, err := h.svc.CreateListing(r.Context(), catalog.CreateListingInput{
		Name:        req.Name,
		Description: req.Description,
		State:       domain.ServiceState(req.State),
		Keywords:    req.Keywords,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toListingResponse(*l))
}

// Get handles GET /api/services/{id}.
func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	l, err := h.svc.GetListing(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toListingResponse(*l))
}

// UpdateState handles PATCH /api/services/{id}/state. Admin only.
func (h *CatalogHandler) UpdateState(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req updateStateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, bodyRequired(err))
		return
	}

	l, err := h.svc.UpdateState(r.Context(), id, domain.ServiceState(req.State))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toListingResponse(*l))
}

// Delete handles DELETE /api/services/{id}. Admin only.
func (h *CatalogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.DeleteListing(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Audit handles GET /api/services/{id}/audit?limit=. Admin only.
func (h *CatalogHandler) Audit(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	records, err := h.svc.AuditTrail(r.Context(), id, limit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAuditResponses(records))
}

// AddKeyword handles POST /api/services/{id}/keywords. Admin only.
func (h *CatalogHandler) AddKeyword(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req keywordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, bodyRequired(err))
		return
	}

	k, err := h.svc.AddKeyword(r.Context(), id, req.Name)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toKeywordResponse(*k))
}

// UpdateKeyword handles PUT /api/keywords/{id}. Admin only.
func (h *CatalogHandler) UpdateKeyword(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req keywordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, bodyRequired(err))
		return
	}

	k, err := h.svc.UpdateKeyword(r.Context(), id, req.Name)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toKeywordResponse(*k))
}

// DeleteKeyword handles DELETE /api/keywords/{id}. Admin only.
func (h *CatalogHandler) DeleteKeyword(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.DeleteKeyword(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Recent handles GET /api/services/recent with an optional Max-Rows header.
func (h *CatalogHandler) Recent(w http.ResponseWriter, r *http.Request) {
	h.listRows(w, r, h.svc.Recent)
}

// Popular handles GET /api/services/popular with an optional Max-Rows header.
func (h *CatalogHandler) Popular(w http.ResponseWriter, r *http.Request) {
	h.listRows(w, r, h.svc.Popular)
}

func (h *CatalogHandler) listRows(
	w http.ResponseWriter,
	r *http.Request,
	fetch func(ctx context.Context, maxRows int) ([]domain.ServiceListing, error),
) {
	rows, err := maxRows(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	items, err := fetch(r.Context(), rows)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := h.attachKeywords(r.Context(), items); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toListingResponses(items))
}

// bodyRequired turns a missing body into a validation error.
func bodyRequired(err error) error {
	if err == errEmptyBody {
		return domain.NewValidationError("body", "required")
	}
	return err
}
