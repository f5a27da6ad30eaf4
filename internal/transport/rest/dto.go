package rest

import (
	"time"

	"github.com/heartmarshall/servicehub-backend/internal/domain"
)

type keywordResponse struct {
	ID        int64  `json:"id"`
	ServiceID int64  `json:"serviceId"`
	Name      string `json:"name"`
}

type listingResponse struct {
	ID          int64             `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	State       string            `json:"state"`
	Checked     bool              `json:"checked"`
	Keywords    []keywordResponse `json:"keywords"`
	CreatedAt   time.Time         `json:"createdAt"`
}

type historyResponse struct {
	ID          int64     `json:"id"`
	SearchQuery string    `json:"searchQuery"`
	UserID      *int64    `json:"userId"`
	Timestamp   time.Time `json:"timestamp"`
}

type consultationResponse struct {
	ID             int64     `json:"id"`
	ServiceID      int64     `json:"serviceId"`
	UserID         int64     `json:"userId"`
	ConsultingDate time.Time `json:"consultingDate"`
	Checked        bool      `json:"checked"`
}

type auditResponse struct {
	ID         int64          `json:"id"`
	UserID     *int64         `json:"userId"`
	EntityType string         `json:"entityType"`
	EntityID   int64          `json:"entityId"`
	ServiceID  int64          `json:"serviceId"`
	Action     string         `json:"action"`
	Changes    map[string]any `json:"changes"`
	CreatedAt  time.Time      `json:"createdAt"`
}

func toKeywordResponse(k domain.Keyword) keywordResponse {
	return keywordResponse{ID: k.ID, ServiceID: k.ServiceID, Name: k.Name}
}

func toListingResponse(l domain.ServiceListing) listingResponse {
	kws := make([]keywordResponse, len(l.Keywords))
	for i, k := range l.Keywords {
		kws[i] = toKeywordResponse(k)
	}
	return listingResponse{
		ID:          l.ID,
		Name:        l.Name,
		Description: l.Description,
		State:       l.State.String(),
		Checked:     l.Checked,
		Keywords:    kws,
		CreatedAt:   l.CreatedAt,
	}
}

func toListingResponses(ls []domain.ServiceListing) []listingResponse {
	out := make([]listingResponse, len(ls))
	for i, l := range ls {
		out[i] = toListingResponse(l)
	}
	return out
}

func toHistoryResponses(hs []domain.SearchHistory) []historyResponse {
	out := make([]historyResponse, len(hs))
	for i, h := range hs {
		out[i] = historyResponse{ID: h.ID, SearchQuery: h.SearchQuery, UserID: h.UserID, Timestamp: h.Timestamp}
	}
	return out
}

func toConsultationResponse(c domain.Consultation) consultationResponse {
	return consultationResponse{
		ID:             c.ID,
		ServiceID:      c.ServiceID,
		UserID:         c.UserID,
		ConsultingDate: c.ConsultingDate,
		Checked:        c.Checked,
	}
}

func toConsultationResponses(cs []domain.Consultation) []consultationResponse {
	out := make([]consultationResponse, len(cs))
	for i, c := range cs {
		out[i] = toConsultationResponse(c)
	}
	return out
}

func toAuditResponses(rs []domain.AuditRecord) []auditResponse {
	out := make([]auditResponse, len(rs))
	for i, rec := range rs {
		out[i] = auditResponse{
			ID:         rec.ID,
			UserID:     rec.UserID,
			EntityType: string(rec.EntityType),
			EntityID:   rec.EntityID,
			ServiceID:  rec.ServiceID,
			Action:     string(rec.Action),
			Changes:    rec.Changes,
			CreatedAt:  rec.CreatedAt,
		}
	}
	return out
}
