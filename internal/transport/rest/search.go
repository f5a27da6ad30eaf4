package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/servicehub-backend/internal/domain"
	"github.com/heartmarshall/servicehub-backend/internal/transport/dataloader"
	"github.com/heartmarshall/servicehub-backend/pkg/ctxutil"
)

type searchService interface {
	Query(ctx context.Context, query string) ([]domain.ServiceListing, error)
	QueryByName(ctx context.Context, name string) ([]domain.ServiceListing, error)
	QueryByPrefixes(ctx context.Context, prefixes []string) ([]domain.ServiceListing, error)
}

type historyService interface {
	HistoryByUser(ctx context.Context, userID int64, limit int) ([]domain.SearchHistory, error)
	MyHistory(ctx context.Context, limit int) ([]domain.SearchHistory, error)
}

// SearchHandler serves the search and search history endpoints.
type SearchHandler struct {
	search         searchService
	history        historyService
	log            *slog.Logger
	attachKeywords func(ctx context.Context, listings []domain.ServiceListing) error
}

// NewSearchHandler creates a SearchHandler.
func NewSearchHandler(search searchService, history historyService, logger *slog.Logger) *SearchHandler {
	return &SearchHandler{
		search:         search,
		history:        history,
		log:            logger.With("handler", "search"),
		attachKeywords: dataloader.AttachKeywords,
	}
}

// Search handles GET /api/search?query=.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	found, err := h.search.Query(r.Context(), r.URL.Query().Get("query"))
	h.writeSearchResult(w, r, found, err)
}

// SearchByName handles GET /api/search/by-name?name=.
func (h *SearchHandler) SearchByName(w http.ResponseWriter, r *http.Request) {
	found, err := h.search.QueryByName(r.Context(), r.URL.Query().Get("name"))
	h.writeSearchResult(w, r, found, err)
}

// ByKeywords handles GET /api/services/by-keywords?k=a&k=b.
func (h *SearchHandler) ByKeywords(w http.ResponseWriter, r *http.Request) {
	found, err := h.search.QueryByPrefixes(r.Context(), r.URL.Query()["k"])
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	h.writeListings(w, r, found)
}

// writeSearchResult answers a logged search. A failure to record the
// results does not fail the request; the caller gets an empty list.
func (h *SearchHandler) writeSearchResult(w http.ResponseWriter, r *http.Request, found []domain.ServiceListing, err error) {
	if err != nil {
		h.log.ErrorContext(r.Context(), "search failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusOK, []listingResponse{})
		return
	}
	h.writeListings(w, r, found)
}

func (h *SearchHandler) writeListings(w http.ResponseWriter, r *http.Request, found []domain.ServiceListing) {
	if err := h.attachKeywords(r.Context(), found); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toListingResponses(found))
}

// History handles GET /api/search/history?userId=&limit=. Users may read
// their own history; admins may read anyone's.
func (h *SearchHandler) History(w http.ResponseWriter, r *http.Request) {
	userID, err := parseUserID(r.URL.Query().Get("userId"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	self, _ := ctxutil.UserIDFromCtx(r.Context())
	if self != userID && ctxutil.UserRoleFromCtx(r.Context()) != string(domain.RoleAdmin) {
		handleError(h.log, w, r, domain.ErrForbidden)
		return
	}

	items, err := h.history.HistoryByUser(r.Context(), userID, limit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toHistoryResponses(items))
}

// MyHistory handles GET /api/search/history/me.
func (h *SearchHandler) MyHistory(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	items, err := h.history.MyHistory(r.Context(), limit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toHistoryResponses(items))
}
