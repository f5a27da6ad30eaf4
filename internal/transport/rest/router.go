package rest

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/servicehub-backend/internal/auth"
	"github.com/heartmarshall/servicehub-backend/internal/config"
	"github.com/heartmarshall/servicehub-backend/internal/metrics"
	"github.com/heartmarshall/servicehub-backend/internal/transport/dataloader"
	"github.com/heartmarshall/servicehub-backend/internal/transport/middleware"
)

type tokenValidator interface {
	ValidateAccessToken(token string) (auth.Principal, error)
}

// RouterDeps holds everything NewRouter wires together.
type RouterDeps struct {
	Logger       *slog.Logger
	Config       *config.Config
	Metrics      *metrics.Metrics
	Tokens       tokenValidator
	Loaders      *dataloader.Repos
	RateLimiter  *middleware.RateLimiter
	Health       *HealthHandler
	Search       *SearchHandler
	Catalog      *CatalogHandler
	Consultation *ConsultationHandler
}

// NewRouter registers every route and wraps the mux in the global
// middleware chain. Metrics must stay innermost so r.Pattern is populated.
func NewRouter(d RouterDeps) http.Handler {
	mux := http.NewServeMux()

	search := middleware.Middleware(nil)
	write := middleware.Middleware(nil)
	if d.RateLimiter != nil && d.Config.RateLimit.Enabled {
		search = d.RateLimiter.Limit("search", d.Config.RateLimit.SearchPerMinute)
		write = d.RateLimiter.Limit("write", d.Config.RateLimit.WritePerMinute)
	}

	mux.HandleFunc("GET /live", d.Health.Live)
	mux.HandleFunc("GET /ready", d.Health.Ready)
	mux.HandleFunc("GET /health", d.Health.Health)
	if d.Config.Metrics.Enabled {
		mux.Handle("GET "+d.Config.Metrics.Path, d.Metrics.Handler())
	}

	// Search.
	mux.Handle("GET /api/search", middleware.Wrap(d.Search.Search, search))
	mux.Handle("GET /api/search/by-name", middleware.Wrap(d.Search.SearchByName, search))
	mux.Handle("GET /api/services/by-keywords", middleware.Wrap(d.Search.ByKeywords, search))
	mux.Handle("GET /api/search/history", middleware.Wrap(d.Search.History, middleware.RequireUser))
	mux.Handle("GET /api/search/history/me", middleware.Wrap(d.Search.MyHistory, middleware.RequireUser))

	// Catalog.
	mux.HandleFunc("GET /api/services/recent", d.Catalog.Recent)
	mux.HandleFunc("GET /api/services/popular", d.Catalog.Popular)
	mux.HandleFunc("GET /api/services/{id}", d.Catalog.Get)
	mux.HandleFunc("GET /api/services/{id}/audit", d.Catalog.Audit)
	mux.Handle("POST /api/services", middleware.Wrap(d.Catalog.Create, write))
	mux.Handle("PATCH /api/services/{id}/state", middleware.Wrap(d.Catalog.UpdateState, write))
	mux.Handle("DELETE /api/services/{id}", middleware.Wrap(d.Catalog.Delete, write))
	mux.Handle("POST /api/services/{id}/keywords", middleware.Wrap(d.Catalog.AddKeyword, write))
	mux.Handle("PUT /api/keywords/{id}", middleware.Wrap(d.Catalog.UpdateKeyword, write))
	mux.Handle("DELETE /api/keywords/{id}", middleware.Wrap(d.Catalog.DeleteKeyword, write))

	// Consultations.
	mux.Handle("POST /api/consultations/{serviceId}", middleware.Wrap(d.Consultation.Record, write))
	mux.HandleFunc("GET /api/consultations", d.Consultation.List)
	mux.HandleFunc("GET /api/consultations/{id}", d.Consultation.Get)
	mux.HandleFunc("GET /api/consultations/user/{userId}", d.Consultation.ByUser)
	mux.HandleFunc("GET /api/consultations/service/{serviceId}", d.Consultation.ByService)
	mux.Handle("DELETE /api/consultations/{id}", middleware.Wrap(d.Consultation.Delete, write))

	var loaders middleware.Middleware
	if d.Loaders != nil {
		loaders = dataloader.Middleware(d.Loaders)
	}

	return middleware.Chain(
		middleware.Recovery(d.Logger),
		middleware.RequestID(),
		middleware.Auth(d.Tokens, d.Logger),
		middleware.Logger(d.Logger),
		middleware.CORS(d.Config.CORS),
		loaders,
		middleware.Metrics(d.Metrics),
	)(mux)
}
