package app

import (
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/servicehub-backend/internal/adapter/postgres"
	"github.com/heartmarshall/servicehub-backend/internal/adapter/postgres/audit"
	consultationrepo "github.com/heartmarshall/servicehub-backend/internal/adapter/postgres/consultation"
	"github.com/heartmarshall/servicehub-backend/internal/adapter/postgres/listing"
	"github.com/heartmarshall/servicehub-backend/internal/adapter/postgres/searchlog"
	userrepo "github.com/heartmarshall/servicehub-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/servicehub-backend/internal/auth"
	"github.com/heartmarshall/servicehub-backend/internal/config"
	"github.com/heartmarshall/servicehub-backend/internal/metrics"
	"github.com/heartmarshall/servicehub-backend/internal/service/catalog"
	"github.com/heartmarshall/servicehub-backend/internal/service/consultation"
	"github.com/heartmarshall/servicehub-backend/internal/service/identity"
	"github.com/heartmarshall/servicehub-backend/internal/service/search"
	searchlogsvc "github.com/heartmarshall/servicehub-backend/internal/service/searchlog"
	"github.com/heartmarshall/servicehub-backend/internal/transport/dataloader"
	"github.com/heartmarshall/servicehub-backend/internal/transport/middleware"
	"github.com/heartmarshall/servicehub-backend/internal/transport/rest"
)

// Components is the wired object graph shared by the server, the operator
// CLI and the e2e tests.
type Components struct {
	Pool    *pgxpool.Pool
	Metrics *metrics.Metrics
	JWT     *auth.JWTManager

	Listings *listing.Repo
	Users    *userrepo.Repo
	History  *searchlog.Repo
	Audit    *audit.Repo

	Identity      *identity.Service
	SearchLog     *searchlogsvc.Service
	Search        *search.Service
	Catalog       *catalog.Service
	Consultations *consultation.Service
}

// NewComponents builds repositories and services on top of an open pool.
func NewComponents(logger *slog.Logger, cfg *config.Config, pool *pgxpool.Pool, m *metrics.Metrics) *Components {
	txm := postgres.NewTxManager(pool)

	listings := listing.New(pool)
	users := userrepo.New(pool)
	history := searchlog.New(pool)
	consultations := consultationrepo.New(pool)
	auditLog := audit.New(pool)

	identitySvc := identity.NewService(logger, users, auth.NewPasswordEncoder(cfg.Auth.PasswordHashCost), txm, m, cfg.Identity)
	searchLogSvc := searchlogsvc.NewService(logger, history, identitySvc, txm, m)

	return &Components{
		Pool:    pool,
		Metrics: m,
		JWT:     auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL),

		Listings: listings,
		Users:    users,
		History:  history,
		Audit:    auditLog,

		Identity:      identitySvc,
		SearchLog:     searchLogSvc,
		Search:        search.NewService(logger, listings, searchLogSvc, m, cfg.Search),
		Catalog:       catalog.NewService(logger, listings, listings, auditLog, txm, cfg.Search),
		Consultations: consultation.NewService(logger, consultations, listings, identitySvc, txm, m),
	}
}

// Handler builds the HTTP handler. rl may be nil to disable rate limiting.
func (c *Components) Handler(logger *slog.Logger, cfg *config.Config, rl *middleware.RateLimiter) http.Handler {
	return rest.NewRouter(rest.RouterDeps{
		Logger:       logger,
		Config:       cfg,
		Metrics:      c.Metrics,
		Tokens:       c.JWT,
		Loaders:      &dataloader.Repos{Keyword: c.Listings},
		RateLimiter:  rl,
		Health:       rest.NewHealthHandler(c.Pool, Version),
		Search:       rest.NewSearchHandler(c.Search, c.SearchLog, logger),
		Catalog:      rest.NewCatalogHandler(c.Catalog, logger),
		Consultation: rest.NewConsultationHandler(c.Consultations, logger),
	})
}
