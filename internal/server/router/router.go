// Package router собирает HTTP API портала на chi.
package router

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/iudanet/fieldsync/internal/server/handlers"
	"github.com/iudanet/fieldsync/internal/server/middleware"
	"github.com/iudanet/fieldsync/internal/server/storage"
)

// HealthPath открыт без токена
const HealthPath = "/api/health"

// Deps зависимости маршрутов. Nil Validator отключает авторизацию,
// nil RateLimiter отключает ограничение, nil Registry отключает /metrics.
type Deps struct {
	Sync        storage.SyncStorage
	Catalog     storage.CatalogStorage
	Workday     storage.WorkdayStorage
	Pinger      handlers.Pinger
	Backups     handlers.BackupService
	Validator   middleware.TokenValidator
	RateLimiter *middleware.RateLimiter
	Registry    *prometheus.Registry
	Clock       clockwork.Clock
	Logger      *slog.Logger
	Version     string
}

// New создает router со всеми маршрутами API
func New(d Deps) http.Handler {
	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(middleware.RecoveryMiddleware(logger))
	r.Use(middleware.LoggingMiddleware(logger, HealthPath))
	if d.Registry != nil {
		r.Use(middleware.NewMetrics(d.Registry).Middleware)
	}
	r.Use(middleware.CORSMiddleware)
	if d.RateLimiter != nil {
		r.Use(d.RateLimiter.Middleware)
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		handlers.WriteError(w, logger, http.StatusNotFound, "not_found", "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		handlers.WriteError(w, logger, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
	})

	if d.Registry != nil {
		r.Handle("/metrics", promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{}))
	}

	health := handlers.NewHealthHandler(logger, d.Pinger, d.Version)
	syncH := handlers.NewSyncHandler(logger, d.Sync)
	configH := handlers.NewConfigHandler(logger, d.Catalog)
	backupH := handlers.NewBackupHandler(logger, d.Backups)
	workdayH := handlers.NewWorkdayHandler(logger, d.Sync, d.Workday, d.Clock)

	r.Route("/api", func(r chi.Router) {
		if d.Validator != nil {
			r.Use(middleware.AuthMiddleware(logger, d.Validator, HealthPath))
		}

		r.Get("/health", health.Health)

		r.Route("/sync", func(r chi.Router) {
			r.Get("/users", syncH.GetUsers)
			r.Post("/users", syncH.PushUsers)
			r.Get("/tickets", syncH.GetTickets)
			r.Post("/tickets", syncH.PushTickets)
		})

		r.Route("/config", func(r chi.Router) {
			r.Get("/operations", configH.Operations)
			r.Get("/spare-parts", configH.SpareParts)
		})

		r.Route("/backup", func(r chi.Router) {
			r.Get("/", backupH.List)
			r.Post("/", backupH.Create)
			r.Post("/restore", backupH.Restore)
		})

		r.Route("/workday", func(r chi.Router) {
			r.Post("/open", workdayH.Open)
			r.Post("/close", workdayH.Close)
		})
	})

	return r
}
