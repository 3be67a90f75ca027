package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/voicelane/trialwatch/pkg/httpserver"
)

// Config holds the trigger surface configuration.
type Config struct {
	// TriggerSecret authorizes scheduler invocations of the cron endpoints.
	TriggerSecret string `env:"CRON_SECRET,required"`
}

// Router builds the service's HTTP surface: an unauthenticated health probe
// and the bearer-protected trial lifecycle trigger. The scheduler may use GET
// or POST interchangeably.
func Router(cfg Config, runner BatchRunner, log *slog.Logger, healthchecks ...func(context.Context) error) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/health", httpserver.HealthCheckHandler(log, healthchecks...))

	r.Group(func(cron chi.Router) {
		cron.Use(BearerAuth(cfg.TriggerSecret))

		run := TrialLifecycle(runner, log)
		cron.Get("/cron/trial-lifecycle", run)
		cron.Post("/cron/trial-lifecycle", run)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Not Found"})
	})

	return r
}
