// Package api exposes the serve-mode HTTP surface: health, event listings,
// a notify trigger, and Prometheus metrics.
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/wpgtech/tech-events/internal/handler"
)

// HandlerProvider returns the handler for the current configuration. Serve
// mode passes a function so config hot-reloads take effect per request.
type HandlerProvider func() *handler.Handler

// NewRouter creates and configures the HTTP router.
func NewRouter(provider HandlerProvider) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/ping"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler)
		r.Get("/events", listEventsHandler(provider))
		r.Get("/events.ics", calendarHandler(provider))
		r.Post("/notify", notifyHandler(provider))
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().Format(time.RFC3339),
	})
}
