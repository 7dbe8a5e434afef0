package api

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/iconidentify/channelscope/internal/api/handler"
	mw "github.com/iconidentify/channelscope/internal/api/middleware"
)

// NewRouter creates the HTTP router with all routes configured.
func NewRouter(
	channelHandler *handler.ChannelHandler,
	healthHandler *handler.HealthHandler,
	uiHandler *handler.UIHandler,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.CleanPath) // Normalize paths (e.g., //health -> /health)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(mw.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(5 * time.Minute))
	r.Use(mw.Metrics)

	// Operational endpoints
	r.Get("/health", healthHandler.Live)
	r.Handle("/metrics", promhttp.Handler())

	// Web UI
	r.Get("/", uiHandler.Index)
	r.Get("/privacy", uiHandler.Privacy)
	r.Get("/terms", uiHandler.Terms)
	r.Get("/disclaimer", uiHandler.Disclaimer)

	// Analysis API
	r.Post("/preview", channelHandler.Preview)
	r.Post("/api/analyze", channelHandler.Analyze)

	return r
}
