package api

import (
	"eld-trip-service/internal/api/handlers"
	"eld-trip-service/internal/ports"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(repo ports.TripRepository, geocoder ports.Geocoder, router ports.RouteProvider) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(loggingMiddleware)
	r.Use(middleware.Recoverer)

	tripHandler := &handlers.TripHandler{
		Repo:     repo,
		Geocoder: geocoder,
		Router:   router,
	}
	logHandler := &handlers.ELDLogHandler{Repo: repo}

	r.Get("/health", handlers.Health)
	r.Route("/trips", func(r chi.Router) {
		r.Get("/", tripHandler.List)
		r.Post("/", tripHandler.Create)
		r.Get("/{tripID}", tripHandler.Get)
		r.Delete("/{tripID}", tripHandler.Delete)
	})
	r.Route("/eld-logs", func(r chi.Router) {
		r.Get("/", logHandler.List)
		r.Get("/{logID}", logHandler.Get)
	})

	return r
}
