// handlers/router.go
package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter wires the API routes.
func NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/api/health", HealthHandler)
	r.Route("/api/datasets", func(r chi.Router) {
		r.Post("/", GenerateDatasetHandler)
		r.Get("/summary", DatasetSummaryHandler)
		r.Get("/runs", ListDatasetRunsHandler)
	})
	return r
}
