// internal/app/features/api/routes.go
package api

import (
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	// Listing feed for infinite scroll
	r.Get("/brands", h.ServeBrands)

	// Live uniqueness probes used by client-side validation
	r.Post("/check-brand-name", h.CheckBrandName)
	r.Post("/check-model-name", h.CheckModelName)

	return r
}
