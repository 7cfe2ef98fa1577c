// internal/app/features/models/routes.go
package models

import (
	"github.com/go-chi/chi/v5"
)

// Routes returns the model subrouter. It is mounted under
// /brand/{id}/model, so every handler reads the brand id from the "id"
// URL parameter.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	// CREATE
	r.Post("/new", h.HandleCreate)

	// VIEW
	r.Get("/{modelID}", h.ServeDetail)

	// EDIT
	r.Get("/{modelID}/edit", h.ServeEdit)
	r.Post("/{modelID}/edit", h.HandleEdit)

	// DELETE
	r.Post("/{modelID}/delete", h.HandleDelete)

	return r
}

// ImageRoutes returns the standalone image router mounted at /brand.models.
// It looks models up by id alone, without the parent brand in the URL.
func ImageRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/{modelID}/image", h.ServeImage)
	return r
}
