// internal/app/features/brands/routes.go
package brands

import (
	modelsfeature "github.com/sneakerdb/sneakerdb/internal/app/features/models"
	"github.com/go-chi/chi/v5"
)

// Routes mounts all brand routes under the base path (typically "/brand"
// from bootstrap). Model routes nest under /{id}/model so handlers always
// know the parent brand.
func Routes(h *Handler, mh *modelsfeature.Handler) chi.Router {
	r := chi.NewRouter()

	// CREATE
	r.Get("/new", h.ServeNew)
	r.Post("/new", h.HandleCreate)

	// VIEW
	r.Get("/{id}", h.ServeDetail)
	r.Get("/{id}/image", h.ServeImage)

	// EDIT
	r.Get("/{id}/edit", h.ServeEdit)
	r.Post("/{id}/edit", h.HandleEdit)

	// DELETE
	r.Post("/{id}/delete", h.HandleDelete)

	// Embedded models
	r.Mount("/{id}/model", modelsfeature.Routes(mh))

	return r
}
