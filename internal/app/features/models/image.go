// internal/app/features/models/image.go
package models

import (
	"context"
	"errors"
	"net/http"

	brandstore "github.com/sneakerdb/sneakerdb/internal/app/store/brands"
	"github.com/sneakerdb/sneakerdb/internal/app/features/shared/upload"
	"github.com/sneakerdb/sneakerdb/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
)

// ServeImage streams the model's image. The lookup goes through
// FindModelByID so legacy ObjectID model ids still resolve.
//
// Route: GET /brand.models/{modelID}/image
func (h *Handler) ServeImage(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	modelID := chi.URLParam(r, "modelID")

	store := brandstore.New(h.DB)
	ref, err := store.FindModelByID(ctx, modelID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			h.ErrLog.LogNotFound(w, r, "model not found", "Modelo no encontrado.", "/")
			return
		}
		h.ErrLog.LogServerError(w, r, "model image lookup failed", err, "Error al cargar la imagen.", "/")
		return
	}
	if ref.Model.ImageFilename == "" {
		h.ErrLog.LogNotFound(w, r, "model has no image", "El modelo no tiene imagen.", "/")
		return
	}

	upload.Serve(ctx, w, r, h.Storage, ref.Model.ImageFilename, h.Log)
}
