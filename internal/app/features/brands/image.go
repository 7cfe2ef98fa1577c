// internal/app/features/brands/image.go
package brands

import (
	"context"
	"errors"
	"net/http"

	brandstore "github.com/sneakerdb/sneakerdb/internal/app/store/brands"
	"github.com/sneakerdb/sneakerdb/internal/app/features/shared/upload"
	"github.com/sneakerdb/sneakerdb/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ServeImage returns the brand's image bytes, or 404 when the brand has no
// image.
//
// Route: GET /brand/{id}/image
func (h *Handler) ServeImage(w http.ResponseWriter, r *http.Request) {
	idHex := chi.URLParam(r, "id")
	oid, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	brand, err := brandstore.New(h.DB).GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			http.NotFound(w, r)
			return
		}
		h.ErrLog.LogServerError(w, r, "load brand failed", err, "Error al cargar la imagen.", "/")
		return
	}
	if !brand.HasImage() {
		http.NotFound(w, r)
		return
	}

	upload.Serve(ctx, w, r, h.Storage, brand.ImageFilename, h.Log)
}
