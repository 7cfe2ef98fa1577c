// internal/app/features/brands/detail.go
package brands

import (
	"context"
	"errors"
	"net/http"

	brandstore "github.com/sneakerdb/sneakerdb/internal/app/store/brands"
	"github.com/sneakerdb/sneakerdb/internal/app/system/timeouts"
	"github.com/sneakerdb/sneakerdb/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ServeDetail renders the brand page: scalar fields, the embedded models,
// and the inline add-model form.
//
// Route: GET /brand/{id}
func (h *Handler) ServeDetail(w http.ResponseWriter, r *http.Request) {
	idHex := chi.URLParam(r, "id")
	oid, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "bad brand id", "Marca no encontrada.", "/")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	brand, err := brandstore.New(h.DB).GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			h.ErrLog.LogNotFound(w, r, "brand not found", "Marca no encontrada.", "/")
			return
		}
		h.ErrLog.LogServerError(w, r, "load brand failed", err, "Error al cargar la marca.", "/")
		return
	}

	data := detailData{
		Brand:      brand,
		Categories: models.Categories,
	}
	setBase(&data.Base, h, w, r, brand.Name, "/")
	templates.Render(w, r, "brand_detail", data)
}
