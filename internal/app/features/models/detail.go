// internal/app/features/models/detail.go
package models

import (
	"context"
	"net/http"

	"github.com/sneakerdb/sneakerdb/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
)

// ServeDetail renders the model detail page.
// Route: GET /brand/{id}/model/{modelID}
func (h *Handler) ServeDetail(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	brand, ok := h.parentBrand(ctx, w, r)
	if !ok {
		return
	}

	modelID := chi.URLParam(r, "modelID")
	m := brand.ModelByID(modelID)
	if m == nil {
		h.ErrLog.LogNotFound(w, r, "model not found", "Modelo no encontrado.", "/brand/"+brand.ID.Hex())
		return
	}

	data := detailData{
		BrandID:   brand.ID.Hex(),
		BrandName: brand.Name,
		Model:     *m,
	}
	setBase(&data.Base, h, w, r, m.Name, "/brand/"+brand.ID.Hex())
	templates.Render(w, r, "model_detail", data)
}
