// internal/app/features/models/delete.go
package models

import (
	"context"
	"errors"
	"net/http"

	brandstore "github.com/sneakerdb/sneakerdb/internal/app/store/brands"
	"github.com/sneakerdb/sneakerdb/internal/app/features/shared/upload"
	"github.com/sneakerdb/sneakerdb/internal/app/system/timeouts"
	"github.com/sneakerdb/sneakerdb/internal/app/system/webutil"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// HandleDelete removes the model from the parent's array and deletes
// its stored image.
//
// Route: POST /brand/{id}/model/{modelID}/delete
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	brand, ok := h.parentBrand(ctx, w, r)
	if !ok {
		return
	}
	backURL := "/brand/" + brand.ID.Hex()

	modelID := chi.URLParam(r, "modelID")

	store := brandstore.New(h.DB)
	removed, err := store.RemoveModel(ctx, brand.ID, modelID)
	if err != nil {
		if errors.Is(err, brandstore.ErrModelNotFound) {
			h.ErrLog.LogNotFound(w, r, "model not found", "Modelo no encontrado.", backURL)
			return
		}
		h.ErrLog.LogServerError(w, r, "remove model failed", err, "Error al eliminar el modelo.", backURL)
		return
	}

	if removed.ImageFilename != "" {
		if err := upload.Remove(ctx, h.Storage, removed.ImageFilename); err != nil {
			h.Log.Warn("model image cleanup failed",
				zap.String("path", removed.ImageFilename),
				zap.Error(err))
		}
	}

	h.Log.Info("model deleted",
		zap.String("brand_id", brand.ID.Hex()),
		zap.String("model_id", modelID))

	if webutil.IsAJAX(r) {
		webutil.JSONSuccess(w, map[string]any{
			"message": "Modelo eliminado correctamente.",
			"brandId": brand.ID.Hex(),
		})
		return
	}

	h.Flash.Add(w, r, "Modelo eliminado correctamente.")
	http.Redirect(w, r, backURL, http.StatusSeeOther)
}
