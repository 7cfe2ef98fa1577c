// internal/app/features/brands/delete.go
package brands

import (
	"context"
	"errors"
	"net/http"

	brandstore "github.com/sneakerdb/sneakerdb/internal/app/store/brands"
	"github.com/sneakerdb/sneakerdb/internal/app/features/shared/upload"
	"github.com/sneakerdb/sneakerdb/internal/app/system/timeouts"
	"github.com/sneakerdb/sneakerdb/internal/app/system/webutil"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HandleDelete deletes a brand along with its image and every embedded
// model's image. File removal is best-effort; the document is already gone
// when it runs, so a failed unlink only leaves an orphaned file.
//
// Route: POST /brand/{id}/delete
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	idHex := chi.URLParam(r, "id")
	oid, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "bad brand id", "Marca no encontrada.", "/")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	deleted, err := brandstore.New(h.DB).Delete(ctx, oid)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			h.ErrLog.LogNotFound(w, r, "brand not found", "Marca no encontrada.", "/")
			return
		}
		h.ErrLog.LogServerError(w, r, "delete brand failed", err, "Error al eliminar la marca.", "/")
		return
	}

	removeFile := func(path string) {
		if err := upload.Remove(ctx, h.Storage, path); err != nil {
			h.Log.Warn("image cleanup failed after brand delete",
				zap.String("brand_id", idHex),
				zap.String("path", path),
				zap.Error(err))
		}
	}
	removeFile(deleted.ImageFilename)
	for i := range deleted.Models {
		removeFile(deleted.Models[i].ImageFilename)
	}

	h.Log.Info("brand deleted",
		zap.String("brand_id", idHex),
		zap.String("name", deleted.Name),
		zap.Int("models", len(deleted.Models)))

	if webutil.IsAJAX(r) {
		webutil.JSONSuccess(w, map[string]any{
			"message": "Marca eliminada correctamente.",
		})
		return
	}

	h.Flash.Add(w, r, "Marca eliminada correctamente.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
