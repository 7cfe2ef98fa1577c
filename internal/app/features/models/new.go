// internal/app/features/models/new.go
package models

import (
	"context"
	"errors"
	"net/http"

	brandstore "github.com/sneakerdb/sneakerdb/internal/app/store/brands"
	"github.com/sneakerdb/sneakerdb/internal/app/system/inputval"
	"github.com/sneakerdb/sneakerdb/internal/app/system/timeouts"
	"github.com/sneakerdb/sneakerdb/internal/app/system/webutil"
	"go.uber.org/zap"
)

// HandleCreate appends a model to the parent brand. The form arrives as
// multipart with an optional model_image file.
//
// Route: POST /brand/{id}/model/new
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes())
	if err := r.ParseMultipartForm(h.maxUploadBytes()); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse multipart form failed", err, "El formulario no es válido.", "/")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	brand, ok := h.parentBrand(ctx, w, r)
	if !ok {
		return
	}
	backURL := "/brand/" + brand.ID.Hex()

	form := readModelForm(r)

	renderWithError := func(msg string) {
		if webutil.IsAJAX(r) {
			webutil.JSONError(w, http.StatusBadRequest, msg)
			return
		}
		// The add-model form lives on the brand detail page; flash the
		// message and send the user back there.
		h.Flash.Add(w, r, msg)
		http.Redirect(w, r, backURL, http.StatusSeeOther)
	}

	if result := inputval.ValidateModel(form.toInput()); result.HasErrors() {
		renderWithError(result.Joined())
		return
	}

	store := brandstore.New(h.DB)

	taken, err := store.ModelNameTaken(ctx, brand.ID, form.Name, "")
	if err != nil {
		h.ErrLog.LogServerError(w, r, "model name lookup failed", err, "Error al comprobar el nombre del modelo.", backURL)
		return
	}
	if taken {
		renderWithError("Ya existe un modelo con ese nombre en esta marca.")
		return
	}

	imagePath, clean, ok := h.storeOptionalImage(ctx, w, r, "model_image", renderWithError)
	if !ok {
		return
	}

	m := form.toModel()
	m.ImageFilename = imagePath

	added, err := store.AppendModel(ctx, brand.ID, m)
	if err != nil {
		clean()
		if errors.Is(err, brandstore.ErrDuplicateModelName) {
			renderWithError("Ya existe un modelo con ese nombre en esta marca.")
			return
		}
		h.ErrLog.LogServerError(w, r, "append model failed", err, "Error al guardar el modelo.", backURL)
		return
	}

	h.Log.Info("model created",
		zap.String("brand_id", brand.ID.Hex()),
		zap.String("model_id", added.ID),
		zap.String("name", added.Name))

	if webutil.IsAJAX(r) {
		webutil.JSONSuccess(w, map[string]any{
			"message": "Modelo añadido correctamente.",
			"brandId": brand.ID.Hex(),
			"model":   added,
		})
		return
	}

	h.Flash.Add(w, r, "Modelo añadido correctamente.")
	http.Redirect(w, r, backURL, http.StatusSeeOther)
}
