// internal/app/features/models/edit.go
package models

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	brandstore "github.com/sneakerdb/sneakerdb/internal/app/store/brands"
	"github.com/sneakerdb/sneakerdb/internal/app/features/shared/upload"
	"github.com/sneakerdb/sneakerdb/internal/app/system/inputval"
	"github.com/sneakerdb/sneakerdb/internal/app/system/timeouts"
	"github.com/sneakerdb/sneakerdb/internal/app/system/webutil"
	domain "github.com/sneakerdb/sneakerdb/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ServeEdit renders the model edit form with current values.
// Route: GET /brand/{id}/model/{modelID}/edit
func (h *Handler) ServeEdit(w http.ResponseWriter, r *http.Request) {
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

	rating := ""
	if m.AverageRating != 0 {
		rating = strconv.FormatFloat(m.AverageRating, 'f', -1, 64)
	}
	data := editData{
		BrandID:       brand.ID.Hex(),
		ModelID:       m.ID,
		Name:          m.Name,
		Category:      m.Category,
		Description:   m.Description,
		ReleaseYear:   strconv.Itoa(m.ReleaseYear),
		Price:         strconv.FormatFloat(m.Price, 'f', 2, 64),
		AverageRating: rating,
		Colorway:      m.Colorway,
		SizeRange:     m.SizeRange,
		HasImage:      m.HasImage(),
		Categories:    domain.Categories,
	}
	setBase(&data.Base, h, w, r, "Editar modelo", "/brand/"+brand.ID.Hex())
	templates.Render(w, r, "model_edit", data)
}

// HandleEdit replaces the model in the parent's array. An uploaded
// model_image swaps the stored image; the remove_image flag clears it.
//
// Route: POST /brand/{id}/model/{modelID}/edit
func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
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

	modelID := chi.URLParam(r, "modelID")
	current := brand.ModelByID(modelID)
	if current == nil {
		h.ErrLog.LogNotFound(w, r, "model not found", "Modelo no encontrado.", backURL)
		return
	}

	form := readModelForm(r)
	removeImage := r.FormValue("remove_image") != ""

	renderWithError := func(msg string) {
		if webutil.IsAJAX(r) {
			webutil.JSONError(w, http.StatusBadRequest, msg)
			return
		}
		data := editData{
			BrandID:       brand.ID.Hex(),
			ModelID:       modelID,
			Name:          form.Name,
			Category:      form.Category,
			Description:   form.Description,
			ReleaseYear:   form.ReleaseYear,
			Price:         form.Price,
			AverageRating: form.AverageRating,
			Colorway:      form.Colorway,
			SizeRange:     form.SizeRange,
			HasImage:      current.HasImage(),
			Categories:    domain.Categories,
		}
		setBase(&data.Base, h, w, r, "Editar modelo", backURL)
		data.SetError(msg)
		w.WriteHeader(http.StatusBadRequest)
		templates.Render(w, r, "model_edit", data)
	}

	if result := inputval.ValidateModel(form.toInput()); result.HasErrors() {
		renderWithError(result.Joined())
		return
	}

	store := brandstore.New(h.DB)

	taken, err := store.ModelNameTaken(ctx, brand.ID, form.Name, modelID)
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
	m.ID = modelID

	// Image lifecycle: a new upload replaces, the flag clears, otherwise
	// the stored filename carries over.
	oldImage := ""
	switch {
	case imagePath != "":
		m.ImageFilename = imagePath
		oldImage = current.ImageFilename
	case removeImage:
		oldImage = current.ImageFilename
	default:
		m.ImageFilename = current.ImageFilename
	}

	if err := store.ReplaceModel(ctx, brand.ID, m); err != nil {
		clean()
		switch {
		case errors.Is(err, brandstore.ErrDuplicateModelName):
			renderWithError("Ya existe un modelo con ese nombre en esta marca.")
		case errors.Is(err, brandstore.ErrModelNotFound):
			h.ErrLog.LogNotFound(w, r, "model vanished during edit", "Modelo no encontrado.", backURL)
		default:
			h.ErrLog.LogServerError(w, r, "replace model failed", err, "Error al guardar el modelo.", backURL)
		}
		return
	}

	if oldImage != "" {
		if err := upload.Remove(ctx, h.Storage, oldImage); err != nil {
			h.Log.Warn("old model image cleanup failed",
				zap.String("path", oldImage),
				zap.Error(err))
		}
	}

	h.Log.Info("model updated",
		zap.String("brand_id", brand.ID.Hex()),
		zap.String("model_id", modelID))

	if webutil.IsAJAX(r) {
		webutil.JSONSuccess(w, map[string]any{
			"message": "Modelo actualizado correctamente.",
			"brandId": brand.ID.Hex(),
			"model":   m,
		})
		return
	}

	h.Flash.Add(w, r, "Modelo actualizado correctamente.")
	http.Redirect(w, r, fmt.Sprintf("/brand/%s/model/%s", brand.ID.Hex(), modelID), http.StatusSeeOther)
}
