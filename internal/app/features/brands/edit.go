// internal/app/features/brands/edit.go
package brands

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	brandstore "github.com/sneakerdb/sneakerdb/internal/app/store/brands"
	"github.com/sneakerdb/sneakerdb/internal/app/features/shared/upload"
	"github.com/sneakerdb/sneakerdb/internal/app/system/htmlsanitize"
	"github.com/sneakerdb/sneakerdb/internal/app/system/inputval"
	"github.com/sneakerdb/sneakerdb/internal/app/system/timeouts"
	"github.com/sneakerdb/sneakerdb/internal/app/system/webutil"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ServeEdit renders the brand edit form with current values.
// Route: GET /brand/{id}/edit
func (h *Handler) ServeEdit(w http.ResponseWriter, r *http.Request) {
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

	data := editData{
		ID:            brand.ID.Hex(),
		Name:          brand.Name,
		CountryOrigin: brand.CountryOrigin,
		FoundedYear:   strconv.Itoa(brand.FoundedYear),
		Description:   brand.Description,
		HasImage:      brand.HasImage(),
	}
	setBase(&data.Base, h, w, r, "Editar marca", "/brand/"+idHex)
	templates.Render(w, r, "brand_edit", data)
}

// HandleEdit replaces the brand's scalar fields. An uploaded brand_image
// swaps the stored image (the old file is deleted); the remove_image flag
// clears it without replacement. Embedded models are untouched.
//
// Route: POST /brand/{id}/edit
func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	idHex := chi.URLParam(r, "id")
	oid, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "bad brand id", "Marca no encontrada.", "/")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes())
	if err := r.ParseMultipartForm(h.maxUploadBytes()); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse multipart form failed", err, "El formulario no es válido.", "/brand/"+idHex+"/edit")
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	country := strings.TrimSpace(r.FormValue("country_origin"))
	foundedYear := strings.TrimSpace(r.FormValue("founded_year"))
	description := htmlsanitize.Sanitize(r.FormValue("description"))
	removeImage := r.FormValue("remove_image") != ""

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := brandstore.New(h.DB)

	current, err := store.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			h.ErrLog.LogNotFound(w, r, "brand not found", "Marca no encontrada.", "/")
			return
		}
		h.ErrLog.LogServerError(w, r, "load brand failed", err, "Error al cargar la marca.", "/")
		return
	}

	renderWithError := func(msg string) {
		if webutil.IsAJAX(r) {
			webutil.JSONError(w, http.StatusBadRequest, msg)
			return
		}
		data := editData{
			ID:            idHex,
			Name:          name,
			CountryOrigin: country,
			FoundedYear:   foundedYear,
			Description:   description,
			HasImage:      current.HasImage(),
		}
		setBase(&data.Base, h, w, r, "Editar marca", "/brand/"+idHex)
		data.SetError(msg)
		w.WriteHeader(http.StatusBadRequest)
		templates.Render(w, r, "brand_edit", data)
	}

	input := inputval.BrandInput{
		Name:          name,
		CountryOrigin: country,
		FoundedYear:   foundedYear,
		Description:   description,
	}
	if result := inputval.ValidateBrand(input); result.HasErrors() {
		renderWithError(result.Joined())
		return
	}

	if name != current.Name {
		taken, err := store.NameExistsForOther(ctx, name, oid)
		if err != nil {
			h.ErrLog.LogServerError(w, r, "brand name lookup failed", err, "Error al comprobar el nombre de la marca.", "/brand/"+idHex+"/edit")
			return
		}
		if taken {
			renderWithError("Ya existe una marca con ese nombre.")
			return
		}
	}

	imagePath, clean, ok := h.storeOptionalImage(ctx, w, r, "brand_image", renderWithError)
	if !ok {
		return
	}

	year, _ := strconv.Atoi(foundedYear)
	fields := bson.M{
		"name":           name,
		"country_origin": country,
		"founded_year":   year,
		"description":    description,
	}

	// Image lifecycle: a new upload replaces, the flag clears, otherwise the
	// stored filename is left alone.
	oldImage := ""
	switch {
	case imagePath != "":
		fields["image_filename"] = imagePath
		oldImage = current.ImageFilename
	case removeImage:
		fields["image_filename"] = ""
		oldImage = current.ImageFilename
	}

	if _, err := store.Update(ctx, oid, fields); err != nil {
		clean()
		if errors.Is(err, brandstore.ErrDuplicateBrand) {
			renderWithError("Ya existe una marca con ese nombre.")
			return
		}
		h.ErrLog.LogServerError(w, r, "update brand failed", err, "Error al guardar la marca.", "/brand/"+idHex+"/edit")
		return
	}

	if oldImage != "" {
		if err := upload.Remove(ctx, h.Storage, oldImage); err != nil {
			h.Log.Warn("old brand image cleanup failed",
				zap.String("path", oldImage),
				zap.Error(err))
		}
	}

	h.Log.Info("brand updated", zap.String("brand_id", idHex))

	if webutil.IsAJAX(r) {
		webutil.JSONSuccess(w, map[string]any{
			"message": "Marca actualizada correctamente.",
			"brandId": idHex,
		})
		return
	}

	h.Flash.Add(w, r, "Marca actualizada correctamente.")
	http.Redirect(w, r, "/brand/"+idHex, http.StatusSeeOther)
}
