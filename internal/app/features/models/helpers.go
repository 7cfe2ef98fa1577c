// internal/app/features/models/helpers.go
package models

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	brandstore "github.com/sneakerdb/sneakerdb/internal/app/store/brands"
	"github.com/sneakerdb/sneakerdb/internal/app/features/shared/upload"
	"github.com/sneakerdb/sneakerdb/internal/app/system/formutil"
	"github.com/sneakerdb/sneakerdb/internal/app/system/htmlsanitize"
	"github.com/sneakerdb/sneakerdb/internal/app/system/inputval"
	domain "github.com/sneakerdb/sneakerdb/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// setBase fills the shared form fields and drains pending flash messages.
func setBase(b *formutil.Base, h *Handler, w http.ResponseWriter, r *http.Request, title, backDefault string) {
	formutil.SetBase(b, r, title, backDefault)
	b.Flashes = h.Flash.Pop(w, r)
}

// parentBrand loads the brand named by the "id" URL parameter. On failure
// the request has already been answered and ok is false.
func (h *Handler) parentBrand(ctx context.Context, w http.ResponseWriter, r *http.Request) (domain.Brand, bool) {
	idHex := chi.URLParam(r, "id")
	oid, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "bad brand id", "Marca no encontrada.", "/")
		return domain.Brand{}, false
	}

	brand, err := brandstore.New(h.DB).GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			h.ErrLog.LogNotFound(w, r, "brand not found", "Marca no encontrada.", "/")
			return domain.Brand{}, false
		}
		h.ErrLog.LogServerError(w, r, "load brand failed", err, "Error al cargar la marca.", "/")
		return domain.Brand{}, false
	}
	return brand, true
}

// modelForm is the trimmed raw submission of the model form.
type modelForm struct {
	Name          string
	Category      string
	Description   string
	ReleaseYear   string
	Price         string
	AverageRating string
	Colorway      string
	SizeRange     string
}

func readModelForm(r *http.Request) modelForm {
	return modelForm{
		Name:          strings.TrimSpace(r.FormValue("name")),
		Category:      strings.TrimSpace(r.FormValue("category")),
		Description:   htmlsanitize.Sanitize(r.FormValue("description")),
		ReleaseYear:   strings.TrimSpace(r.FormValue("release_year")),
		Price:         strings.TrimSpace(r.FormValue("price")),
		AverageRating: strings.TrimSpace(r.FormValue("average_rating")),
		Colorway:      strings.TrimSpace(r.FormValue("colorway")),
		SizeRange:     strings.TrimSpace(r.FormValue("size_range")),
	}
}

func (f modelForm) toInput() inputval.ModelInput {
	return inputval.ModelInput{
		Name:          f.Name,
		Category:      f.Category,
		Description:   f.Description,
		ReleaseYear:   f.ReleaseYear,
		Price:         f.Price,
		AverageRating: f.AverageRating,
		Colorway:      f.Colorway,
		SizeRange:     f.SizeRange,
	}
}

// toModel converts a validated form to a domain model. Numeric fields were
// already checked by inputval, so conversion errors are ignored.
func (f modelForm) toModel() domain.SneakerModel {
	year, _ := strconv.Atoi(f.ReleaseYear)
	price, _ := strconv.ParseFloat(f.Price, 64)
	rating := 0.0
	if f.AverageRating != "" {
		rating, _ = strconv.ParseFloat(f.AverageRating, 64)
	}
	return domain.SneakerModel{
		Name:          f.Name,
		Category:      f.Category,
		Description:   f.Description,
		ReleaseYear:   year,
		Price:         price,
		AverageRating: rating,
		Colorway:      f.Colorway,
		SizeRange:     f.SizeRange,
	}
}

// storeOptionalImage stores the named multipart file, if present. Returns
// the stored path (empty when no file was sent), a cleanup func, and false
// when the request has already been answered.
func (h *Handler) storeOptionalImage(ctx context.Context, w http.ResponseWriter, r *http.Request, field string, renderWithError func(string)) (string, func(), bool) {
	noop := func() {}

	file := r.MultipartForm.File[field]
	if len(file) == 0 {
		return "", noop, true
	}

	info, err := upload.Image(ctx, h.Storage, file[0])
	if err != nil {
		if errors.Is(err, upload.ErrNotImage) {
			renderWithError("El archivo debe ser una imagen.")
			return "", noop, false
		}
		h.ErrLog.LogServerError(w, r, "store image failed", err, "Error al guardar la imagen.", "")
		return "", noop, false
	}

	clean := func() {
		if err := upload.Remove(ctx, h.Storage, info.Path); err != nil {
			h.Log.Warn("orphaned upload cleanup failed",
				zap.String("path", info.Path),
				zap.Error(err))
		}
	}
	return info.Path, clean, true
}
