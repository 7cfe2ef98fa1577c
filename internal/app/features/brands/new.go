// internal/app/features/brands/new.go
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
	"github.com/sneakerdb/sneakerdb/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// ServeNew renders the "Nueva marca" form.
// Route: GET /brand/new
func (h *Handler) ServeNew(w http.ResponseWriter, r *http.Request) {
	data := newData{}
	setBase(&data.Base, h, w, r, "Nueva marca", "/")
	templates.Render(w, r, "brand_new", data)
}

// HandleCreate processes the New Brand form submission (multipart, with an
// optional brand_image file).
//
// Route: POST /brand/new
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes())
	if err := r.ParseMultipartForm(h.maxUploadBytes()); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse multipart form failed", err, "El formulario no es válido.", "/brand/new")
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	country := strings.TrimSpace(r.FormValue("country_origin"))
	foundedYear := strings.TrimSpace(r.FormValue("founded_year"))
	description := htmlsanitize.Sanitize(r.FormValue("description"))

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	renderWithError := func(msg string) {
		if webutil.IsAJAX(r) {
			webutil.JSONError(w, http.StatusBadRequest, msg)
			return
		}
		data := newData{
			Name:          name,
			CountryOrigin: country,
			FoundedYear:   foundedYear,
			Description:   description,
		}
		setBase(&data.Base, h, w, r, "Nueva marca", "/")
		data.SetError(msg)
		w.WriteHeader(http.StatusBadRequest)
		templates.Render(w, r, "brand_new", data)
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

	store := brandstore.New(h.DB)

	// Uniqueness probe before touching the file; the unique index still
	// backstops the race below.
	exists, err := store.NameExists(ctx, name)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "brand name lookup failed", err, "Error al comprobar el nombre de la marca.", "/brand/new")
		return
	}
	if exists {
		renderWithError("Ya existe una marca con ese nombre.")
		return
	}

	imagePath, clean, ok := h.storeOptionalImage(ctx, w, r, "brand_image", renderWithError)
	if !ok {
		return
	}

	year, _ := strconv.Atoi(foundedYear)
	brand := models.Brand{
		Name:          name,
		CountryOrigin: country,
		FoundedYear:   year,
		Description:   description,
		ImageFilename: imagePath,
	}

	created, err := store.Create(ctx, brand)
	if err != nil {
		clean()
		if errors.Is(err, brandstore.ErrDuplicateBrand) {
			renderWithError("Ya existe una marca con ese nombre.")
			return
		}
		h.ErrLog.LogServerError(w, r, "create brand failed", err, "Error al guardar la marca.", "/brand/new")
		return
	}

	h.Log.Info("brand created",
		zap.String("brand_id", created.ID.Hex()),
		zap.String("name", created.Name))

	if webutil.IsAJAX(r) {
		webutil.JSONSuccess(w, map[string]any{
			"message": "Marca creada correctamente.",
			"brandId": created.ID.Hex(),
		})
		return
	}

	// Confirmation page with a link to the new brand.
	data := createdData{
		ID:   created.ID.Hex(),
		Name: created.Name,
	}
	setBase(&data.Base, h, w, r, "Marca creada", "/")
	templates.Render(w, r, "brand_created", data)
}

// storeOptionalImage stores the named multipart file, if present. Returns
// the stored path (empty when no file was sent), a cleanup func that removes
// the stored file, and false when the request has already been answered.
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
