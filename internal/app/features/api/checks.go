// internal/app/features/api/checks.go
package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	brandstore "github.com/sneakerdb/sneakerdb/internal/app/store/brands"
	"github.com/sneakerdb/sneakerdb/internal/app/system/timeouts"
	"github.com/sneakerdb/sneakerdb/internal/app/system/webutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type checkBrandNameRequest struct {
	Name           string `json:"name"`
	ExcludeBrandID string `json:"excludeBrandId"`
}

type checkModelNameRequest struct {
	Name           string `json:"name"`
	BrandID        string `json:"brandId"`
	ExcludeModelID string `json:"excludeModelId"`
}

type availabilityResponse struct {
	Available bool `json:"available"`
}

// CheckBrandName reports whether a brand name is free. The comparison is
// exact, matching the unique index on the brands collection. The edit form
// sends excludeBrandId so a brand's own name reads as available.
//
// Route: POST /api/check-brand-name
func (h *Handler) CheckBrandName(w http.ResponseWriter, r *http.Request) {
	var req checkBrandNameRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		webutil.JSONError(w, http.StatusBadRequest, "Petición no válida.")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		webutil.JSONError(w, http.StatusBadRequest, "El nombre es obligatorio.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	store := brandstore.New(h.DB)

	var (
		taken bool
		err   error
	)
	if req.ExcludeBrandID != "" {
		id, perr := primitive.ObjectIDFromHex(req.ExcludeBrandID)
		if perr != nil {
			webutil.JSONError(w, http.StatusBadRequest, "Identificador de marca no válido.")
			return
		}
		taken, err = store.NameExistsForOther(ctx, req.Name, id)
	} else {
		taken, err = store.NameExists(ctx, req.Name)
	}
	if err != nil {
		h.serverError(w, "brand name check failed", err)
		return
	}

	webutil.JSON(w, http.StatusOK, availabilityResponse{Available: !taken})
}

// CheckModelName reports whether a model name is free within one brand,
// comparing case-insensitively. excludeModelId skips the model being edited.
//
// Route: POST /api/check-model-name
func (h *Handler) CheckModelName(w http.ResponseWriter, r *http.Request) {
	var req checkModelNameRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		webutil.JSONError(w, http.StatusBadRequest, "Petición no válida.")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		webutil.JSONError(w, http.StatusBadRequest, "El nombre es obligatorio.")
		return
	}
	brandID, err := primitive.ObjectIDFromHex(req.BrandID)
	if err != nil {
		webutil.JSONError(w, http.StatusBadRequest, "Identificador de marca no válido.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	store := brandstore.New(h.DB)
	taken, err := store.ModelNameTaken(ctx, brandID, req.Name, req.ExcludeModelID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			webutil.JSONError(w, http.StatusNotFound, "Marca no encontrada.")
			return
		}
		h.serverError(w, "model name check failed", err)
		return
	}

	webutil.JSON(w, http.StatusOK, availabilityResponse{Available: !taken})
}
