// internal/app/features/api/brands.go
package api

import (
	"context"
	"net/http"

	brandstore "github.com/sneakerdb/sneakerdb/internal/app/store/brands"
	"github.com/sneakerdb/sneakerdb/internal/app/system/paging"
	"github.com/sneakerdb/sneakerdb/internal/app/system/timeouts"
	"github.com/sneakerdb/sneakerdb/internal/app/system/webutil"
	domain "github.com/sneakerdb/sneakerdb/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
)

type brandsPayload struct {
	Items      []domain.Brand `json:"items"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	TotalPages int            `json:"totalPages"`
}

// ServeBrands returns one listing page as JSON. It takes the same q,
// category, and page parameters as the HTML listing and applies the same
// clamping, so a scroll fetch for page N matches the server-rendered page N.
//
// Route: GET /api/brands
func (h *Handler) ServeBrands(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	filter := brandstore.Filter{
		Query:    query.Get(r, "q"),
		Category: query.Get(r, "category"),
	}
	page := paging.ParsePage(r)

	store := brandstore.New(h.DB)
	brands, total, page, err := store.List(ctx, filter, page, paging.PageSize)
	if err != nil {
		h.serverError(w, "api brand listing failed", err)
		return
	}
	if brands == nil {
		brands = []domain.Brand{}
	}

	webutil.JSON(w, http.StatusOK, brandsPayload{
		Items:      brands,
		Total:      total,
		Page:       page,
		TotalPages: paging.TotalPages(total, paging.PageSize),
	})
}
