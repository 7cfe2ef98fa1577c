// internal/app/features/home/index.go
package home

import (
	"context"
	"net/http"

	brandstore "github.com/sneakerdb/sneakerdb/internal/app/store/brands"
	"github.com/sneakerdb/sneakerdb/internal/app/system/formutil"
	"github.com/sneakerdb/sneakerdb/internal/app/system/paging"
	"github.com/sneakerdb/sneakerdb/internal/app/system/timeouts"
	domain "github.com/sneakerdb/sneakerdb/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
)

type indexData struct {
	formutil.Base

	Brands     []domain.Brand
	Total      int64
	Query      string
	Category   string
	Categories []string
	Pages      paging.Pages
}

// ServeIndex renders the paginated brand listing. The same filter and page
// math back the /api/brands feed, so the infinite-scroll pages match what
// the server renders here.
//
// Routes: GET / and GET /index
func (h *Handler) ServeIndex(w http.ResponseWriter, r *http.Request) {
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
		h.ErrLog.LogServerError(w, r, "brand listing failed", err, "Error al cargar las marcas.", "/")
		return
	}

	data := indexData{
		Brands:     brands,
		Total:      total,
		Query:      filter.Query,
		Category:   filter.Category,
		Categories: domain.Categories,
		Pages:      paging.Resolve(page, total, paging.PageSize),
	}
	formutil.SetBase(&data.Base, r, "SneakerDB", "/")
	data.Flashes = h.Flash.Pop(w, r)

	templates.Render(w, r, "index", data)
}
