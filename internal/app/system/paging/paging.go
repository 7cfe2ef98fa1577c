// internal/app/system/paging/paging.go
package paging

import (
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/query"
)

// PageSize is the number of brand cards shown per listing page. The
// infinite-scroll API uses the same size so scroll pages line up with the
// server-rendered ones.
const PageSize = 8

// ParsePage extracts the 1-based "page" query parameter.
// Returns 1 if not present or invalid; upper clamping happens in Clamp once
// the total is known.
func ParsePage(r *http.Request) int {
	s := query.Get(r, "page")
	if s == "" {
		return 1
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// TotalPages returns the number of pages needed for total items. A filter
// that matches nothing still has one (empty) page.
func TotalPages(total int64, pageSize int) int {
	if pageSize <= 0 {
		pageSize = PageSize
	}
	pages := int((total + int64(pageSize) - 1) / int64(pageSize))
	if pages < 1 {
		pages = 1
	}
	return pages
}

// Clamp bounds a requested page to [1, TotalPages(total)].
func Clamp(page int, total int64, pageSize int) int {
	if page < 1 {
		return 1
	}
	if max := TotalPages(total, pageSize); page > max {
		return max
	}
	return page
}

// Pages describes a resolved page for view models and JSON payloads.
type Pages struct {
	Page       int
	TotalPages int
	HasPrev    bool
	HasNext    bool
	PrevPage   int
	NextPage   int
}

// Resolve clamps the requested page against total and fills in the
// prev/next indicators.
func Resolve(page int, total int64, pageSize int) Pages {
	clamped := Clamp(page, total, pageSize)
	totalPages := TotalPages(total, pageSize)
	return Pages{
		Page:       clamped,
		TotalPages: totalPages,
		HasPrev:    clamped > 1,
		HasNext:    clamped < totalPages,
		PrevPage:   clamped - 1,
		NextPage:   clamped + 1,
	}
}
