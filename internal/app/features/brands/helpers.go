// internal/app/features/brands/helpers.go
package brands

import (
	"net/http"

	"github.com/sneakerdb/sneakerdb/internal/app/system/formutil"
)

// setBase fills the shared form fields and drains pending flash messages
// into the page.
func setBase(b *formutil.Base, h *Handler, w http.ResponseWriter, r *http.Request, title, backDefault string) {
	formutil.SetBase(b, r, title, backDefault)
	b.Flashes = h.Flash.Pop(w, r)
}
