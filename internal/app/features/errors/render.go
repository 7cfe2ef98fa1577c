// internal/app/features/errors/render.go
package errors

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
)

// pageData is the basic view model for error pages.
type pageData struct {
	Title   string
	Message string
	BackURL string
	Flashes []string
}

// RenderNotFound shows the 404 page. If backURL is empty it defaults to the
// brand listing.
func RenderNotFound(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	if msg == "" {
		msg = "No hemos encontrado lo que buscabas."
	}
	if backURL == "" {
		backURL = "/"
	}
	w.WriteHeader(http.StatusNotFound)
	templates.Render(w, r, "error_notfound", pageData{
		Title:   "Página no encontrada",
		Message: msg,
		BackURL: backURL,
	})
}

// RenderBadRequest shows the 400 page with a message describing what was
// wrong with the submission.
func RenderBadRequest(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	if msg == "" {
		msg = "La solicitud no es válida."
	}
	if backURL == "" {
		backURL = "/"
	}
	w.WriteHeader(http.StatusBadRequest)
	templates.Render(w, r, "error_badrequest", pageData{
		Title:   "Solicitud no válida",
		Message: msg,
		BackURL: backURL,
	})
}

// RenderServerError shows the 500 page. The message should stay generic;
// details belong in the log.
func RenderServerError(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	if msg == "" {
		msg = "Ha ocurrido un error inesperado. Inténtalo de nuevo más tarde."
	}
	if backURL == "" {
		backURL = "/"
	}
	w.WriteHeader(http.StatusInternalServerError)
	templates.Render(w, r, "error_server", pageData{
		Title:   "Error del servidor",
		Message: msg,
		BackURL: backURL,
	})
}
