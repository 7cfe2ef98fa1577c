// Package formutil provides helpers for form re-rendering with validation errors.
//
// When a form submission fails validation, the form should be re-rendered with:
// - The user's previously entered values (echoed back)
// - An error message explaining what went wrong
// - All the context data needed for the form (dropdowns, etc.)
//
// This package provides a Base struct that can be embedded in form data structs
// to handle the common fields, and helper functions to populate them.
//
// Example usage:
//
//	type newBrandData struct {
//		formutil.Base
//		Name        string
//		Description string
//	}
//
//	// In your handler:
//	data := newBrandData{Name: name, Description: desc}
//	formutil.SetBase(&data.Base, r, "Nueva marca", "/")
//	data.SetError("El nombre es obligatorio.")
//	templates.Render(w, r, "brand_new", data)
package formutil

import (
	"html/template"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/httpnav"
)

// Base contains common fields for form pages that can be embedded in form data structs.
type Base struct {
	Title       string
	BackURL     string
	CurrentPath string
	Error       template.HTML
	Flashes     []string
}

// SetBase populates the common Base fields from the request.
//
// Parameters:
//   - b: pointer to the Base struct to populate
//   - r: the HTTP request
//   - title: the page title
//   - backDefault: default URL for the back button if none in request
func SetBase(b *Base, r *http.Request, title, backDefault string) {
	b.Title = title
	b.BackURL = httpnav.ResolveBackURL(r, backDefault)
	b.CurrentPath = httpnav.CurrentPath(r)
}

// SetError sets the error message on a Base struct.
// Messages may span lines; newlines become <br> so itemized validation
// results read as a list.
func (b *Base) SetError(msg string) {
	escaped := template.HTMLEscapeString(msg)
	b.Error = template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
}
