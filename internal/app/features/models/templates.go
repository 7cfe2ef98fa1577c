// internal/app/features/models/templates.go
package models

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "models",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
