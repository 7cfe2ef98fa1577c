// Package inputval holds the server-side validation rule set for brand and
// model forms. The browser controller in public/js/app.js mirrors these rules
// field for field for immediate feedback, but this package is the source of
// truth: no write happens unless the relevant Validate* call returns no
// errors.
package inputval

import (
	"regexp"
	"strconv"
	"strings"
)

// Year bounds, shared with the HTML form attributes and the client mirror.
const (
	BrandYearMin = 1900
	BrandYearMax = 2025
	ModelYearMin = 1970
	ModelYearMax = 2025

	BrandDescMin = 20
	BrandDescMax = 300
	ModelDescMin = 10
	ModelDescMax = 500
)

// uppercaseStart matches names that begin with an uppercase letter, including
// the accented Latin uppercase vowels and Ñ.
var uppercaseStart = regexp.MustCompile(`^[A-ZÁÉÍÓÚÑ]`)

// BrandInput carries the raw form values for a brand create/edit.
type BrandInput struct {
	Name          string
	CountryOrigin string
	FoundedYear   string
	Description   string
}

// ModelInput carries the raw form values for a model create/edit.
type ModelInput struct {
	Name          string
	Category      string
	Description   string
	ReleaseYear   string
	Price         string
	AverageRating string
	Colorway      string
	SizeRange     string
}

// Result accumulates validation messages in form-field order.
type Result struct {
	errs []string
}

// HasErrors reports whether any rule failed.
func (r *Result) HasErrors() bool { return len(r.errs) > 0 }

// Messages returns all failure messages in the order the rules ran.
func (r *Result) Messages() []string { return r.errs }

// Joined returns the messages newline-joined, the shape AJAX error
// responses carry.
func (r *Result) Joined() string { return strings.Join(r.errs, "\n") }

func (r *Result) add(msg string) { r.errs = append(r.errs, msg) }

// ValidateBrand runs every brand field rule. Uniqueness is checked separately
// by the caller against the store (it needs a database round trip).
func ValidateBrand(in BrandInput) *Result {
	res := &Result{}

	name := strings.TrimSpace(in.Name)
	country := strings.TrimSpace(in.CountryOrigin)
	desc := strings.TrimSpace(in.Description)

	if name == "" {
		res.add("El nombre es obligatorio.")
	} else if !StartsWithUppercase(name) {
		res.add("El nombre debe comenzar por una letra mayúscula.")
	}

	if country == "" {
		res.add("El país de origen es obligatorio.")
	} else if len([]rune(country)) < 2 {
		res.add("El país debe tener al menos 2 caracteres.")
	}

	if strings.TrimSpace(in.FoundedYear) == "" {
		res.add("El año de fundación es obligatorio.")
	} else if year, err := strconv.Atoi(strings.TrimSpace(in.FoundedYear)); err != nil {
		res.add("El año de fundación debe ser un número.")
	} else if year < BrandYearMin || year > BrandYearMax {
		res.add("El año de fundación debe estar entre 1900 y 2025.")
	}

	if desc == "" {
		res.add("La descripción es obligatoria.")
	} else if n := len([]rune(desc)); n < BrandDescMin || n > BrandDescMax {
		res.add("La descripción debe tener entre 20 y 300 caracteres.")
	}

	return res
}

// ValidateModel runs every model field rule. Per-brand name uniqueness is
// checked by the caller against the parent brand's array.
func ValidateModel(in ModelInput) *Result {
	res := &Result{}

	if strings.TrimSpace(in.Name) == "" {
		res.add("El nombre del modelo es obligatorio.")
	}

	if strings.TrimSpace(in.Category) == "" {
		res.add("Selecciona una categoría.")
	}

	desc := strings.TrimSpace(in.Description)
	if desc == "" {
		res.add("La descripción es obligatoria.")
	} else if n := len([]rune(desc)); n < ModelDescMin || n > ModelDescMax {
		res.add("La descripción debe tener entre 10 y 500 caracteres.")
	}

	if strings.TrimSpace(in.ReleaseYear) == "" {
		res.add("El año de lanzamiento es obligatorio.")
	} else if year, err := strconv.Atoi(strings.TrimSpace(in.ReleaseYear)); err != nil {
		res.add("El año de lanzamiento debe ser un número.")
	} else if year < ModelYearMin || year > ModelYearMax {
		res.add("El año de lanzamiento debe estar entre 1970 y 2025.")
	}

	if strings.TrimSpace(in.Price) == "" {
		res.add("El precio es obligatorio.")
	} else if price, err := strconv.ParseFloat(strings.TrimSpace(in.Price), 64); err != nil || price < 0 {
		res.add("El precio debe ser un número positivo.")
	}

	// Rating is optional; range-checked only when present.
	if rating := strings.TrimSpace(in.AverageRating); rating != "" {
		if v, err := strconv.ParseFloat(rating, 64); err != nil || v < 0 || v > 5 {
			res.add("La valoración debe estar entre 0 y 5.")
		}
	}

	return res
}

// StartsWithUppercase reports whether a brand name begins with an uppercase
// letter, accepting the accented Latin set the original forms accept.
func StartsWithUppercase(name string) bool {
	return uppercaseStart.MatchString(strings.TrimSpace(name))
}
