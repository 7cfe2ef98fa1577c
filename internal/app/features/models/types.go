// internal/app/features/models/types.go
package models

import (
	"github.com/sneakerdb/sneakerdb/internal/app/system/formutil"
	domain "github.com/sneakerdb/sneakerdb/internal/domain/models"
)

// detailData is the view model for the model detail page.
type detailData struct {
	formutil.Base

	BrandID   string
	BrandName string
	Model     domain.SneakerModel
}

// editData is the view model for the model edit form. String fields echo
// raw submissions back when validation fails.
type editData struct {
	formutil.Base

	BrandID string
	ModelID string

	Name          string
	Category      string
	Description   string
	ReleaseYear   string
	Price         string
	AverageRating string
	Colorway      string
	SizeRange     string
	HasImage      bool

	Categories []string
}
