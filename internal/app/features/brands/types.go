// internal/app/features/brands/types.go
package brands

import (
	"github.com/sneakerdb/sneakerdb/internal/app/system/formutil"
	"github.com/sneakerdb/sneakerdb/internal/domain/models"
)

// newData is the view model for the "Nueva marca" page. Field values echo
// the previous submission when validation fails.
type newData struct {
	formutil.Base

	Name          string
	CountryOrigin string
	FoundedYear   string
	Description   string
}

// editData is the view model for the "Editar marca" page.
type editData struct {
	formutil.Base

	ID            string
	Name          string
	CountryOrigin string
	FoundedYear   string
	Description   string
	HasImage      bool
}

// createdData is the view model for the post-create confirmation page.
type createdData struct {
	formutil.Base

	ID   string
	Name string
}

// detailData is the view model for the brand detail page: the brand, its
// models, and the inline "add model" form.
type detailData struct {
	formutil.Base

	Brand      models.Brand
	Categories []string
}
