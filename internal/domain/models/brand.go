// internal/domain/models/brand.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Brand is a root catalog document. Its sneaker models are embedded in the
// Models array rather than stored in their own collection, so every model
// mutation rewrites the parent's array (see store/brands).
type Brand struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name   string             `bson:"name" json:"name"`
	NameCI string             `bson:"name_ci" json:"-"` // lowercase, diacritics-stripped; search only

	CountryOrigin string `bson:"country_origin" json:"country_origin"`
	FoundedYear   int    `bson:"founded_year" json:"founded_year"`
	Description   string `bson:"description" json:"description"`

	// ImageFilename is the storage filename of the brand image, empty when
	// the brand has no image. The referenced file is deleted when the image
	// is replaced, cleared, or the brand is deleted.
	ImageFilename string `bson:"image_filename,omitempty" json:"image_filename,omitempty"`

	Models []SneakerModel `bson:"models" json:"models"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// HasImage returns true if the brand has an uploaded image.
func (b *Brand) HasImage() bool {
	return b.ImageFilename != ""
}

// ModelByID returns the embedded model with the given identifier, or nil.
// The index is looked up fresh on every call; callers must not cache it
// across writes.
func (b *Brand) ModelByID(id string) *SneakerModel {
	for i := range b.Models {
		if b.Models[i].ID == id {
			return &b.Models[i]
		}
	}
	return nil
}
