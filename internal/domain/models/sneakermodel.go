// internal/domain/models/sneakermodel.go
package models

// SneakerModel is a product line embedded in a Brand document. It has no
// collection of its own.
//
// ID is the hex form of a driver-generated ObjectID, stored as a string.
// Some historical documents hold a native ObjectID instead; the store's
// FindModelByID covers both representations, but all new writes use the
// string form.
type SneakerModel struct {
	ID          string `bson:"_id" json:"_id"`
	Name        string `bson:"name" json:"name"`
	Category    string `bson:"category" json:"category"`
	Description string `bson:"description" json:"description"`

	ReleaseYear   int     `bson:"release_year" json:"release_year"`
	Price         float64 `bson:"price" json:"price"`
	AverageRating float64 `bson:"average_rating" json:"average_rating"` // 0–5, defaults to 0

	Colorway  string `bson:"colorway,omitempty" json:"colorway,omitempty"`
	SizeRange string `bson:"size_range,omitempty" json:"size_range,omitempty"`

	ImageFilename string `bson:"image_filename,omitempty" json:"image_filename,omitempty"`
}

// HasImage returns true if the model has an uploaded image.
func (m *SneakerModel) HasImage() bool {
	return m.ImageFilename != ""
}

// Categories is the fixed vocabulary offered by the category dropdowns.
// Free-text categories from imported data are still accepted on read.
var Categories = []string{
	"Running",
	"Baloncesto",
	"Casual",
	"Skate",
	"Fútbol",
	"Training",
}
