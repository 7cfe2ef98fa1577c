// internal/app/store/brands/modelops.go
//
// Embedded-model operations. Every mutation here is a read-modify-write of
// the parent brand's whole models array: fetch the brand, mutate the slice
// in memory, write the slice back. There is no atomic single-element update
// and no locking, so two concurrent editors of the same brand can lose one
// writer's change (last write wins). Accepted limitation for this domain.
package brandstore

import (
	"context"
	"time"

	"github.com/sneakerdb/sneakerdb/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ModelRef is the result of looking a model up by identifier alone: the
// embedded model plus the parent brand it lives in.
type ModelRef struct {
	Model   models.SneakerModel
	BrandID primitive.ObjectID
}

// legacyModel mirrors SneakerModel but with a native ObjectID identifier.
// Some historical documents stored model ids that way; FindModelByID decodes
// them through this shape and normalizes the id to hex.
type legacyModel struct {
	ID            primitive.ObjectID `bson:"_id"`
	Name          string             `bson:"name"`
	Category      string             `bson:"category"`
	Description   string             `bson:"description"`
	ReleaseYear   int                `bson:"release_year"`
	Price         float64            `bson:"price"`
	AverageRating float64            `bson:"average_rating"`
	Colorway      string             `bson:"colorway,omitempty"`
	SizeRange     string             `bson:"size_range,omitempty"`
	ImageFilename string             `bson:"image_filename,omitempty"`
}

func (lm legacyModel) toModel() models.SneakerModel {
	return models.SneakerModel{
		ID:            lm.ID.Hex(),
		Name:          lm.Name,
		Category:      lm.Category,
		Description:   lm.Description,
		ReleaseYear:   lm.ReleaseYear,
		Price:         lm.Price,
		AverageRating: lm.AverageRating,
		Colorway:      lm.Colorway,
		SizeRange:     lm.SizeRange,
		ImageFilename: lm.ImageFilename,
	}
}

// FindModelByID searches the brand collection for a document whose models
// array contains an entry with the given identifier. New writes store the
// id as a hex string, but historical data may hold a native ObjectID, so a
// miss on the string form falls back to the ObjectID form. Returns
// mongo.ErrNoDocuments when neither matches.
func (s *Store) FindModelByID(ctx context.Context, rawID string) (ModelRef, error) {
	proj := options.FindOne().SetProjection(bson.M{
		"_id":    1,
		"models": bson.M{"$elemMatch": bson.M{"_id": rawID}},
	})

	var brand models.Brand
	err := s.c.FindOne(ctx, bson.M{"models._id": rawID}, proj).Decode(&brand)
	if err == nil && len(brand.Models) > 0 {
		return ModelRef{Model: brand.Models[0], BrandID: brand.ID}, nil
	}
	if err != nil && err != mongo.ErrNoDocuments {
		return ModelRef{}, err
	}

	oid, hexErr := primitive.ObjectIDFromHex(rawID)
	if hexErr != nil {
		return ModelRef{}, mongo.ErrNoDocuments
	}

	var legacy struct {
		ID     primitive.ObjectID `bson:"_id"`
		Models []legacyModel      `bson:"models"`
	}
	legacyProj := options.FindOne().SetProjection(bson.M{
		"_id":    1,
		"models": bson.M{"$elemMatch": bson.M{"_id": oid}},
	})
	if err := s.c.FindOne(ctx, bson.M{"models._id": oid}, legacyProj).Decode(&legacy); err != nil {
		return ModelRef{}, err
	}
	if len(legacy.Models) == 0 {
		return ModelRef{}, mongo.ErrNoDocuments
	}
	return ModelRef{Model: legacy.Models[0].toModel(), BrandID: legacy.ID}, nil
}

// AppendModel adds a model to a brand after checking the name is free within
// that brand (case-insensitive). The identifier is assigned here, once, and
// never reused. Returns the stored model.
func (s *Store) AppendModel(ctx context.Context, brandID primitive.ObjectID, m models.SneakerModel) (models.SneakerModel, error) {
	brand, err := s.GetByID(ctx, brandID)
	if err != nil {
		return models.SneakerModel{}, err
	}

	if modelNameTaken(brand.Models, m.Name, "") {
		return models.SneakerModel{}, ErrDuplicateModelName
	}

	m.ID = primitive.NewObjectID().Hex()
	return m, s.writeModels(ctx, brandID, append(brand.Models, m))
}

// ReplaceModel swaps the array entry whose id matches m.ID. The entry's
// position is located fresh from the just-fetched document, never from a
// cached index. Name uniqueness excludes the model itself.
func (s *Store) ReplaceModel(ctx context.Context, brandID primitive.ObjectID, m models.SneakerModel) error {
	brand, err := s.GetByID(ctx, brandID)
	if err != nil {
		return err
	}

	idx := indexOfModel(brand.Models, m.ID)
	if idx < 0 {
		return ErrModelNotFound
	}
	if modelNameTaken(brand.Models, m.Name, m.ID) {
		return ErrDuplicateModelName
	}

	brand.Models[idx] = m
	return s.writeModels(ctx, brandID, brand.Models)
}

// RemoveModel deletes the entry whose id matches modelID and returns it so
// the caller can clean up its image file. Removal is by identifier, not by
// remembered index.
func (s *Store) RemoveModel(ctx context.Context, brandID primitive.ObjectID, modelID string) (models.SneakerModel, error) {
	brand, err := s.GetByID(ctx, brandID)
	if err != nil {
		return models.SneakerModel{}, err
	}

	idx := indexOfModel(brand.Models, modelID)
	if idx < 0 {
		return models.SneakerModel{}, ErrModelNotFound
	}

	removed := brand.Models[idx]
	remaining := append(brand.Models[:idx], brand.Models[idx+1:]...)
	return removed, s.writeModels(ctx, brandID, remaining)
}

// ModelNameTaken reports whether name is already used by a model of the
// brand, comparing case-insensitively. excludeID skips one model (the one
// being edited); pass "" to check them all.
func (s *Store) ModelNameTaken(ctx context.Context, brandID primitive.ObjectID, name, excludeID string) (bool, error) {
	brand, err := s.GetByID(ctx, brandID)
	if err != nil {
		return false, err
	}
	return modelNameTaken(brand.Models, name, excludeID), nil
}

func (s *Store) writeModels(ctx context.Context, brandID primitive.ObjectID, ms []models.SneakerModel) error {
	if ms == nil {
		ms = []models.SneakerModel{}
	}
	res, err := s.c.UpdateByID(ctx, brandID, bson.M{"$set": bson.M{
		"models":     ms,
		"updated_at": time.Now().UTC(),
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func indexOfModel(ms []models.SneakerModel, id string) int {
	for i := range ms {
		if ms[i].ID == id {
			return i
		}
	}
	return -1
}

func modelNameTaken(ms []models.SneakerModel, name, excludeID string) bool {
	folded := text.Fold(name)
	for i := range ms {
		if ms[i].ID == excludeID {
			continue
		}
		if text.Fold(ms[i].Name) == folded {
			return true
		}
	}
	return false
}
