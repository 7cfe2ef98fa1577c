// internal/app/store/brands/brandstore.go
package brandstore

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/sneakerdb/sneakerdb/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrDuplicateBrand     = errors.New("a brand with this name already exists")
	ErrDuplicateModelName = errors.New("a model with this name already exists in this brand")
	ErrModelNotFound      = errors.New("model not found")
)

// Store owns the brands collection. Embedded models have no collection of
// their own: every model mutation goes through the parent document.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("brands")}
}

// Create inserts a brand, assigning its ID, folded name, and timestamps.
// The unique index on name makes duplicate detection race-free; note the
// index is case-sensitive, so "Nike" and "NIKE" are different brands.
func (s *Store) Create(ctx context.Context, brand models.Brand) (models.Brand, error) {
	now := time.Now().UTC()
	brand.ID = primitive.NewObjectID()
	brand.NameCI = text.Fold(brand.Name)
	if brand.Models == nil {
		brand.Models = []models.SneakerModel{}
	}
	brand.CreatedAt = now
	brand.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, brand); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Brand{}, ErrDuplicateBrand
		}
		return models.Brand{}, err
	}
	return brand, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Brand, error) {
	var brand models.Brand
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&brand); err != nil {
		return models.Brand{}, err
	}
	return brand, nil
}

// Update merges fields into the document ($set, partial update) and returns
// the post-update document. Callers pass only the scalar fields they changed;
// the models array is never touched here.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (models.Brand, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	for k, v := range fields {
		set[k] = v
	}
	if name, ok := fields["name"].(string); ok {
		set["name_ci"] = text.Fold(name)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Brand
	err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&updated)
	if err != nil {
		if wafflemongo.IsDup(err) {
			return models.Brand{}, ErrDuplicateBrand
		}
		return models.Brand{}, err
	}
	return updated, nil
}

// Delete removes a brand and returns the deleted document so the caller can
// cascade image-file cleanup. Returns mongo.ErrNoDocuments when the id does
// not resolve; callers must turn that into a not-found response.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (models.Brand, error) {
	var deleted models.Brand
	if err := s.c.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&deleted); err != nil {
		return models.Brand{}, err
	}
	return deleted, nil
}

// DeleteAll wipes the collection. Only the demo-data loader calls this.
func (s *Store) DeleteAll(ctx context.Context) error {
	_, err := s.c.DeleteMany(ctx, bson.M{})
	return err
}

// FindByName looks a brand up by exact, case-sensitive name. This is the
// uniqueness-probe path; its case-sensitivity matches the unique index.
func (s *Store) FindByName(ctx context.Context, name string) (models.Brand, error) {
	var brand models.Brand
	if err := s.c.FindOne(ctx, bson.M{"name": name}).Decode(&brand); err != nil {
		return models.Brand{}, err
	}
	return brand, nil
}

// NameExists reports whether a brand with the exact name exists.
func (s *Store) NameExists(ctx context.Context, name string) (bool, error) {
	err := s.c.FindOne(ctx, bson.M{"name": name}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// NameExistsForOther is the edit-form variant of NameExists: it ignores the
// brand being edited so it can keep its own name.
func (s *Store) NameExistsForOther(ctx context.Context, name string, excludeID primitive.ObjectID) (bool, error) {
	err := s.c.FindOne(ctx, bson.M{
		"name": name,
		"_id":  bson.M{"$ne": excludeID},
	}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Filter narrows List. Query matches brand names OR embedded model names
// case-insensitively; Category is an exact match against embedded model
// categories.
type Filter struct {
	Query    string
	Category string
}

func (f Filter) toBSON() bson.M {
	conds := []bson.M{}
	if f.Query != "" {
		rx := primitive.Regex{Pattern: regexp.QuoteMeta(f.Query), Options: "i"}
		conds = append(conds, bson.M{"$or": []bson.M{
			{"name": rx},
			{"models.name": rx},
		}})
	}
	if f.Category != "" {
		conds = append(conds, bson.M{"models.category": f.Category})
	}
	switch len(conds) {
	case 0:
		return bson.M{}
	case 1:
		return conds[0]
	default:
		return bson.M{"$and": conds}
	}
}

// List returns one page of brands plus the total match count and the page
// actually served. Pagination is offset-based; the requested page is clamped
// to [1, totalPages], so asking for a page past the end returns the last
// page rather than an empty one.
func (s *Store) List(ctx context.Context, f Filter, page, pageSize int) ([]models.Brand, int64, int, error) {
	filter := f.toBSON()

	total, err := s.Count(ctx, f)
	if err != nil {
		return nil, 0, 0, err
	}

	page = clampPage(page, total, pageSize)

	opts := options.Find().
		SetSort(bson.D{{Key: "name_ci", Value: 1}, {Key: "_id", Value: 1}}).
		SetSkip(int64(page-1) * int64(pageSize)).
		SetLimit(int64(pageSize))

	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, 0, err
	}
	defer cur.Close(ctx)

	brands := []models.Brand{}
	if err := cur.All(ctx, &brands); err != nil {
		return nil, 0, 0, err
	}
	return brands, total, page, nil
}

func clampPage(page int, total int64, pageSize int) int {
	if page < 1 {
		return 1
	}
	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	if totalPages < 1 {
		totalPages = 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// Count returns the number of brands matching the filter.
func (s *Store) Count(ctx context.Context, f Filter) (int64, error) {
	return s.c.CountDocuments(ctx, f.toBSON())
}
