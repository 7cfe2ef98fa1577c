package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/sneakerdb/sneakerdb/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	return WithChiURLParams(r, key, value)
}

// WithChiURLParams adds chi URL parameters as key/value pairs. Handlers for
// nested routes read more than one parameter, and each call to
// WithChiURLParam replaces the route context, so set them together.
func WithChiURLParams(r *http.Request, pairs ...string) *http.Request {
	rctx := chi.NewRouteContext()
	for i := 0; i+1 < len(pairs); i += 2 {
		rctx.URLParams.Add(pairs[i], pairs[i+1])
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateBrand creates a test brand with the given name and no models.
// Returns the created brand with its generated ID.
func (f *Fixtures) CreateBrand(ctx context.Context, name string) models.Brand {
	f.t.Helper()

	now := time.Now().UTC()
	brand := models.Brand{
		ID:            primitive.NewObjectID(),
		Name:          name,
		NameCI:        text.Fold(name),
		CountryOrigin: "Estados Unidos",
		FoundedYear:   1980,
		Description:   "Marca de zapatillas creada para pruebas automatizadas.",
		Models:        []models.SneakerModel{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	_, err := f.db.Collection("brands").InsertOne(ctx, brand)
	if err != nil {
		f.t.Fatalf("failed to create test brand: %v", err)
	}

	return brand
}

// CreateBrandWithDetails creates a test brand with full details.
func (f *Fixtures) CreateBrandWithDetails(ctx context.Context, name, country string, founded int, description string) models.Brand {
	f.t.Helper()

	now := time.Now().UTC()
	brand := models.Brand{
		ID:            primitive.NewObjectID(),
		Name:          name,
		NameCI:        text.Fold(name),
		CountryOrigin: country,
		FoundedYear:   founded,
		Description:   description,
		Models:        []models.SneakerModel{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	_, err := f.db.Collection("brands").InsertOne(ctx, brand)
	if err != nil {
		f.t.Fatalf("failed to create test brand: %v", err)
	}

	return brand
}

// NewModel returns an in-memory sneaker model with valid field values.
// The id is assigned so the model can be embedded directly in a brand
// document; store AppendModel ignores it and assigns its own.
func NewModel(name, category string) models.SneakerModel {
	return models.SneakerModel{
		ID:          primitive.NewObjectID().Hex(),
		Name:        name,
		Category:    category,
		Description: "Modelo de pruebas automatizadas.",
		ReleaseYear: 2020,
		Price:       119.99,
	}
}

// SetBrandImage writes an image_filename onto an existing brand document
// directly, bypassing the store. Pair it with PutStoredFile so the stored
// file actually exists.
func (f *Fixtures) SetBrandImage(ctx context.Context, brandID primitive.ObjectID, path string) {
	f.t.Helper()

	_, err := f.db.Collection("brands").UpdateByID(ctx, brandID, map[string]any{
		"$set": map[string]any{"image_filename": path},
	})
	if err != nil {
		f.t.Fatalf("failed to set test brand image: %v", err)
	}
}

// AddModel embeds a model into an existing brand document directly,
// bypassing the store. Useful for seeding lookup tests.
func (f *Fixtures) AddModel(ctx context.Context, brandID primitive.ObjectID, m models.SneakerModel) models.SneakerModel {
	f.t.Helper()

	_, err := f.db.Collection("brands").UpdateByID(ctx, brandID, map[string]any{
		"$push": map[string]any{"models": m},
	})
	if err != nil {
		f.t.Fatalf("failed to embed test model: %v", err)
	}

	return m
}
