// Command loaddata resets the brands collection and seeds it from a JSON
// file. Intended for development and demo environments; it deletes every
// existing brand first.
//
// Usage:
//
//	loaddata -file data/data.json
//
// Connection settings come from the same configuration sources as the
// server (SNEAKERDB_MONGO_URI, SNEAKERDB_MONGO_DATABASE, ...).
package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/sneakerdb/sneakerdb/internal/app/bootstrap"
	brandstore "github.com/sneakerdb/sneakerdb/internal/app/store/brands"
	"github.com/sneakerdb/sneakerdb/internal/app/system/indexes"
	"github.com/sneakerdb/sneakerdb/internal/app/system/validators"
	"github.com/sneakerdb/sneakerdb/internal/domain/models"
	"go.uber.org/zap"
)

// seedBrand is the JSON shape of one brand in the seed file.
type seedBrand struct {
	Name          string      `json:"name"`
	CountryOrigin string      `json:"country_origin"`
	FoundedYear   int         `json:"founded_year"`
	Description   string      `json:"description"`
	ImageFilename string      `json:"image_filename"`
	Models        []seedModel `json:"models"`
}

type seedModel struct {
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Description   string  `json:"description"`
	ReleaseYear   int     `json:"release_year"`
	Price         float64 `json:"price"`
	AverageRating float64 `json:"average_rating"`
	Colorway      string  `json:"colorway"`
	SizeRange     string  `json:"size_range"`
	ImageFilename string  `json:"image_filename"`
}

func main() {
	file := flag.String("file", "data/data.json", "path to the seed JSON file")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(*file, logger); err != nil {
		logger.Fatal("load failed", zap.Error(err))
	}
}

func run(file string, logger *zap.Logger) error {
	raw, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	var seeds []seedBrand
	if err := json.Unmarshal(raw, &seeds); err != nil {
		return err
	}

	coreCfg, appCfg, err := bootstrap.LoadConfig(logger)
	if err != nil {
		return err
	}
	if err := bootstrap.ValidateConfig(coreCfg, appCfg, logger); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	deps, err := bootstrap.ConnectDB(ctx, coreCfg, appCfg, logger)
	if err != nil {
		return err
	}
	defer deps.MongoClient.Disconnect(ctx)

	if err := validators.EnsureAll(ctx, deps.MongoDatabase); err != nil {
		return err
	}
	if err := indexes.EnsureAll(ctx, deps.MongoDatabase); err != nil {
		return err
	}

	store := brandstore.New(deps.MongoDatabase)
	if err := store.DeleteAll(ctx); err != nil {
		return err
	}
	logger.Info("cleared brands collection")

	for _, sb := range seeds {
		brand, err := store.Create(ctx, models.Brand{
			Name:          sb.Name,
			CountryOrigin: sb.CountryOrigin,
			FoundedYear:   sb.FoundedYear,
			Description:   sb.Description,
			ImageFilename: sb.ImageFilename,
		})
		if err != nil {
			return err
		}
		for _, sm := range sb.Models {
			if _, err := store.AppendModel(ctx, brand.ID, models.SneakerModel{
				Name:          sm.Name,
				Category:      sm.Category,
				Description:   sm.Description,
				ReleaseYear:   sm.ReleaseYear,
				Price:         sm.Price,
				AverageRating: sm.AverageRating,
				Colorway:      sm.Colorway,
				SizeRange:     sm.SizeRange,
				ImageFilename: sm.ImageFilename,
			}); err != nil {
				return err
			}
		}
		logger.Info("seeded brand",
			zap.String("name", brand.Name),
			zap.Int("models", len(sb.Models)))
	}

	logger.Info("seed complete", zap.Int("brands", len(seeds)))
	return nil
}
