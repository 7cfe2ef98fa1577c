// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for SneakerDB.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, storage_local_path, etc.
//   - Environment variables: SNEAKERDB_MONGO_URI, SNEAKERDB_STORAGE_LOCAL_PATH, etc.
//   - Command-line flags: --mongo_uri, --storage_local_path, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "sneakers_db", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	{Name: "session_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Flash cookie signing key (must be strong in production)"},

	// Image upload storage
	{Name: "storage_local_path", Default: "./uploads", Desc: "Directory uploaded images are written to"},
	{Name: "storage_local_url", Default: "/uploads", Desc: "URL prefix uploaded images are served under"},
	{Name: "max_upload_mb", Default: 8, Desc: "Per-file upload size cap in megabytes"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "SNEAKERDB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		SessionKey: appValues.String("session_key"),

		StorageLocalPath: appValues.String("storage_local_path"),
		StorageLocalURL:  appValues.String("storage_local_url"),
		MaxUploadMB:      appValues.Int("max_upload_mb"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// The MongoDB URI format is checked here so configuration mistakes surface
// before the first connection attempt.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	if appCfg.StorageLocalPath == "" {
		return fmt.Errorf("storage_local_path must not be empty")
	}
	if appCfg.MaxUploadMB <= 0 {
		return fmt.Errorf("max_upload_mb must be positive, got %d", appCfg.MaxUploadMB)
	}

	return nil
}
