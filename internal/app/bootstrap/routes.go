// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	apifeature "github.com/sneakerdb/sneakerdb/internal/app/features/api"
	brandsfeature "github.com/sneakerdb/sneakerdb/internal/app/features/brands"
	errorsfeature "github.com/sneakerdb/sneakerdb/internal/app/features/errors"
	healthfeature "github.com/sneakerdb/sneakerdb/internal/app/features/health"
	homefeature "github.com/sneakerdb/sneakerdb/internal/app/features/home"
	modelsfeature "github.com/sneakerdb/sneakerdb/internal/app/features/models"
	"github.com/sneakerdb/sneakerdb/internal/app/system/flash"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/storage"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: any DB or backend clients bundled in DBDeps
//   - logger: the fully configured zap.Logger for this app
//
// SneakerDB initializes the template engine, the flash-message store, and
// the upload storage backend, then mounts feature routers for the catalog:
// home (listing), brands, models, the JSON API, and health.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	// Flash messages ride a signed cookie; secure in production.
	secure := coreCfg.Env == "prod"
	flashes := flash.New(appCfg.SessionKey, secure, logger)

	// Uploaded brand and model images live on local disk and are served
	// back under StorageLocalURL.
	uploads, err := storage.NewLocal(storage.LocalConfig{
		BasePath: appCfg.StorageLocalPath,
		BaseURL:  appCfg.StorageLocalURL,
	})
	if err != nil {
		logger.Error("upload storage init failed", zap.Error(err))
		return nil, err
	}

	// Create error logger for handlers.
	errLog := errorsfeature.NewErrorLogger(logger)

	r := chi.NewRouter()
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		errorsfeature.RenderNotFound(w, r, "Página no encontrada.", "/")
	})

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Uploaded images
	r.Handle(appCfg.StorageLocalURL+"/*", fileserver.Handler(appCfg.StorageLocalURL, appCfg.StorageLocalPath))

	// Brand listing with search, category filter, and pagination
	homeHandler := homefeature.NewHandler(deps.MongoDatabase, flashes, errLog, logger)
	r.Get("/", homeHandler.ServeIndex)
	r.Get("/index", homeHandler.ServeIndex)

	// Brand CRUD with the model subrouter nested under /brand/{id}/model
	modelsHandler := modelsfeature.NewHandler(deps.MongoDatabase, uploads, flashes, errLog, appCfg.MaxUploadMB, logger)
	brandsHandler := brandsfeature.NewHandler(deps.MongoDatabase, uploads, flashes, errLog, appCfg.MaxUploadMB, logger)
	r.Mount("/brand", brandsfeature.Routes(brandsHandler, modelsHandler))

	// Model images addressed by model id alone
	r.Mount("/brand.models", modelsfeature.ImageRoutes(modelsHandler))

	// JSON API: listing feed and live uniqueness probes
	apiHandler := apifeature.NewHandler(deps.MongoDatabase, errLog, logger)
	r.Mount("/api", apifeature.Routes(apiHandler))

	return r, nil
}
