// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"fmt"
	"os"

	"github.com/sneakerdb/sneakerdb/internal/app/resources"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built. It is the
// place to load shared resources (like templates), warm caches, or perform
// any app-wide setup that depends on config and backends.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	resources.LoadSharedTemplates()

	// The upload directory must exist before the first image is stored.
	if err := os.MkdirAll(appCfg.StorageLocalPath, 0o755); err != nil {
		return fmt.Errorf("create upload directory %s: %w", appCfg.StorageLocalPath, err)
	}

	return nil
}
