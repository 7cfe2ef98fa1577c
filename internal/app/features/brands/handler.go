// internal/app/features/brands/handler.go
package brands

import (
	uierrors "github.com/sneakerdb/sneakerdb/internal/app/features/errors"
	"github.com/sneakerdb/sneakerdb/internal/app/system/flash"
	"github.com/dalemusser/waffle/pantry/storage"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for brand CRUD.
type Handler struct {
	DB          *mongo.Database
	Storage     storage.Store
	Flash       *flash.Store
	ErrLog      *uierrors.ErrorLogger
	MaxUploadMB int
	Log         *zap.Logger
}

// NewHandler constructs a brands handler bound to its backends.
func NewHandler(db *mongo.Database, store storage.Store, flashes *flash.Store, errLog *uierrors.ErrorLogger, maxUploadMB int, logger *zap.Logger) *Handler {
	return &Handler{
		DB:          db,
		Storage:     store,
		Flash:       flashes,
		ErrLog:      errLog,
		MaxUploadMB: maxUploadMB,
		Log:         logger,
	}
}

func (h *Handler) maxUploadBytes() int64 {
	return int64(h.MaxUploadMB) << 20
}
