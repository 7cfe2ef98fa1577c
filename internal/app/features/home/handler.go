// internal/app/features/home/handler.go
package home

import (
	uierrors "github.com/sneakerdb/sneakerdb/internal/app/features/errors"
	"github.com/sneakerdb/sneakerdb/internal/app/system/flash"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the brand listing page.
type Handler struct {
	DB     *mongo.Database
	Flash  *flash.Store
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

func NewHandler(db *mongo.Database, flashes *flash.Store, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:     db,
		Flash:  flashes,
		ErrLog: errLog,
		Log:    logger,
	}
}
