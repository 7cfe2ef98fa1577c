// internal/app/features/api/handler.go
package api

import (
	"net/http"

	uierrors "github.com/sneakerdb/sneakerdb/internal/app/features/errors"
	"github.com/sneakerdb/sneakerdb/internal/app/system/webutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the JSON endpoints behind the listing feed and the live
// name-availability checks the forms run while the user types.
type Handler struct {
	DB     *mongo.Database
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:     db,
		ErrLog: errLog,
		Log:    logger,
	}
}

// serverError logs and answers with the generic JSON error body. API
// clients always get JSON, whether or not they sent the AJAX header.
func (h *Handler) serverError(w http.ResponseWriter, logMsg string, err error) {
	h.Log.Error(logMsg, zap.Error(err))
	webutil.JSONError(w, http.StatusInternalServerError, "Se ha producido un error en el servidor.")
}
