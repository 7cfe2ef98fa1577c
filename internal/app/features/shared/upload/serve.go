package upload

import (
	"context"
	"net/http"
	"time"

	"github.com/dalemusser/waffle/pantry/storage"
	"go.uber.org/zap"
)

// Serve streams a stored file to the client. Local storage is served
// straight off disk; other backends redirect to a short-lived signed URL.
func Serve(ctx context.Context, w http.ResponseWriter, r *http.Request, store storage.Store, path string, log *zap.Logger) {
	if local, ok := store.(*storage.Local); ok {
		fullPath, err := local.GetFullPath(path)
		if err != nil {
			log.Error("resolve image path failed",
				zap.String("path", path),
				zap.Error(err))
			http.NotFound(w, r)
			return
		}
		http.ServeFile(w, r, fullPath)
		return
	}

	signedURL, err := store.PresignedURL(ctx, path, &storage.PresignOptions{
		Expires: 15 * time.Minute,
	})
	if err != nil {
		log.Error("presign image URL failed",
			zap.String("path", path),
			zap.Error(err))
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, signedURL, http.StatusFound)
}
