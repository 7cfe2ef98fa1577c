// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"github.com/sneakerdb/sneakerdb/internal/app/system/webutil"
	"go.uber.org/zap"
)

// ErrorLogger couples logging with user-facing error responses so handlers
// can report a failure in one call. The log message carries the detail; the
// user message stays generic.
type ErrorLogger struct {
	log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger writing to the given logger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{log: logger}
}

// LogServerError logs err at error level and responds with a 500. AJAX
// requests get a JSON body; everything else gets the error page with a link
// back to backURL ("/" when empty).
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg, backURL string) {
	e.log.Error(logMsg,
		zap.String("path", r.URL.Path),
		zap.String("method", r.Method),
		zap.Error(err))

	if webutil.IsAJAX(r) {
		webutil.JSONError(w, http.StatusInternalServerError, userMsg)
		return
	}
	RenderServerError(w, r, userMsg, backURL)
}

// LogBadRequest logs err at warn level and responds with a 400.
func (e *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg, backURL string) {
	e.log.Warn(logMsg,
		zap.String("path", r.URL.Path),
		zap.String("method", r.Method),
		zap.Error(err))

	if webutil.IsAJAX(r) {
		webutil.JSONError(w, http.StatusBadRequest, userMsg)
		return
	}
	RenderBadRequest(w, r, userMsg, backURL)
}

// LogNotFound logs at info level and responds with a 404.
func (e *ErrorLogger) LogNotFound(w http.ResponseWriter, r *http.Request, logMsg, userMsg, backURL string) {
	e.log.Info(logMsg,
		zap.String("path", r.URL.Path),
		zap.String("method", r.Method))

	if webutil.IsAJAX(r) {
		webutil.JSONError(w, http.StatusNotFound, userMsg)
		return
	}
	RenderNotFound(w, r, userMsg, backURL)
}
