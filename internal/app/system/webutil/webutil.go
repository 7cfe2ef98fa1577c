// Package webutil distinguishes AJAX callers from normal form posts and
// writes the JSON envelopes the client controller expects.
//
// Convention: any request carrying the header X-Requested-With:
// XMLHttpRequest receives JSON ({success, message, ...}); everything else
// gets a rendered HTML page or redirect.
package webutil

import (
	"encoding/json"
	"net/http"
)

// IsAJAX reports whether the request came from the browser-side controller.
func IsAJAX(r *http.Request) bool {
	return r.Header.Get("X-Requested-With") == "XMLHttpRequest"
}

// JSON writes v with the given status. Encoding errors are swallowed; the
// header is already out by then.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// JSONError writes the {success:false, message} failure envelope.
func JSONError(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]any{
		"success": false,
		"message": message,
	})
}

// JSONSuccess writes a {success:true, ...} envelope merged with extra fields.
func JSONSuccess(w http.ResponseWriter, extra map[string]any) {
	payload := map[string]any{"success": true}
	for k, v := range extra {
		payload[k] = v
	}
	JSON(w, http.StatusOK, payload)
}

// DecodeJSONBody decodes a small JSON request body (the uniqueness probes)
// into dst. The size cap keeps a hostile body from ballooning memory.
func DecodeJSONBody(r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, 1<<16))
	return dec.Decode(dst)
}
