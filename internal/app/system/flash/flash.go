// Package flash carries one-shot notices ("Marca creada.", "Modelo
// eliminado.") across the redirect after a successful non-AJAX form post.
// Backed by a signed cookie session; AJAX callers get their confirmation in
// the JSON payload instead and never touch this.
package flash

import (
	"net/http"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

const sessionName = "sneakerdb-flash"

// Store wraps a cookie session store for flash messages.
type Store struct {
	store *sessions.CookieStore
	log   *zap.Logger
}

// New builds a flash store signed with key. An empty key falls back to a
// random per-process key, which is fine for dev but drops flashes across
// restarts.
func New(key string, secure bool, logger *zap.Logger) *Store {
	b := []byte(key)
	if len(b) == 0 {
		b = securecookie.GenerateRandomKey(32)
	}
	cs := sessions.NewCookieStore(b)
	cs.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   300,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &Store{store: cs, log: logger}
}

// Add queues a message to show on the next page load.
func (s *Store) Add(w http.ResponseWriter, r *http.Request, msg string) {
	sess, err := s.store.Get(r, sessionName)
	if err != nil {
		// A tampered or stale cookie decodes to a fresh session; keep going.
		s.log.Debug("flash session reset", zap.Error(err))
	}
	sess.AddFlash(msg)
	if err := sess.Save(r, w); err != nil {
		s.log.Warn("flash save failed", zap.Error(err))
	}
}

// Pop returns and clears any queued messages.
func (s *Store) Pop(w http.ResponseWriter, r *http.Request) []string {
	sess, err := s.store.Get(r, sessionName)
	if err != nil {
		s.log.Debug("flash session reset", zap.Error(err))
	}
	raw := sess.Flashes()
	if len(raw) == 0 {
		return nil
	}
	if err := sess.Save(r, w); err != nil {
		s.log.Warn("flash save failed", zap.Error(err))
	}
	msgs := make([]string, 0, len(raw))
	for _, f := range raw {
		if m, ok := f.(string); ok {
			msgs = append(msgs, m)
		}
	}
	return msgs
}
