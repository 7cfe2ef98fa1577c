package flash

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

func TestAddThenPop(t *testing.T) {
	s := New("test-signing-key-0123456789abcdef", false, zap.NewNop())

	// First request queues the flash.
	r1 := httptest.NewRequest("POST", "/brand/new", nil)
	w1 := httptest.NewRecorder()
	s.Add(w1, r1, "Marca creada.")

	cookies := w1.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("expected a session cookie to be set")
	}

	// Second request carries the cookie and pops the flash.
	r2 := httptest.NewRequest("GET", "/", nil)
	for _, c := range cookies {
		r2.AddCookie(c)
	}
	w2 := httptest.NewRecorder()
	msgs := s.Pop(w2, r2)
	if len(msgs) != 1 || msgs[0] != "Marca creada." {
		t.Fatalf("Pop = %v, want [Marca creada.]", msgs)
	}
}

func TestPopEmpty(t *testing.T) {
	s := New("test-signing-key-0123456789abcdef", false, zap.NewNop())
	r := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	if msgs := s.Pop(w, r); msgs != nil {
		t.Errorf("Pop on fresh request = %v, want nil", msgs)
	}
}

func TestTamperedCookieIgnored(t *testing.T) {
	s := New("test-signing-key-0123456789abcdef", false, zap.NewNop())
	r := httptest.NewRequest("GET", "/", nil)
	r.AddCookie(&http.Cookie{Name: "sneakerdb-flash", Value: "garbage"})
	w := httptest.NewRecorder()
	if msgs := s.Pop(w, r); len(msgs) != 0 {
		t.Errorf("tampered cookie produced flashes: %v", msgs)
	}
}
