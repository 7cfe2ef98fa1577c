package webutil

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestIsAJAX(t *testing.T) {
	r := httptest.NewRequest("POST", "/brand/new", nil)
	if IsAJAX(r) {
		t.Error("plain request should not be AJAX")
	}

	r.Header.Set("X-Requested-With", "XMLHttpRequest")
	if !IsAJAX(r) {
		t.Error("request with header should be AJAX")
	}

	r.Header.Set("X-Requested-With", "fetch")
	if IsAJAX(r) {
		t.Error("other header values should not count as AJAX")
	}
}

func TestJSONError(t *testing.T) {
	rec := httptest.NewRecorder()
	JSONError(rec, 400, "Ya existe una marca con ese nombre.")

	if rec.Code != 400 {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body["success"] != false {
		t.Error("success should be false")
	}
	if body["message"] != "Ya existe una marca con ese nombre." {
		t.Errorf("message = %v", body["message"])
	}
}

func TestJSONSuccess(t *testing.T) {
	rec := httptest.NewRecorder()
	JSONSuccess(rec, map[string]any{"brandId": "abc123"})

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body["success"] != true {
		t.Error("success should be true")
	}
	if body["brandId"] != "abc123" {
		t.Errorf("brandId = %v", body["brandId"])
	}
}

func TestDecodeJSONBody(t *testing.T) {
	r := httptest.NewRequest("POST", "/api/check-brand-name", strings.NewReader(`{"name":"Nike"}`))
	var in struct {
		Name string `json:"name"`
	}
	if err := DecodeJSONBody(r, &in); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if in.Name != "Nike" {
		t.Errorf("Name = %q", in.Name)
	}

	r = httptest.NewRequest("POST", "/api/check-brand-name", strings.NewReader(`{broken`))
	if err := DecodeJSONBody(r, &in); err == nil {
		t.Error("expected error for malformed body")
	}
}
