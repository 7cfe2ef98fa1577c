// internal/app/features/api/handler_test.go
package api_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/sneakerdb/sneakerdb/internal/app/features/api"
	uierrors "github.com/sneakerdb/sneakerdb/internal/app/features/errors"
	"github.com/sneakerdb/sneakerdb/internal/app/system/indexes"
	"github.com/sneakerdb/sneakerdb/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*api.Handler, *mongo.Database) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("ensure indexes: %v", err)
	}

	logger := zap.NewNop()
	return api.NewHandler(db, uierrors.NewErrorLogger(logger), logger), db
}

// Wire shapes of the JSON endpoints, declared here so the tests read
// responses the way a browser client does.
type brandsPage struct {
	Items []struct {
		Name string `json:"name"`
	} `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	TotalPages int   `json:"totalPages"`
}

type availability struct {
	Available bool `json:"available"`
}

func TestServeBrands_Pagination(t *testing.T) {
	h, db := newTestHandler(t)
	f := testutil.NewFixtures(t, db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	names := []string{"Adidas", "Asics", "Converse", "Fila", "New Balance", "Nike", "Puma", "Reebok", "Saucony", "Vans"}
	for _, name := range names {
		f.CreateBrand(ctx, name)
	}

	req := testutil.NewRequest("GET", "/api/brands?page=2")
	rec := testutil.NewRecorder()
	h.ServeBrands(rec, req)

	rec.AssertStatus(t, 200)
	rec.AssertJSONContentType(t)

	var payload brandsPage
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if payload.Total != 10 {
		t.Errorf("total = %d, want 10", payload.Total)
	}
	if payload.Page != 2 {
		t.Errorf("page = %d, want 2", payload.Page)
	}
	if payload.TotalPages != 2 {
		t.Errorf("totalPages = %d, want 2", payload.TotalPages)
	}
	if len(payload.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(payload.Items))
	}
	if payload.Items[0].Name != "Saucony" {
		t.Errorf("first item = %q, want Saucony", payload.Items[0].Name)
	}
}

func TestServeBrands_PageClampedAndFiltered(t *testing.T) {
	h, db := newTestHandler(t)
	f := testutil.NewFixtures(t, db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	nike := f.CreateBrand(ctx, "Nike")
	f.AddModel(ctx, nike.ID, testutil.NewModel("Air Max 90", "Casual"))
	f.CreateBrand(ctx, "Adidas")

	// q matches model names too; page 99 clamps to the last page.
	req := testutil.NewRequest("GET", "/api/brands?q=air+max&page=99")
	rec := testutil.NewRecorder()
	h.ServeBrands(rec, req)

	rec.AssertStatus(t, 200)

	var payload brandsPage
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if payload.Total != 1 {
		t.Fatalf("total = %d, want 1", payload.Total)
	}
	if payload.Page != 1 {
		t.Errorf("page = %d, want 1", payload.Page)
	}
	if payload.Items[0].Name != "Nike" {
		t.Errorf("item = %q, want Nike", payload.Items[0].Name)
	}
}

func TestServeBrands_EmptyResult(t *testing.T) {
	h, _ := newTestHandler(t)

	req := testutil.NewRequest("GET", "/api/brands?q=nomatch")
	rec := testutil.NewRecorder()
	h.ServeBrands(rec, req)

	rec.AssertStatus(t, 200)
	rec.AssertContains(t, `"items":[]`)
	rec.AssertContains(t, `"total":0`)
}

func TestCheckBrandName(t *testing.T) {
	h, db := newTestHandler(t)
	f := testutil.NewFixtures(t, db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	nike := f.CreateBrand(ctx, "Nike")

	cases := []struct {
		name      string
		body      string
		available bool
	}{
		{"taken", `{"name":"Nike"}`, false},
		{"free", `{"name":"Puma"}`, true},
		{"case differs from taken", `{"name":"NIKE"}`, true},
		{"own name excluded", `{"name":"Nike","excludeBrandId":"` + nike.ID.Hex() + `"}`, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := testutil.NewAJAXRequest("POST", "/api/check-brand-name", strings.NewReader(tc.body))
			rec := testutil.NewRecorder()
			h.CheckBrandName(rec, req)

			rec.AssertStatus(t, 200)

			var resp availability
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if resp.Available != tc.available {
				t.Errorf("available = %v, want %v", resp.Available, tc.available)
			}
		})
	}
}

func TestCheckBrandName_BadInput(t *testing.T) {
	h, _ := newTestHandler(t)

	cases := []struct {
		name string
		body string
	}{
		{"empty name", `{"name":"  "}`},
		{"malformed json", `{`},
		{"bad exclude id", `{"name":"Nike","excludeBrandId":"nope"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := testutil.NewAJAXRequest("POST", "/api/check-brand-name", strings.NewReader(tc.body))
			rec := testutil.NewRecorder()
			h.CheckBrandName(rec, req)

			rec.AssertStatus(t, 400)
		})
	}
}

func TestCheckModelName(t *testing.T) {
	h, db := newTestHandler(t)
	f := testutil.NewFixtures(t, db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	nike := f.CreateBrand(ctx, "Nike")
	adidas := f.CreateBrand(ctx, "Adidas")
	airMax := f.AddModel(ctx, nike.ID, testutil.NewModel("Air Max 90", "Casual"))

	cases := []struct {
		name      string
		body      string
		available bool
	}{
		{"taken in brand", `{"name":"Air Max 90","brandId":"` + nike.ID.Hex() + `"}`, false},
		{"taken case-insensitively", `{"name":"AIR MAX 90","brandId":"` + nike.ID.Hex() + `"}`, false},
		{"free in other brand", `{"name":"Air Max 90","brandId":"` + adidas.ID.Hex() + `"}`, true},
		{"own name excluded", `{"name":"Air Max 90","brandId":"` + nike.ID.Hex() + `","excludeModelId":"` + airMax.ID + `"}`, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := testutil.NewAJAXRequest("POST", "/api/check-model-name", strings.NewReader(tc.body))
			rec := testutil.NewRecorder()
			h.CheckModelName(rec, req)

			rec.AssertStatus(t, 200)

			var resp availability
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if resp.Available != tc.available {
				t.Errorf("available = %v, want %v", resp.Available, tc.available)
			}
		})
	}
}

func TestCheckModelName_UnknownBrand(t *testing.T) {
	h, _ := newTestHandler(t)

	body := `{"name":"Air Max 90","brandId":"aaaaaaaaaaaaaaaaaaaaaaaa"}`
	req := testutil.NewAJAXRequest("POST", "/api/check-model-name", strings.NewReader(body))
	rec := testutil.NewRecorder()
	h.CheckModelName(rec, req)

	rec.AssertStatus(t, 404)
}
