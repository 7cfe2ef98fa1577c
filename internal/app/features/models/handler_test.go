// internal/app/features/models/handler_test.go
package models_test

import (
	"testing"

	uierrors "github.com/sneakerdb/sneakerdb/internal/app/features/errors"
	modelsfeature "github.com/sneakerdb/sneakerdb/internal/app/features/models"
	brandstore "github.com/sneakerdb/sneakerdb/internal/app/store/brands"
	"github.com/sneakerdb/sneakerdb/internal/app/system/flash"
	"github.com/sneakerdb/sneakerdb/internal/app/system/indexes"
	"github.com/sneakerdb/sneakerdb/internal/testutil"
	"github.com/dalemusser/waffle/pantry/storage"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*modelsfeature.Handler, *mongo.Database, storage.Store) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("ensure indexes: %v", err)
	}

	uploads, err := storage.NewLocal(storage.LocalConfig{BasePath: t.TempDir(), BaseURL: "/uploads"})
	if err != nil {
		t.Fatalf("local storage: %v", err)
	}

	logger := zap.NewNop()
	flashes := flash.New("0123456789abcdef0123456789abcdef", false, logger)
	h := modelsfeature.NewHandler(db, uploads, flashes, uierrors.NewErrorLogger(logger), 8, logger)
	return h, db, uploads
}

func validModelForm() map[string]string {
	return map[string]string{
		"name":         "Air Max 90",
		"category":     "Casual",
		"description":  "Clásico de Nike con amortiguación visible.",
		"release_year": "1990",
		"price":        "149.99",
		"colorway":     "Infrared",
		"size_range":   "38-47",
	}
}

func TestHandleCreate_AJAX(t *testing.T) {
	h, db, _ := newTestHandler(t)
	f := testutil.NewFixtures(t, db)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	brand := f.CreateBrand(ctx, "Nike")

	req := testutil.AsAJAX(testutil.NewMultipartRequest(
		"/brand/"+brand.ID.Hex()+"/model/new", validModelForm()))
	req = testutil.WithChiURLParam(req, "id", brand.ID.Hex())
	rec := testutil.NewRecorder()
	h.HandleCreate(rec, req)

	rec.AssertStatus(t, 200)
	rec.AssertJSONContentType(t)
	rec.AssertContains(t, `"success":true`)
	rec.AssertContains(t, `"model"`)

	reloaded, err := brandstore.New(db).GetByID(ctx, brand.ID)
	if err != nil {
		t.Fatalf("reload brand: %v", err)
	}
	if len(reloaded.Models) != 1 {
		t.Fatalf("models = %d, want 1", len(reloaded.Models))
	}
	if reloaded.Models[0].Name != "Air Max 90" {
		t.Errorf("model name = %q, want Air Max 90", reloaded.Models[0].Name)
	}
}

func TestHandleCreate_AJAX_AcceptsZeroPrice(t *testing.T) {
	h, db, _ := newTestHandler(t)
	f := testutil.NewFixtures(t, db)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	brand := f.CreateBrand(ctx, "Nike")

	form := validModelForm()
	form["price"] = "0"
	req := testutil.AsAJAX(testutil.NewMultipartRequest(
		"/brand/"+brand.ID.Hex()+"/model/new", form))
	req = testutil.WithChiURLParam(req, "id", brand.ID.Hex())
	rec := testutil.NewRecorder()
	h.HandleCreate(rec, req)

	rec.AssertStatus(t, 200)

	reloaded, err := brandstore.New(db).GetByID(ctx, brand.ID)
	if err != nil {
		t.Fatalf("reload brand: %v", err)
	}
	if len(reloaded.Models) != 1 {
		t.Fatalf("models = %d, want 1", len(reloaded.Models))
	}
	if reloaded.Models[0].Price != 0 {
		t.Errorf("price = %v, want 0", reloaded.Models[0].Price)
	}
}

func TestHandleCreate_AJAX_DuplicateName(t *testing.T) {
	h, db, _ := newTestHandler(t)
	f := testutil.NewFixtures(t, db)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	brand := f.CreateBrand(ctx, "Nike")
	f.AddModel(ctx, brand.ID, testutil.NewModel("Air Max 90", "Casual"))

	req := testutil.AsAJAX(testutil.NewMultipartRequest(
		"/brand/"+brand.ID.Hex()+"/model/new", validModelForm()))
	req = testutil.WithChiURLParam(req, "id", brand.ID.Hex())
	rec := testutil.NewRecorder()
	h.HandleCreate(rec, req)

	rec.AssertStatus(t, 400)
	rec.AssertContains(t, "Ya existe un modelo con ese nombre en esta marca.")
}

func TestHandleCreate_AJAX_ValidationError(t *testing.T) {
	h, db, _ := newTestHandler(t)
	f := testutil.NewFixtures(t, db)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	brand := f.CreateBrand(ctx, "Nike")

	form := validModelForm()
	form["category"] = ""
	req := testutil.AsAJAX(testutil.NewMultipartRequest(
		"/brand/"+brand.ID.Hex()+"/model/new", form))
	req = testutil.WithChiURLParam(req, "id", brand.ID.Hex())
	rec := testutil.NewRecorder()
	h.HandleCreate(rec, req)

	rec.AssertStatus(t, 400)
	rec.AssertContains(t, "Selecciona una categoría.")
}

func TestHandleCreate_AJAX_UnknownBrand(t *testing.T) {
	h, _, _ := newTestHandler(t)

	req := testutil.AsAJAX(testutil.NewMultipartRequest(
		"/brand/aaaaaaaaaaaaaaaaaaaaaaaa/model/new", validModelForm()))
	req = testutil.WithChiURLParam(req, "id", "aaaaaaaaaaaaaaaaaaaaaaaa")
	rec := testutil.NewRecorder()
	h.HandleCreate(rec, req)

	rec.AssertStatus(t, 404)
}

func TestHandleEdit_AJAX(t *testing.T) {
	h, db, _ := newTestHandler(t)
	f := testutil.NewFixtures(t, db)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	brand := f.CreateBrand(ctx, "Nike")
	m := f.AddModel(ctx, brand.ID, testutil.NewModel("Air Max 90", "Casual"))

	form := validModelForm()
	form["name"] = "Air Max 95"
	form["price"] = "179.99"
	req := testutil.AsAJAX(testutil.NewMultipartRequest(
		"/brand/"+brand.ID.Hex()+"/model/"+m.ID+"/edit", form))
	req = testutil.WithChiURLParams(req, "id", brand.ID.Hex(), "modelID", m.ID)
	rec := testutil.NewRecorder()
	h.HandleEdit(rec, req)

	rec.AssertStatus(t, 200)
	rec.AssertContains(t, "Modelo actualizado correctamente.")

	reloaded, err := brandstore.New(db).GetByID(ctx, brand.ID)
	if err != nil {
		t.Fatalf("reload brand: %v", err)
	}
	got := reloaded.ModelByID(m.ID)
	if got == nil {
		t.Fatal("model lost its id during edit")
	}
	if got.Name != "Air Max 95" {
		t.Errorf("model name = %q, want Air Max 95", got.Name)
	}
	if got.Price != 179.99 {
		t.Errorf("price = %v, want 179.99", got.Price)
	}
}

func TestHandleEdit_KeepsImageWithoutUpload(t *testing.T) {
	h, db, uploads := newTestHandler(t)
	f := testutil.NewFixtures(t, db)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	brand := f.CreateBrand(ctx, "Nike")
	seeded := testutil.NewModel("Air Max 90", "Casual")
	seeded.ImageFilename = "images/2024/02/air-max-90.png"
	testutil.PutStoredFile(t, uploads, seeded.ImageFilename)
	m := f.AddModel(ctx, brand.ID, seeded)

	req := testutil.AsAJAX(testutil.NewMultipartRequest(
		"/brand/"+brand.ID.Hex()+"/model/"+m.ID+"/edit", validModelForm()))
	req = testutil.WithChiURLParams(req, "id", brand.ID.Hex(), "modelID", m.ID)
	rec := testutil.NewRecorder()
	h.HandleEdit(rec, req)

	rec.AssertStatus(t, 200)

	reloaded, err := brandstore.New(db).GetByID(ctx, brand.ID)
	if err != nil {
		t.Fatalf("reload brand: %v", err)
	}
	got := reloaded.ModelByID(m.ID)
	if got == nil {
		t.Fatal("model not found after edit")
	}
	if got.ImageFilename != "images/2024/02/air-max-90.png" {
		t.Errorf("image filename = %q, want it kept", got.ImageFilename)
	}
	if !testutil.StoredFileExists(t, uploads, "images/2024/02/air-max-90.png") {
		t.Error("stored image deleted by edit without upload")
	}
}

func TestHandleEdit_RemoveImageFlag(t *testing.T) {
	h, db, uploads := newTestHandler(t)
	f := testutil.NewFixtures(t, db)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	brand := f.CreateBrand(ctx, "Nike")
	seeded := testutil.NewModel("Air Max 90", "Casual")
	seeded.ImageFilename = "images/2024/02/air-max-90.png"
	testutil.PutStoredFile(t, uploads, seeded.ImageFilename)
	m := f.AddModel(ctx, brand.ID, seeded)

	form := validModelForm()
	form["remove_image"] = "on"
	req := testutil.AsAJAX(testutil.NewMultipartRequest(
		"/brand/"+brand.ID.Hex()+"/model/"+m.ID+"/edit", form))
	req = testutil.WithChiURLParams(req, "id", brand.ID.Hex(), "modelID", m.ID)
	rec := testutil.NewRecorder()
	h.HandleEdit(rec, req)

	rec.AssertStatus(t, 200)

	reloaded, err := brandstore.New(db).GetByID(ctx, brand.ID)
	if err != nil {
		t.Fatalf("reload brand: %v", err)
	}
	got := reloaded.ModelByID(m.ID)
	if got == nil {
		t.Fatal("model not found after edit")
	}
	if got.ImageFilename != "" {
		t.Errorf("image filename = %q, want cleared", got.ImageFilename)
	}
	if testutil.StoredFileExists(t, uploads, "images/2024/02/air-max-90.png") {
		t.Error("stored image still present after remove_image")
	}
}

func TestHandleEdit_ReplaceImageDeletesOld(t *testing.T) {
	h, db, uploads := newTestHandler(t)
	f := testutil.NewFixtures(t, db)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	brand := f.CreateBrand(ctx, "Nike")
	seeded := testutil.NewModel("Air Max 90", "Casual")
	seeded.ImageFilename = "images/2024/02/old-photo.png"
	testutil.PutStoredFile(t, uploads, seeded.ImageFilename)
	m := f.AddModel(ctx, brand.ID, seeded)

	req := testutil.AsAJAX(testutil.NewMultipartUpload(
		"/brand/"+brand.ID.Hex()+"/model/"+m.ID+"/edit", "model_image", "new-photo.png",
		[]byte("\x89PNG fake image bytes"), validModelForm()))
	req = testutil.WithChiURLParams(req, "id", brand.ID.Hex(), "modelID", m.ID)
	rec := testutil.NewRecorder()
	h.HandleEdit(rec, req)

	rec.AssertStatus(t, 200)

	reloaded, err := brandstore.New(db).GetByID(ctx, brand.ID)
	if err != nil {
		t.Fatalf("reload brand: %v", err)
	}
	got := reloaded.ModelByID(m.ID)
	if got == nil {
		t.Fatal("model not found after edit")
	}
	if got.ImageFilename == "" || got.ImageFilename == "images/2024/02/old-photo.png" {
		t.Errorf("image filename = %q, want a fresh stored path", got.ImageFilename)
	}
	if !testutil.StoredFileExists(t, uploads, got.ImageFilename) {
		t.Errorf("replacement file %q missing", got.ImageFilename)
	}
	if testutil.StoredFileExists(t, uploads, "images/2024/02/old-photo.png") {
		t.Error("old image still present after replacement")
	}
}

func TestHandleEdit_AJAX_DuplicateSiblingName(t *testing.T) {
	h, db, _ := newTestHandler(t)
	f := testutil.NewFixtures(t, db)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	brand := f.CreateBrand(ctx, "Nike")
	f.AddModel(ctx, brand.ID, testutil.NewModel("Air Force 1", "Casual"))
	m := f.AddModel(ctx, brand.ID, testutil.NewModel("Air Max 90", "Casual"))

	form := validModelForm()
	form["name"] = "Air Force 1"
	req := testutil.AsAJAX(testutil.NewMultipartRequest(
		"/brand/"+brand.ID.Hex()+"/model/"+m.ID+"/edit", form))
	req = testutil.WithChiURLParams(req, "id", brand.ID.Hex(), "modelID", m.ID)
	rec := testutil.NewRecorder()
	h.HandleEdit(rec, req)

	rec.AssertStatus(t, 400)
	rec.AssertContains(t, "Ya existe un modelo con ese nombre en esta marca.")
}

func TestHandleEdit_AJAX_UnknownModel(t *testing.T) {
	h, db, _ := newTestHandler(t)
	f := testutil.NewFixtures(t, db)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	brand := f.CreateBrand(ctx, "Nike")

	req := testutil.AsAJAX(testutil.NewMultipartRequest(
		"/brand/"+brand.ID.Hex()+"/model/ffffffffffffffffffffffff/edit", validModelForm()))
	req = testutil.WithChiURLParams(req, "id", brand.ID.Hex(), "modelID", "ffffffffffffffffffffffff")
	rec := testutil.NewRecorder()
	h.HandleEdit(rec, req)

	rec.AssertStatus(t, 404)
}

func TestHandleDelete_AJAX(t *testing.T) {
	h, db, _ := newTestHandler(t)
	f := testutil.NewFixtures(t, db)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	brand := f.CreateBrand(ctx, "Nike")
	m := f.AddModel(ctx, brand.ID, testutil.NewModel("Air Max 90", "Casual"))

	req := testutil.AsAJAX(testutil.NewMultipartRequest(
		"/brand/"+brand.ID.Hex()+"/model/"+m.ID+"/delete", nil))
	req = testutil.WithChiURLParams(req, "id", brand.ID.Hex(), "modelID", m.ID)
	rec := testutil.NewRecorder()
	h.HandleDelete(rec, req)

	rec.AssertStatus(t, 200)
	rec.AssertContains(t, `"success":true`)

	reloaded, err := brandstore.New(db).GetByID(ctx, brand.ID)
	if err != nil {
		t.Fatalf("reload brand: %v", err)
	}
	if len(reloaded.Models) != 0 {
		t.Errorf("models = %d, want 0", len(reloaded.Models))
	}
}

func TestHandleDelete_RemovesImageFile(t *testing.T) {
	h, db, uploads := newTestHandler(t)
	f := testutil.NewFixtures(t, db)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	brand := f.CreateBrand(ctx, "Nike")
	seeded := testutil.NewModel("Air Max 90", "Casual")
	seeded.ImageFilename = "images/2024/02/air-max-90.png"
	testutil.PutStoredFile(t, uploads, seeded.ImageFilename)
	m := f.AddModel(ctx, brand.ID, seeded)

	req := testutil.AsAJAX(testutil.NewMultipartRequest(
		"/brand/"+brand.ID.Hex()+"/model/"+m.ID+"/delete", nil))
	req = testutil.WithChiURLParams(req, "id", brand.ID.Hex(), "modelID", m.ID)
	rec := testutil.NewRecorder()
	h.HandleDelete(rec, req)

	rec.AssertStatus(t, 200)

	if testutil.StoredFileExists(t, uploads, "images/2024/02/air-max-90.png") {
		t.Error("model image still present after delete")
	}
}
