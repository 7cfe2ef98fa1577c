package testutil

import (
	"os"
	"strings"
	"testing"

	"github.com/dalemusser/waffle/pantry/storage"
)

// PutStoredFile writes placeholder image bytes at path in the storage
// backend, for tests that need a pre-existing stored image.
func PutStoredFile(t *testing.T, store storage.Store, path string) {
	t.Helper()

	ctx, cancel := TestContext()
	defer cancel()

	err := store.Put(ctx, path, strings.NewReader("fake image bytes"), &storage.PutOptions{
		ContentType: "image/png",
	})
	if err != nil {
		t.Fatalf("failed to seed stored file %s: %v", path, err)
	}
}

// StoredFileExists reports whether path exists on the local storage backend.
func StoredFileExists(t *testing.T, store storage.Store, path string) bool {
	t.Helper()

	local, ok := store.(*storage.Local)
	if !ok {
		t.Fatal("StoredFileExists requires local storage")
	}
	full, err := local.GetFullPath(path)
	if err != nil {
		t.Fatalf("failed to resolve stored file %s: %v", path, err)
	}
	_, err = os.Stat(full)
	return err == nil
}
