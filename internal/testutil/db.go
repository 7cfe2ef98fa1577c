package testutil

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// SetupTestDB connects to the MongoDB instance named by SNEAKERDB_TEST_MONGO_URI
// and returns a fresh database for the test. Tests that need Mongo are skipped
// when the variable is unset so the rest of the suite runs anywhere.
//
// Each call gets its own database (named after the test) which is dropped on
// cleanup, so tests can run in parallel without stepping on each other.
func SetupTestDB(t *testing.T) *mongo.Database {
	t.Helper()

	uri := os.Getenv("SNEAKERDB_TEST_MONGO_URI")
	if uri == "" {
		t.Skip("SNEAKERDB_TEST_MONGO_URI not set; skipping MongoDB test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Fatalf("failed to connect to test MongoDB: %v", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		t.Fatalf("failed to ping test MongoDB: %v", err)
	}

	dbName := fmt.Sprintf("sneakerdb_test_%s_%d", sanitizeDBName(t.Name()), time.Now().UnixNano())
	db := client.Database(dbName)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := db.Drop(ctx); err != nil {
			t.Logf("failed to drop test database %s: %v", dbName, err)
		}
		_ = client.Disconnect(ctx)
	})

	return db
}

// TestContext returns a context with a deadline generous enough for any
// single store operation under test.
func TestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 30*time.Second)
}

// sanitizeDBName strips characters MongoDB rejects in database names.
func sanitizeDBName(name string) string {
	out := make([]byte, 0, len(name))
	for i := 0; i < len(name) && len(out) < 40; i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			out = append(out, c)
		default:
			out = append(out, '_')
		}
	}
	return string(out)
}
