package storage_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tripflow/backend/internal/storage"
)

// newTestMongo connects to the MongoDB instance named by TEST_MONGO_URL and
// clears the kv_records keys this suite touches. Skipped automatically when
// the variable is not set, so these integration tests are opt-in.
func newTestMongo(t *testing.T) *storage.Mongo {
	t.Helper()
	uri := os.Getenv("TEST_MONGO_URL")
	if uri == "" {
		t.Skip("TEST_MONGO_URL not set; skipping integration test")
	}

	ctx := context.Background()
	st, err := storage.ConnectMongo(ctx, uri)
	require.NoError(t, err, "connect")

	keys := []string{"@trips", "@onboarding", "@missing", "@doomed"}
	for _, k := range keys {
		require.NoError(t, st.Remove(ctx, k))
	}

	t.Cleanup(func() {
		for _, k := range keys {
			_ = st.Remove(ctx, k)
		}
		_ = st.Close(ctx)
	})

	return st
}

func TestMongo_Contract(t *testing.T) {
	runStoreContract(t, newTestMongo(t))
}
