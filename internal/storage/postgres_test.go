package storage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tripflow/backend/internal/storage"
	"github.com/tripflow/backend/testutil"
)

// newTestPostgres opens a transaction against the test database and returns a
// Postgres store backed by it. The transaction is rolled back when the test
// finishes, giving free per-test isolation.
//
// Skipped automatically when TEST_DATABASE_URL is not set.
func newTestPostgres(t *testing.T) *storage.Postgres {
	t.Helper()
	pool := testutil.NewPool(t)

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err, "begin transaction")

	t.Cleanup(func() {
		_ = tx.Rollback(context.Background())
	})

	return storage.NewPostgres(tx)
}

func TestPostgres_Contract(t *testing.T) {
	runStoreContract(t, newTestPostgres(t))
}

func TestPostgres_UpsertKeepsSingleRow(t *testing.T) {
	st := newTestPostgres(t)
	ctx := context.Background()

	for _, v := range []string{"a", "b", "c"} {
		require.NoError(t, st.Save(ctx, "@trips", v))
	}

	got, ok, err := st.Load(ctx, "@trips")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "c", got)
}
