package snapshot

import (
	"context"
	"testing"
	"time"

	"qbank/internal/dataset"
	"qbank/internal/question"
	"qbank/internal/testutil"
)

const testTimeout = 5 * time.Second

var testDrivers = []struct {
	driver Driver
	dsn    string
}{
	{driver: DriverDuckDB, dsn: ""},
	{driver: DriverSQLite, dsn: ":memory:"},
}

// openTestStore opens an in-memory store with the schema applied.
func openTestStore(t *testing.T, driver Driver, dsn string) (*Store, context.Context) {
	t.Helper()
	ctx := testutil.Context(t, testTimeout)
	store, err := Open(ctx, driver, dsn)
	if err != nil {
		t.Fatalf("open %s: %v", driver, err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store, ctx
}

func loadDataset(t *testing.T) *question.Collection {
	t.Helper()
	collection, err := dataset.Load()
	if err != nil {
		t.Fatalf("load dataset: %v", err)
	}
	return collection
}
