// Package database builds *database.Client instances for integration tests.
package database

import (
	"context"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/require"

	"github.com/incident-ops/rcad/pkg/database"
	"github.com/incident-ops/rcad/test/util"
)

// NewTestClient returns a client backed by an isolated per-test schema,
// with the custom indexes the migrations would normally create. Teardown
// is registered by the underlying fixture.
func NewTestClient(t *testing.T) *database.Client {
	t.Helper()

	entClient, db := util.SetupTestDatabase(t)

	drv := entsql.OpenDB(dialect.Postgres, db)
	require.NoError(t, database.CreateIndexes(context.Background(), drv))

	return database.NewClientFromEnt(entClient, db)
}
