// Package repotest opens throwaway databases with the real schema for tests.
package repotest

import (
	"context"
	"database/sql"
	"testing"

	"github.com/dmitrijs2005/scriptoria/internal/dbx"
	"github.com/dmitrijs2005/scriptoria/internal/server/migrations"
	"github.com/stretchr/testify/require"
)

// OpenSQLite returns a migrated in-memory SQLite database closed on cleanup.
func OpenSQLite(t testing.TB) *sql.DB {
	t.Helper()

	db, d, err := dbx.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, migrations.Up(context.Background(), db, d))
	return db
}
