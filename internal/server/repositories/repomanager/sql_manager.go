package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/scriptoria/internal/dbx"
	"github.com/dmitrijs2005/scriptoria/internal/server/migrations"
	"github.com/dmitrijs2005/scriptoria/internal/server/repositories/outputs"
	"github.com/dmitrijs2005/scriptoria/internal/server/repositories/sessions"
	"github.com/dmitrijs2005/scriptoria/internal/server/repositories/users"
)

// SQLRepositoryManager binds repositories to a DBTX. The dialect only
// selects the migration set.
type SQLRepositoryManager struct {
	dialect dbx.Dialect
}

// Users returns a users.Repository bound to the provided DBTX.
func (m *SQLRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewSQLRepository(db)
}

// Outputs returns an outputs.Repository bound to the provided DBTX.
func (m *SQLRepositoryManager) Outputs(db dbx.DBTX) outputs.Repository {
	return outputs.NewSQLRepository(db)
}

// Sessions returns a sessions.Repository bound to the provided DBTX.
func (m *SQLRepositoryManager) Sessions(db dbx.DBTX) sessions.Repository {
	return sessions.NewSQLRepository(db)
}

func (m *SQLRepositoryManager) Dialect() dbx.Dialect {
	return m.dialect
}

// migrateUp is a seam for testing migrations.Up.
var migrateUp = migrations.Up

// RunMigrations applies the embedded migrations for the manager's dialect.
func (m *SQLRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return migrateUp(ctx, db, m.dialect)
}

// NewSQLRepositoryManager constructs a RepositoryManager for dialect d.
func NewSQLRepositoryManager(d dbx.Dialect) RepositoryManager {
	return &SQLRepositoryManager{dialect: d}
}
