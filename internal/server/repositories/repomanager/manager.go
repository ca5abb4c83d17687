// Package repomanager vends the SQL repositories for the configured dialect
// and owns schema migrations.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/scriptoria/internal/dbx"
	"github.com/dmitrijs2005/scriptoria/internal/server/repositories/outputs"
	"github.com/dmitrijs2005/scriptoria/internal/server/repositories/sessions"
	"github.com/dmitrijs2005/scriptoria/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Outputs(db dbx.DBTX) outputs.Repository
	Sessions(db dbx.DBTX) sessions.Repository
	Dialect() dbx.Dialect
}
