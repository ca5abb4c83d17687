package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/dmitrijs2005/scriptoria/internal/dbx"
	"github.com/dmitrijs2005/scriptoria/internal/logging"
	"github.com/dmitrijs2005/scriptoria/internal/server/config"
	"github.com/dmitrijs2005/scriptoria/internal/server/models"
	"github.com/dmitrijs2005/scriptoria/internal/server/repositories/outputs"
	"github.com/dmitrijs2005/scriptoria/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/scriptoria/internal/server/repositories/repotest"
	"github.com/dmitrijs2005/scriptoria/internal/server/repositories/sessions"
	"github.com/dmitrijs2005/scriptoria/internal/server/repositories/users"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// --- helpers ---

func testConfig() *config.Config {
	return &config.Config{SecretKey: "k", SessionValidityDuration: time.Hour}
}

func newSQLite(t *testing.T) (*sql.DB, repomanager.RepositoryManager) {
	t.Helper()
	return repotest.OpenSQLite(t), repomanager.NewSQLRepositoryManager(dbx.DialectSQLite)
}

type fakeUsersRepo struct {
	createCalls int
	createErr   error
	getOut      *models.User
	getErr      error
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	f.createCalls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	u.ID = 1
	return u, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

type fakeOutputsRepo struct {
	err error
}

func (f *fakeOutputsRepo) Append(context.Context, *models.Generation) (*models.Generation, error) {
	return nil, f.err
}

func (f *fakeOutputsRepo) ListByOwner(context.Context, string) ([]models.Generation, error) {
	return nil, f.err
}

func (f *fakeOutputsRepo) GetForOwner(context.Context, string, int64) (*models.Generation, error) {
	return nil, f.err
}

type fakeSessionsRepo struct {
	findOut *models.Session
	findErr error
	err     error
}

func (f *fakeSessionsRepo) Create(context.Context, *models.Session) error { return f.err }
func (f *fakeSessionsRepo) Find(context.Context, string) (*models.Session, error) {
	return f.findOut, f.findErr
}
func (f *fakeSessionsRepo) Revoke(context.Context, string, time.Time) error { return f.err }
func (f *fakeSessionsRepo) DeleteExpired(context.Context, string, time.Time) (int64, error) {
	return 0, f.err
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	o *fakeOutputsRepo
	s *fakeSessionsRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository           { return m.u }
func (m *fakeRepoManager) Outputs(dbx.DBTX) outputs.Repository       { return m.o }
func (m *fakeRepoManager) Sessions(dbx.DBTX) sessions.Repository     { return m.s }
func (m *fakeRepoManager) Dialect() dbx.Dialect                      { return dbx.DialectSQLite }

func nopLogger() logging.Logger { return logging.Nop() }
