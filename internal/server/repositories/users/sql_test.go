package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/scriptoria/internal/common"
	"github.com/dmitrijs2005/scriptoria/internal/server/models"
	"github.com/dmitrijs2005/scriptoria/internal/server/repositories/repotest"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*SQLRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewSQLRepository(db), mock, db
}

func newUser(email string) *models.User {
	return &models.User{
		UserName:       "A",
		Email:          email,
		PasswordDigest: "$argon2id$digest",
		CreatedAt:      time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

const insertQuery = `(?s)^INSERT\s+INTO\s+users\s*\(username,\s*email,\s*password_digest,\s*created_at\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4\)\s*RETURNING\s+id$`

func TestCreate_Postgres_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	u := newUser("a@x.com")
	mock.ExpectQuery(insertQuery).
		WithArgs("A", "a@x.com", "$argon2id$digest", u.CreatedAt).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))

	got, err := repo.Create(context.Background(), u)
	require.NoError(t, err)
	assert.Equal(t, int64(42), got.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_Postgres_UniqueViolation(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertQuery).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	_, err := repo.Create(context.Background(), newUser("a@x.com"))
	require.ErrorIs(t, err, common.ErrDuplicateEmail)
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertQuery).WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), newUser("a@x.com"))
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
	assert.NotErrorIs(t, err, common.ErrDuplicateEmail)
}

func TestGetByEmail_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^SELECT\s+id,\s*username,\s*email,\s*password_digest,\s*created_at\s+FROM\s+users\s+WHERE\s+email\s*=\s*\$1$`).
		WithArgs("a@x.com").
		WillReturnError(errors.New("db err"))

	_, err := repo.GetByEmail(context.Background(), "a@x.com")
	if err == nil || !regexp.MustCompile(`db error: .*db err`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestSQLite_CreateAndGet(t *testing.T) {
	db := repotest.OpenSQLite(t)
	repo := NewSQLRepository(db)
	ctx := context.Background()

	a, err := repo.Create(ctx, newUser("a@x.com"))
	require.NoError(t, err)
	b, err := repo.Create(ctx, newUser("b@x.com"))
	require.NoError(t, err)
	assert.Greater(t, b.ID, a.ID, "ids are monotonic")

	got, err := repo.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)
	assert.Equal(t, "A", got.UserName)
	assert.Equal(t, "$argon2id$digest", got.PasswordDigest)
	assert.True(t, got.CreatedAt.Equal(a.CreatedAt))
}

func TestSQLite_DuplicateEmailAddsNoRow(t *testing.T) {
	db := repotest.OpenSQLite(t)
	repo := NewSQLRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, newUser("a@x.com"))
	require.NoError(t, err)

	dup := newUser("a@x.com")
	dup.UserName = "B"
	_, err = repo.Create(ctx, dup)
	require.ErrorIs(t, err, common.ErrDuplicateEmail)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestSQLite_GetByEmail_NotFound(t *testing.T) {
	db := repotest.OpenSQLite(t)
	repo := NewSQLRepository(db)

	_, err := repo.GetByEmail(context.Background(), "ghost@x.com")
	require.ErrorIs(t, err, common.ErrorNotFound)
}
