package outputs

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/scriptoria/internal/common"
	"github.com/dmitrijs2005/scriptoria/internal/server/models"
	"github.com/dmitrijs2005/scriptoria/internal/server/repositories/repotest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteRepo(t *testing.T) *SQLRepository {
	t.Helper()
	return NewSQLRepository(repotest.OpenSQLite(t))
}

func gen(owner, content string, at time.Time) *models.Generation {
	return &models.Generation{OwnerEmail: owner, Title: "T", Language: "English", Content: content, CreatedAt: at}
}

func TestAppend_ListByOwner_NewestFirst(t *testing.T) {
	r := newSQLiteRepo(t)
	ctx := context.Background()
	t1 := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Minute)

	_, err := r.Append(ctx, gen("a@x.com", "Scene 1...", t1))
	require.NoError(t, err)
	_, err = r.Append(ctx, gen("a@x.com", "Scene 2...", t2))
	require.NoError(t, err)

	list, err := r.ListByOwner(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Scene 2...", list[0].Content)
	assert.Equal(t, "Scene 1...", list[1].Content)
	assert.True(t, list[0].CreatedAt.Equal(t2))
}

func TestListByOwner_NAppendsStrictlyDescending(t *testing.T) {
	r := newSQLiteRepo(t)
	ctx := context.Background()
	base := time.Now().UTC()

	const n = 12
	for i := 0; i < n; i++ {
		_, err := r.Append(ctx, gen("a@x.com", fmt.Sprintf("v%d", i), base.Add(time.Duration(i)*time.Second)))
		require.NoError(t, err)
		// another owner interleaved
		_, err = r.Append(ctx, gen("b@x.com", "other", base))
		require.NoError(t, err)
	}

	list, err := r.ListByOwner(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, list, n, "store imposes no limit")
	for i := 1; i < len(list); i++ {
		assert.Greater(t, list[i-1].ID, list[i].ID)
	}
	assert.Equal(t, "v11", list[0].Content)

	again, err := r.ListByOwner(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, again, n)
	for i := range list {
		assert.Equal(t, list[i].ID, again[i].ID, "restartable")
	}
}

func TestAppend_EmptyContentAllowed(t *testing.T) {
	r := newSQLiteRepo(t)

	g, err := r.Append(context.Background(), gen("a@x.com", "", time.Now().UTC()))
	require.NoError(t, err)
	assert.NotZero(t, g.ID)
}

func TestListByOwner_Unknown(t *testing.T) {
	r := newSQLiteRepo(t)

	list, err := r.ListByOwner(context.Background(), "nobody@x.com")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestGetForOwner(t *testing.T) {
	r := newSQLiteRepo(t)
	ctx := context.Background()

	g, err := r.Append(ctx, gen("a@x.com", "mine", time.Now().UTC()))
	require.NoError(t, err)

	got, err := r.GetForOwner(ctx, "a@x.com", g.ID)
	require.NoError(t, err)
	assert.Equal(t, "mine", got.Content)

	_, err = r.GetForOwner(ctx, "b@x.com", g.ID)
	require.ErrorIs(t, err, common.ErrorNotFound)

	_, err = r.GetForOwner(ctx, "a@x.com", g.ID+100)
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestAppend_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO outputs`).WillReturnError(errors.New("disk full"))

	r := NewSQLRepository(db)
	_, err = r.Append(context.Background(), gen("a@x.com", "x", time.Now()))
	require.ErrorContains(t, err, "failed to append output: disk full")
}

func TestListByOwner_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, user_email`).WithArgs("a@x.com").WillReturnError(errors.New("gone"))

	r := NewSQLRepository(db)
	_, err = r.ListByOwner(context.Background(), "a@x.com")
	require.ErrorContains(t, err, "failed to select outputs: gone")
}
