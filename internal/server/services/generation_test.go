package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/scriptoria/internal/common"
	"github.com/dmitrijs2005/scriptoria/internal/server/dto"
	"github.com/dmitrijs2005/scriptoria/internal/server/generator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_RecordsResult(t *testing.T) {
	db, rm := newSQLite(t)
	h := NewHistoryService(db, rm, nopLogger())

	var gotPrompt string
	g := generator.Func(func(ctx context.Context, p string) (string, error) {
		gotPrompt = p
		return "SCREENPLAY\nINT. ROOM - DAY", nil
	})
	s := NewGenerationService(g, h, time.Second, nopLogger())

	rec, err := s.Generate(context.Background(), "a@x.com", dto.GenerationRequest{Title: " Rain ", Idea: "A storm", Language: "Telugu"})
	require.NoError(t, err)
	assert.Equal(t, "Rain", rec.Title)
	assert.Equal(t, "Telugu", rec.Language)
	assert.Equal(t, "a@x.com", rec.OwnerEmail)
	assert.Contains(t, gotPrompt, "Rain")
	assert.Contains(t, gotPrompt, "Telugu script")

	list, err := h.List(context.Background(), "a@x.com")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, rec.ID, list[0].ID)
}

func TestGenerate_InvalidRequestSkipsService(t *testing.T) {
	called := false
	g := generator.Func(func(context.Context, string) (string, error) {
		called = true
		return "", nil
	})
	s := NewGenerationService(g, nil, time.Second, nopLogger())

	_, err := s.Generate(context.Background(), "a@x.com", dto.GenerationRequest{Title: "only title"})
	require.ErrorIs(t, err, common.ErrInvalidInput)
	assert.False(t, called)
}

func TestGenerate_FailureIsInfrastructure(t *testing.T) {
	db, rm := newSQLite(t)
	h := NewHistoryService(db, rm, nopLogger())

	g := generator.Func(func(context.Context, string) (string, error) {
		return "", errors.New("quota exceeded")
	})
	s := NewGenerationService(g, h, time.Second, nopLogger())

	_, err := s.Generate(context.Background(), "a@x.com", dto.GenerationRequest{Title: "t", Idea: "i"})
	require.ErrorIs(t, err, common.ErrInfrastructure)

	list, err := h.List(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.Empty(t, list, "failed generations are not recorded")
}

func TestGenerate_Timeout(t *testing.T) {
	g := generator.Func(func(ctx context.Context, _ string) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	})
	s := NewGenerationService(g, nil, 10*time.Millisecond, nopLogger())

	_, err := s.Generate(context.Background(), "a@x.com", dto.GenerationRequest{Title: "t", Idea: "i"})
	require.ErrorIs(t, err, common.ErrInfrastructure)
}
