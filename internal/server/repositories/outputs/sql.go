package outputs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/scriptoria/internal/common"
	"github.com/dmitrijs2005/scriptoria/internal/dbx"
	"github.com/dmitrijs2005/scriptoria/internal/server/models"
)

// SQLRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLRepository struct {
	db dbx.DBTX
}

func NewSQLRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db}
}

func (r *SQLRepository) Append(ctx context.Context, g *models.Generation) (*models.Generation, error) {
	query := `INSERT INTO outputs (user_email, title, language, content, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		g.OwnerEmail, g.Title, g.Language, g.Content, g.CreatedAt).Scan(&g.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to append output: %w", err)
	}
	return g, nil
}

func (r *SQLRepository) ListByOwner(ctx context.Context, ownerEmail string) ([]models.Generation, error) {
	query := `SELECT id, user_email, title, language, content, created_at
		 FROM outputs
		 WHERE user_email = $1
		 ORDER BY id DESC`

	rows, err := r.db.QueryContext(ctx, query, ownerEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to select outputs: %w", err)
	}
	defer rows.Close()

	var result []models.Generation
	for rows.Next() {
		var g models.Generation
		if err := rows.Scan(&g.ID, &g.OwnerEmail, &g.Title, &g.Language, &g.Content, &g.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLRepository) GetForOwner(ctx context.Context, ownerEmail string, id int64) (*models.Generation, error) {
	query := `SELECT id, user_email, title, language, content, created_at
		 FROM outputs
		 WHERE id = $1 AND user_email = $2`

	g := &models.Generation{}
	err := r.db.QueryRowContext(ctx, query, id, ownerEmail).
		Scan(&g.ID, &g.OwnerEmail, &g.Title, &g.Language, &g.Content, &g.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("query row scan failed: %w", err)
	}
	return g, nil
}
