// Package outputs is the generation history store. Records are append-only
// and listed newest first; callers decide how many to show.
package outputs

import (
	"context"

	"github.com/dmitrijs2005/scriptoria/internal/server/models"
)

type Repository interface {
	// Append stores g and fills in its ID. Content is not validated.
	Append(ctx context.Context, g *models.Generation) (*models.Generation, error)

	// ListByOwner returns every record of ownerEmail ordered by descending id.
	// Each call runs a fresh query.
	ListByOwner(ctx context.Context, ownerEmail string) ([]models.Generation, error)

	// GetForOwner returns a single record, or common.ErrorNotFound when it
	// does not exist or belongs to someone else.
	GetForOwner(ctx context.Context, ownerEmail string, id int64) (*models.Generation, error)
}
