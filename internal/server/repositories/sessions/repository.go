// Package sessions persists the server-side half of login sessions so that
// logout can revoke a token before it expires.
package sessions

import (
	"context"
	"time"

	"github.com/dmitrijs2005/scriptoria/internal/server/models"
)

// Repository defines operations for issuing, retrieving, and revoking sessions.
type Repository interface {
	// Create stores a new session row.
	Create(ctx context.Context, s *models.Session) error

	// Find returns the session with the given id or common.ErrorNotFound.
	Find(ctx context.Context, id string) (*models.Session, error)

	// Revoke marks the session revoked at the given time. Revoking an unknown
	// or already revoked session is not an error.
	Revoke(ctx context.Context, id string, at time.Time) error

	// DeleteExpired removes the owner's sessions that expired before now.
	DeleteExpired(ctx context.Context, email string, now time.Time) (int64, error)
}
