// Package users is the credential store: it persists accounts and enforces
// email uniqueness at the storage layer.
package users

import (
	"context"

	"github.com/dmitrijs2005/scriptoria/internal/server/models"
)

type Repository interface {
	// Create inserts the account and fills in its ID. A second account with
	// the same email fails with common.ErrDuplicateEmail.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByEmail returns common.ErrorNotFound when no account has that email.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}
