package users

import (
	"context"

	"github.com/dmitrijs2005/todokeeper/internal/models"
)

// Repository persists accounts of the local credential store.
// Implementations are backed by the local SQLite database.
type Repository interface {
	// Create inserts a new user and returns it with ID populated.
	// A username collision surfaces as common.ErrAlreadyExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByUsername returns the account with the given username, or
	// common.ErrNotFound when no such account exists.
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}
