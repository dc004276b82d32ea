// Package users provides storage for user accounts.
package users

import (
	"context"

	"github.com/mizukilab/gochat/internal/server/models"
)

// Repository is the persistence contract for users. Lookups return
// common.ErrorNotFound when no row matches; Create returns
// common.ErrorUsernameTaken when the username is already in use.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id string) error
}
