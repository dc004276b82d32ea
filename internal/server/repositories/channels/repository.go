// Package channels provides storage for channels and their member sets.
package channels

import (
	"context"

	"github.com/mizukilab/gochat/internal/server/models"
)

// Repository is the persistence contract for channels. GetByID returns
// common.ErrorNotFound for unknown ids. Update replaces the channel row and
// its member set atomically.
type Repository interface {
	Create(ctx context.Context, channel *models.Channel) (*models.Channel, error)
	GetByID(ctx context.Context, id string) (*models.Channel, error)
	ListByUserID(ctx context.Context, userID string) ([]*models.Channel, error)
	Update(ctx context.Context, channel *models.Channel) error
	Delete(ctx context.Context, id string) error
}
