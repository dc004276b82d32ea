// Package messages provides storage for channel messages.
package messages

import (
	"context"
	"time"

	"github.com/mizukilab/gochat/internal/server/models"
)

// Repository is the persistence contract for messages. ListByChannelID
// returns at most limit messages ordered by creation time descending;
// a non-nil before restricts results to messages created strictly earlier
// (exclusive, for pagination). GetByID and Delete return
// common.ErrorNotFound for unknown ids.
type Repository interface {
	Create(ctx context.Context, message *models.Message) (*models.Message, error)
	GetByID(ctx context.Context, id string) (*models.Message, error)
	ListByChannelID(ctx context.Context, channelID string, limit int, before *time.Time) ([]*models.Message, error)
	Delete(ctx context.Context, id string) error
}
