// Package sessions provides storage for opaque login sessions.
package sessions

import (
	"context"

	"github.com/mizukilab/gochat/internal/server/models"
)

// Repository is the persistence contract for sessions, keyed by token.
// Get returns common.ErrorNotFound for unknown tokens. Delete of an absent
// token is a no-op. DeleteByUserID removes every session owned by a user
// (logout-everywhere on account deactivation or deletion).
type Repository interface {
	Add(ctx context.Context, session *models.Session) error
	Get(ctx context.Context, token string) (*models.Session, error)
	Delete(ctx context.Context, token string) error
	DeleteByUserID(ctx context.Context, userID string) error
}
