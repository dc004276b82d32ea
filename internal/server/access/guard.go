// Package access implements the session-scoped access-control layer: token
// authentication, channel-membership authorization, and resource ownership
// checks. Every RPC goes through a Guard before touching stores.
package access

import (
	"context"
	"errors"
	"fmt"

	"github.com/mizukilab/gochat/internal/common"
	"github.com/mizukilab/gochat/internal/server/models"
	"github.com/mizukilab/gochat/internal/server/repositories/channels"
	"github.com/mizukilab/gochat/internal/server/repositories/sessions"
	"github.com/mizukilab/gochat/internal/server/repositories/users"
)

// Guard resolves tokens to active users and (user, channel) pairs to
// authorization outcomes. Outcomes are sentinel errors from common, not
// faults: callers branch on them to produce user-facing messages. The
// guard itself never retries or escalates.
type Guard struct {
	sessions sessions.Repository
	users    users.Repository
	channels channels.Repository
}

func NewGuard(s sessions.Repository, u users.Repository, c channels.Repository) *Guard {
	return &Guard{sessions: s, users: u, channels: c}
}

// Authenticate looks up the session for token and returns the owning user.
// A session whose user no longer exists or is deactivated is deleted as a
// side effect (lazy invalidation) and the token is rejected. Validity is
// re-checked on every call, never cached.
func (g *Guard) Authenticate(ctx context.Context, token string) (*models.User, error) {
	session, err := g.sessions.Get(ctx, token)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthenticated
		}
		return nil, fmt.Errorf("session lookup error: %w", err)
	}

	user, err := g.users.GetByID(ctx, session.UserID)
	if err != nil && !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("user lookup error: %w", err)
	}

	if user == nil || !user.IsActive {
		if err := g.sessions.Delete(ctx, token); err != nil {
			return nil, fmt.Errorf("stale session cleanup error: %w", err)
		}
		return nil, common.ErrorUnauthenticated
	}

	return user, nil
}

// AuthorizeChannelAccess fetches the channel and checks that user belongs to
// its member set. Returns common.ErrorChannelNotFound or
// common.ErrorNotAMember accordingly.
func (g *Guard) AuthorizeChannelAccess(ctx context.Context, user *models.User, channelID string) (*models.Channel, error) {
	channel, err := g.channels.GetByID(ctx, channelID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorChannelNotFound
		}
		return nil, fmt.Errorf("channel lookup error: %w", err)
	}

	if !channel.HasMember(user.ID) {
		return nil, common.ErrorNotAMember
	}

	return channel, nil
}

// AuthorizeOwnership is a pure equality check: only the owner of a resource
// may mutate it. Used for message deletion, profile updates, and account
// self-service.
func (g *Guard) AuthorizeOwnership(resourceOwnerID string, user *models.User) error {
	if resourceOwnerID != user.ID {
		return common.ErrorNotOwner
	}
	return nil
}
