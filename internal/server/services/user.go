package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/mizukilab/gochat/internal/common"
	"github.com/mizukilab/gochat/internal/server/access"
	"github.com/mizukilab/gochat/internal/server/models"
	"github.com/mizukilab/gochat/internal/server/repositories/sessions"
	"github.com/mizukilab/gochat/internal/server/repositories/users"
)

// UserService implements the user directory and account self-service.
// Profile and account mutations are restricted to the account owner.
type UserService struct {
	guard    *access.Guard
	users    users.Repository
	sessions sessions.Repository
}

func NewUserService(guard *access.Guard, u users.Repository, s sessions.Repository) *UserService {
	return &UserService{guard: guard, users: u, sessions: s}
}

// List returns every registered user. An invalid token yields an empty
// list: this read path fails softly.
func (s *UserService) List(ctx context.Context, token string) ([]*models.User, error) {
	if _, err := s.guard.Authenticate(ctx, token); err != nil {
		if errors.Is(err, common.ErrorUnauthenticated) {
			return []*models.User{}, nil
		}
		return nil, err
	}

	out, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("user list error: %w", err)
	}
	if out == nil {
		out = []*models.User{}
	}
	return out, nil
}

// Get returns one user by id.
func (s *UserService) Get(ctx context.Context, token, userID string) (*models.User, error) {
	if _, err := s.guard.Authenticate(ctx, token); err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUserNotFound
		}
		return nil, fmt.Errorf("user lookup error: %w", err)
	}
	return user, nil
}

// Update changes the display name of the caller's own profile. Historical
// messages keep the display name they were sent with.
func (s *UserService) Update(ctx context.Context, token, userID, displayName string) (*models.User, error) {
	requester, err := s.guard.Authenticate(ctx, token)
	if err != nil {
		return nil, err
	}
	if err := s.guard.AuthorizeOwnership(userID, requester); err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUserNotFound
		}
		return nil, fmt.Errorf("user lookup error: %w", err)
	}

	user.DisplayName = displayName
	if err := s.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("user update error: %w", err)
	}
	return user, nil
}

// Delete removes the caller's own account and all of its sessions.
func (s *UserService) Delete(ctx context.Context, token, userID string) error {
	requester, err := s.guard.Authenticate(ctx, token)
	if err != nil {
		return err
	}
	if err := s.guard.AuthorizeOwnership(userID, requester); err != nil {
		return err
	}

	if err := s.users.Delete(ctx, userID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorUserNotFound
		}
		return fmt.Errorf("user delete error: %w", err)
	}

	if err := s.sessions.DeleteByUserID(ctx, userID); err != nil {
		return fmt.Errorf("session cleanup error: %w", err)
	}
	return nil
}

// SetActive toggles the caller's own active flag. Deactivation deletes the
// account's sessions eagerly, on top of the guard's lazy invalidation.
func (s *UserService) SetActive(ctx context.Context, token, userID string, isActive bool) error {
	requester, err := s.guard.Authenticate(ctx, token)
	if err != nil {
		return err
	}
	if err := s.guard.AuthorizeOwnership(userID, requester); err != nil {
		return err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorUserNotFound
		}
		return fmt.Errorf("user lookup error: %w", err)
	}

	user.IsActive = isActive
	if err := s.users.Update(ctx, user); err != nil {
		return fmt.Errorf("user update error: %w", err)
	}

	if !isActive {
		if err := s.sessions.DeleteByUserID(ctx, userID); err != nil {
			return fmt.Errorf("session cleanup error: %w", err)
		}
	}
	return nil
}
