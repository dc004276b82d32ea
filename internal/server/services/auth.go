// Package services contains the business logic behind each RPC service:
// authentication, channels, users, and the messaging orchestrator. Services
// return sentinel errors from common; the gRPC layer maps them to
// user-facing results.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mizukilab/gochat/internal/common"
	"github.com/mizukilab/gochat/internal/server/access"
	"github.com/mizukilab/gochat/internal/server/models"
	"github.com/mizukilab/gochat/internal/server/password"
	"github.com/mizukilab/gochat/internal/server/repositories/sessions"
	"github.com/mizukilab/gochat/internal/server/repositories/users"
)

// AuthService implements login, logout, token validation, and registration.
type AuthService struct {
	guard    *access.Guard
	users    users.Repository
	sessions sessions.Repository
}

func NewAuthService(guard *access.Guard, u users.Repository, s sessions.Repository) *AuthService {
	return &AuthService{guard: guard, users: u, sessions: s}
}

// Login verifies the credentials and creates a session with a fresh opaque
// token. Unknown username and wrong password are indistinguishable to the
// caller; a deactivated account is reported as such.
func (s *AuthService) Login(ctx context.Context, username, plainPassword string) (string, *models.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", nil, common.ErrorInvalidCredentials
		}
		return "", nil, fmt.Errorf("user lookup error: %w", err)
	}

	if !password.Compare(user.PasswordHash, plainPassword) {
		return "", nil, common.ErrorInvalidCredentials
	}

	if !user.IsActive {
		return "", nil, common.ErrorUserDeactivated
	}

	session := &models.Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		CreatedAt: time.Now(),
	}
	if err := s.sessions.Add(ctx, session); err != nil {
		return "", nil, fmt.Errorf("session create error: %w", err)
	}

	return session.Token, user, nil
}

// Logout deletes the session. Deleting an unknown token is not an error.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

// Validate resolves token to its user via the guard, including the guard's
// lazy cleanup of stale sessions. It returns common.ErrorUnauthenticated
// for any invalid token.
func (s *AuthService) Validate(ctx context.Context, token string) (*models.User, error) {
	return s.guard.Authenticate(ctx, token)
}

// Register creates a new active account. DisplayName defaults to the
// username when empty. Username uniqueness is a hard invariant; a taken
// name yields common.ErrorUsernameTaken.
func (s *AuthService) Register(ctx context.Context, username, plainPassword, displayName string) (*models.User, error) {
	if _, err := s.users.GetByUsername(ctx, username); err == nil {
		return nil, common.ErrorUsernameTaken
	} else if !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("user lookup error: %w", err)
	}

	hash, err := password.Hash(plainPassword)
	if err != nil {
		return nil, fmt.Errorf("password hash error: %w", err)
	}

	if displayName == "" {
		displayName = username
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
		DisplayName:  displayName,
		CreatedAt:    time.Now(),
		IsActive:     true,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorUsernameTaken) {
			return nil, common.ErrorUsernameTaken
		}
		return nil, fmt.Errorf("user create error: %w", err)
	}

	return created, nil
}
