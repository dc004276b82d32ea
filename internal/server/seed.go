package server

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mizukilab/gochat/internal/server/models"
	"github.com/mizukilab/gochat/internal/server/password"
)

// seedDemoData creates two demo accounts and one shared channel so a fresh
// deployment can be exercised immediately. Existing usernames are reused.
func (app *App) seedDemoData(ctx context.Context) error {

	user1, created1, err := app.seedUser(ctx, "user1", "password1", "ユーザー1")
	if err != nil {
		return err
	}
	user2, created2, err := app.seedUser(ctx, "user2", "password2", "ユーザー2")
	if err != nil {
		return err
	}

	// both accounts already present means an earlier run seeded the channel
	if !created1 && !created2 {
		return nil
	}

	channel := &models.Channel{
		ID:          uuid.NewString(),
		Name:        "一般",
		Description: "デモチャンネル",
		CreatedBy:   user1.ID,
		CreatedAt:   time.Now(),
		IsPrivate:   false,
		MemberIDs:   []string{user1.ID, user2.ID},
	}
	if _, err := app.repos.Channels().Create(ctx, channel); err != nil {
		return fmt.Errorf("demo channel error: %w", err)
	}

	app.logger.Info(ctx, "Demo data seeded", "users", []string{user1.Username, user2.Username}, "channel", channel.Name)
	return nil
}

func (app *App) seedUser(ctx context.Context, username, plainPassword, displayName string) (*models.User, bool, error) {

	if existing, err := app.repos.Users().GetByUsername(ctx, username); err == nil {
		return existing, false, nil
	}

	hash, err := password.Hash(plainPassword)
	if err != nil {
		return nil, false, fmt.Errorf("demo user error: %w", err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
		DisplayName:  displayName,
		CreatedAt:    time.Now(),
		IsActive:     true,
	}
	created, err := app.repos.Users().Create(ctx, user)
	if err != nil {
		return nil, false, fmt.Errorf("demo user error: %w", err)
	}
	return created, true, nil
}
