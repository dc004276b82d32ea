package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/mizukilab/gochat/internal/common"
	"github.com/mizukilab/gochat/internal/server/access"
	"github.com/mizukilab/gochat/internal/server/models"
	"github.com/mizukilab/gochat/internal/server/repositories/channels"
)

// ChannelService implements channel CRUD and membership management.
// Mutations other than Create are restricted to the channel's creator.
type ChannelService struct {
	guard    *access.Guard
	channels channels.Repository
}

func NewChannelService(guard *access.Guard, c channels.Repository) *ChannelService {
	return &ChannelService{guard: guard, channels: c}
}

// Create makes a new channel with the caller as its sole initial member.
func (s *ChannelService) Create(ctx context.Context, token, name, description string, isPrivate bool) (*models.Channel, error) {
	user, err := s.guard.Authenticate(ctx, token)
	if err != nil {
		return nil, err
	}

	channel := &models.Channel{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		CreatedBy:   user.ID,
		CreatedAt:   time.Now(),
		IsPrivate:   isPrivate,
		MemberIDs:   []string{user.ID},
	}

	created, err := s.channels.Create(ctx, channel)
	if err != nil {
		return nil, fmt.Errorf("channel create error: %w", err)
	}
	return created, nil
}

// List returns the channels the caller belongs to. An invalid token yields
// an empty list, not an error: this read path fails softly.
func (s *ChannelService) List(ctx context.Context, token string) ([]*models.Channel, error) {
	user, err := s.guard.Authenticate(ctx, token)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthenticated) {
			return []*models.Channel{}, nil
		}
		return nil, err
	}

	out, err := s.channels.ListByUserID(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("channel list error: %w", err)
	}
	if out == nil {
		out = []*models.Channel{}
	}
	return out, nil
}

// Get returns a channel the caller is a member of.
func (s *ChannelService) Get(ctx context.Context, token, channelID string) (*models.Channel, error) {
	user, err := s.guard.Authenticate(ctx, token)
	if err != nil {
		return nil, err
	}
	return s.guard.AuthorizeChannelAccess(ctx, user, channelID)
}

// Update renames a channel; only the creator may do this.
func (s *ChannelService) Update(ctx context.Context, token, channelID, name, description string) (*models.Channel, error) {
	_, channel, err := s.creatorOnly(ctx, token, channelID)
	if err != nil {
		return nil, err
	}

	channel.Name = name
	channel.Description = description
	if err := s.channels.Update(ctx, channel); err != nil {
		return nil, fmt.Errorf("channel update error: %w", err)
	}
	return channel, nil
}

// Delete removes a channel; only the creator may do this.
func (s *ChannelService) Delete(ctx context.Context, token, channelID string) error {
	_, _, err := s.creatorOnly(ctx, token, channelID)
	if err != nil {
		return err
	}
	if err := s.channels.Delete(ctx, channelID); err != nil {
		return fmt.Errorf("channel delete error: %w", err)
	}
	return nil
}

// AddMember adds userID to the member set; adding an existing member is a
// no-op. Only the creator may manage membership.
func (s *ChannelService) AddMember(ctx context.Context, token, channelID, userID string) error {
	_, channel, err := s.creatorOnly(ctx, token, channelID)
	if err != nil {
		return err
	}

	if channel.HasMember(userID) {
		return nil
	}
	channel.MemberIDs = append(channel.MemberIDs, userID)
	if err := s.channels.Update(ctx, channel); err != nil {
		return fmt.Errorf("channel update error: %w", err)
	}
	return nil
}

// RemoveMember removes userID from the member set. The creator cannot be
// removed: the member set must never become empty.
func (s *ChannelService) RemoveMember(ctx context.Context, token, channelID, userID string) error {
	_, channel, err := s.creatorOnly(ctx, token, channelID)
	if err != nil {
		return err
	}

	if userID == channel.CreatedBy {
		return common.ErrorCreatorRemoval
	}

	channel.MemberIDs = slices.DeleteFunc(channel.MemberIDs, func(id string) bool { return id == userID })
	if err := s.channels.Update(ctx, channel); err != nil {
		return fmt.Errorf("channel update error: %w", err)
	}
	return nil
}

func (s *ChannelService) creatorOnly(ctx context.Context, token, channelID string) (*models.User, *models.Channel, error) {
	user, err := s.guard.Authenticate(ctx, token)
	if err != nil {
		return nil, nil, err
	}

	channel, err := s.channels.GetByID(ctx, channelID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil, common.ErrorChannelNotFound
		}
		return nil, nil, fmt.Errorf("channel lookup error: %w", err)
	}

	if err := s.guard.AuthorizeOwnership(channel.CreatedBy, user); err != nil {
		return nil, nil, err
	}

	return user, channel, nil
}
