package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mizukilab/gochat/internal/common"
	"github.com/mizukilab/gochat/internal/logging"
	"github.com/mizukilab/gochat/internal/server/access"
	"github.com/mizukilab/gochat/internal/server/metrics"
	"github.com/mizukilab/gochat/internal/server/models"
	"github.com/mizukilab/gochat/internal/server/repositories/messages"
	"github.com/mizukilab/gochat/internal/server/subscriptions"
)

// defaultListLimit applies when the caller does not specify a positive limit.
const defaultListLimit = 100

// MessageService orchestrates send/list/delete/subscribe: it gates every
// operation through the access guard, performs the store operation, and
// then hands the resulting event to the subscription registry.
//
// Write paths (Send, Delete) fail loudly with sentinel errors the transport
// turns into success=false responses. Read paths (List, Subscribe) fail
// softly: an unauthorized caller sees an empty result or a terminated
// stream, indistinguishable from a channel that holds nothing for them.
type MessageService struct {
	guard    *access.Guard
	messages messages.Repository
	registry *subscriptions.Registry
	logger   logging.Logger
}

func NewMessageService(guard *access.Guard, m messages.Repository, r *subscriptions.Registry, logger logging.Logger) *MessageService {
	return &MessageService{
		guard:    guard,
		messages: m,
		registry: r,
		logger:   logger.With("module", "message_service"),
	}
}

// Send persists a new message in the channel and broadcasts an EventCreated
// to its current subscribers. The author's display name is captured into
// the message at send time. The broadcast happens after the write
// succeeded; a delivery-layer fault can no longer fail the call.
func (s *MessageService) Send(ctx context.Context, token, channelID, content string) (*models.Message, error) {
	user, err := s.guard.Authenticate(ctx, token)
	if err != nil {
		return nil, err
	}

	if _, err := s.guard.AuthorizeChannelAccess(ctx, user, channelID); err != nil {
		return nil, err
	}

	now := time.Now()
	message := &models.Message{
		ID:        uuid.NewString(),
		ChannelID: channelID,
		UserID:    user.ID,
		Username:  user.DisplayName,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.messages.Create(ctx, message)
	if err != nil {
		return nil, fmt.Errorf("message create error: %w", err)
	}

	metrics.MessagesSent.Inc()
	s.registry.Broadcast(ctx, channelID, subscriptions.Event{
		Type:    subscriptions.EventCreated,
		Message: created,
	})

	return created, nil
}

// List returns up to limit messages of the channel, newest first. A non-nil
// before restricts results to messages created strictly earlier (exclusive,
// for pagination). Limits <= 0 fall back to the default of 100. Any
// authentication or authorization failure degrades to an empty result.
func (s *MessageService) List(ctx context.Context, token, channelID string, limit int, before *time.Time) ([]*models.Message, error) {
	user, err := s.guard.Authenticate(ctx, token)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthenticated) {
			return []*models.Message{}, nil
		}
		return nil, err
	}

	if _, err := s.guard.AuthorizeChannelAccess(ctx, user, channelID); err != nil {
		if errors.Is(err, common.ErrorChannelNotFound) || errors.Is(err, common.ErrorNotAMember) {
			return []*models.Message{}, nil
		}
		return nil, err
	}

	if limit <= 0 {
		limit = defaultListLimit
	}

	out, err := s.messages.ListByChannelID(ctx, channelID, limit, before)
	if err != nil {
		return nil, fmt.Errorf("message list error: %w", err)
	}
	if out == nil {
		out = []*models.Message{}
	}
	return out, nil
}

// Delete removes a message. Only the author may delete; the channel's
// subscribers receive an EventDeleted carrying a snapshot of the removed
// message.
func (s *MessageService) Delete(ctx context.Context, token, messageID string) error {
	user, err := s.guard.Authenticate(ctx, token)
	if err != nil {
		return err
	}

	message, err := s.messages.GetByID(ctx, messageID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorMessageNotFound
		}
		return fmt.Errorf("message lookup error: %w", err)
	}

	if err := s.guard.AuthorizeOwnership(message.UserID, user); err != nil {
		return err
	}

	if err := s.messages.Delete(ctx, messageID); err != nil {
		return fmt.Errorf("message delete error: %w", err)
	}

	s.registry.Broadcast(ctx, message.ChannelID, subscriptions.Event{
		Type:    subscriptions.EventDeleted,
		Message: message,
	})

	return nil
}

// Subscribe attaches endpoint to the channel's live-delivery set after the
// caller passed authentication and membership checks. It returns a detach
// function that is idempotent and safe to call from any goroutine, so
// client cancellation and server teardown cannot race into a double
// detach. Session validity is checked once, here; an endpoint attached
// while authenticated keeps receiving events until it is detached.
func (s *MessageService) Subscribe(ctx context.Context, token, channelID string, endpoint subscriptions.Endpoint) (func(), error) {
	user, err := s.guard.Authenticate(ctx, token)
	if err != nil {
		return nil, err
	}

	if _, err := s.guard.AuthorizeChannelAccess(ctx, user, channelID); err != nil {
		return nil, err
	}

	s.registry.Attach(channelID, endpoint)
	s.logger.Debug(ctx, "subscriber attached", "channel_id", channelID, "user_id", user.ID)

	var once sync.Once
	detach := func() {
		once.Do(func() {
			s.registry.Detach(channelID, endpoint)
			s.logger.Debug(ctx, "subscriber detached", "channel_id", channelID, "user_id", user.ID)
		})
	}
	return detach, nil
}
