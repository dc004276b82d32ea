package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/mizukilab/gochat/internal/logging"
	"github.com/mizukilab/gochat/internal/server/access"
	"github.com/mizukilab/gochat/internal/server/models"
	"github.com/mizukilab/gochat/internal/server/password"
	"github.com/mizukilab/gochat/internal/server/repositories/channels"
	"github.com/mizukilab/gochat/internal/server/repositories/messages"
	"github.com/mizukilab/gochat/internal/server/repositories/sessions"
	"github.com/mizukilab/gochat/internal/server/repositories/users"
	"github.com/mizukilab/gochat/internal/server/subscriptions"
)

// ---- test logger ----

type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...any) {}
func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}
func (nopLogger) With(...any) logging.Logger            { return nopLogger{} }

// ---- fixture ----

type fixture struct {
	users    *users.MemoryRepository
	sessions *sessions.MemoryRepository
	channels *channels.MemoryRepository
	messages *messages.MemoryRepository
	guard    *access.Guard
	registry *subscriptions.Registry

	auth        *AuthService
	channelsSvc *ChannelService
	messagesSvc *MessageService
	usersSvc    *UserService
}

func newFixture() *fixture {
	ur := users.NewMemoryRepository()
	sr := sessions.NewMemoryRepository()
	cr := channels.NewMemoryRepository()
	mr := messages.NewMemoryRepository()
	guard := access.NewGuard(sr, ur, cr)
	registry := subscriptions.NewRegistry(nopLogger{})

	return &fixture{
		users:       ur,
		sessions:    sr,
		channels:    cr,
		messages:    mr,
		guard:       guard,
		registry:    registry,
		auth:        NewAuthService(guard, ur, sr),
		channelsSvc: NewChannelService(guard, cr),
		messagesSvc: NewMessageService(guard, mr, registry, nopLogger{}),
		usersSvc:    NewUserService(guard, ur, sr),
	}
}

// addUser registers an account directly in the store and returns it with a
// live session token.
func (f *fixture) addUser(t *testing.T, username string) (*models.User, string) {
	t.Helper()

	hash, err := password.Hash("secret")
	require.NoError(t, err)

	user, err := f.users.Create(context.Background(), &models.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
		DisplayName:  username + "-display",
		CreatedAt:    time.Now(),
		IsActive:     true,
	})
	require.NoError(t, err)

	token := uuid.NewString()
	require.NoError(t, f.sessions.Add(context.Background(), &models.Session{
		Token:     token,
		UserID:    user.ID,
		CreatedAt: time.Now(),
	}))

	return user, token
}

func (f *fixture) addChannel(t *testing.T, creator *models.User, memberIDs ...string) *models.Channel {
	t.Helper()

	channel, err := f.channels.Create(context.Background(), &models.Channel{
		ID:        uuid.NewString(),
		Name:      "room",
		CreatedBy: creator.ID,
		CreatedAt: time.Now(),
		MemberIDs: append([]string{creator.ID}, memberIDs...),
	})
	require.NoError(t, err)
	return channel
}

// ---- collecting endpoint ----

type collectingEndpoint struct {
	mu     sync.Mutex
	events []subscriptions.Event
}

func (c *collectingEndpoint) Send(event subscriptions.Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, event)
	return nil
}

func (c *collectingEndpoint) received() []subscriptions.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]subscriptions.Event(nil), c.events...)
}
