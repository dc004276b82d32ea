package grpc

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mizukilab/gochat/internal/logging"
	chatpb "github.com/mizukilab/gochat/internal/proto"
	"github.com/mizukilab/gochat/internal/server/access"
	"github.com/mizukilab/gochat/internal/server/models"
	"github.com/mizukilab/gochat/internal/server/password"
	"github.com/mizukilab/gochat/internal/server/repositories/channels"
	"github.com/mizukilab/gochat/internal/server/repositories/messages"
	"github.com/mizukilab/gochat/internal/server/repositories/sessions"
	"github.com/mizukilab/gochat/internal/server/repositories/users"
	"github.com/mizukilab/gochat/internal/server/services"
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
	srv      *GRPCServer
	users    *users.MemoryRepository
	sessions *sessions.MemoryRepository
	channels *channels.MemoryRepository
	registry *subscriptions.Registry
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ur := users.NewMemoryRepository()
	sr := sessions.NewMemoryRepository()
	cr := channels.NewMemoryRepository()
	mr := messages.NewMemoryRepository()
	guard := access.NewGuard(sr, ur, cr)
	registry := subscriptions.NewRegistry(nopLogger{})

	as := services.NewAuthService(guard, ur, sr)
	cs := services.NewChannelService(guard, cr)
	ms := services.NewMessageService(guard, mr, registry, nopLogger{})
	us := services.NewUserService(guard, ur, sr)

	srv, err := NewGRPCServer(":0", nopLogger{}, as, cs, ms, us)
	require.NoError(t, err)

	return &fixture{srv: srv, users: ur, sessions: sr, channels: cr, registry: registry}
}

func (f *fixture) addUser(t *testing.T, username string) (*models.User, string) {
	t.Helper()

	hash, err := password.Hash("secret")
	require.NoError(t, err)

	user, err := f.users.Create(context.Background(), &models.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
		DisplayName:  username,
		CreatedAt:    time.Now(),
		IsActive:     true,
	})
	require.NoError(t, err)

	token := uuid.NewString()
	require.NoError(t, f.sessions.Add(context.Background(), &models.Session{
		Token: token, UserID: user.ID, CreatedAt: time.Now(),
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

// ---- auth ----

func TestLoginHandler(t *testing.T) {
	f := newFixture(t)
	f.addUser(t, "alice")

	resp, err := f.srv.Login(context.Background(), &chatpb.LoginRequest{Username: "alice", Password: "secret"})
	require.NoError(t, err)
	require.True(t, resp.Success)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "alice", resp.User.Username)

	resp, err = f.srv.Login(context.Background(), &chatpb.LoginRequest{Username: "alice", Password: "wrong"})
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "ユーザー名またはパスワードが正しくありません", resp.ErrorMessage)
}

func TestRegisterHandler_UsernameTaken(t *testing.T) {
	f := newFixture(t)
	f.addUser(t, "alice")

	resp, err := f.srv.Register(context.Background(), &chatpb.RegisterRequest{Username: "alice", Password: "pw"})
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "このユーザー名は既に使用されています", resp.ErrorMessage)
}

func TestValidateTokenHandler(t *testing.T) {
	f := newFixture(t)
	user, token := f.addUser(t, "alice")

	resp, err := f.srv.ValidateToken(context.Background(), &chatpb.ValidateTokenRequest{Token: token})
	require.NoError(t, err)
	assert.True(t, resp.Valid)
	assert.Equal(t, user.ID, resp.User.Id)

	resp, err = f.srv.ValidateToken(context.Background(), &chatpb.ValidateTokenRequest{Token: "bogus"})
	require.NoError(t, err)
	assert.False(t, resp.Valid)
	assert.Nil(t, resp.User)
}

// ---- messages ----

func TestSendMessageHandler_NonMember(t *testing.T) {
	f := newFixture(t)
	creator, _ := f.addUser(t, "alice")
	_, outsiderToken := f.addUser(t, "bob")
	channel := f.addChannel(t, creator)

	resp, err := f.srv.SendMessage(context.Background(), &chatpb.SendMessageRequest{
		ChannelId: channel.ID, Content: "hi", Token: outsiderToken,
	})
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "このチャンネルへのアクセス権がありません", resp.ErrorMessage)
}

func TestSendAndListMessageHandlers(t *testing.T) {
	f := newFixture(t)
	user, token := f.addUser(t, "alice")
	channel := f.addChannel(t, user)

	sendResp, err := f.srv.SendMessage(context.Background(), &chatpb.SendMessageRequest{
		ChannelId: channel.ID, Content: "hello", Token: token,
	})
	require.NoError(t, err)
	require.True(t, sendResp.Success)
	assert.Equal(t, "hello", sendResp.Message.Content)
	assert.Greater(t, sendResp.Message.CreatedAt, int64(0))

	listResp, err := f.srv.ListMessages(context.Background(), &chatpb.ListMessagesRequest{
		ChannelId: channel.ID, Token: token,
	})
	require.NoError(t, err)
	require.Len(t, listResp.Messages, 1)
	assert.Equal(t, sendResp.Message.Id, listResp.Messages[0].Id)
}

func TestListMessagesHandler_SoftFailure(t *testing.T) {
	f := newFixture(t)
	creator, _ := f.addUser(t, "alice")
	channel := f.addChannel(t, creator)

	resp, err := f.srv.ListMessages(context.Background(), &chatpb.ListMessagesRequest{
		ChannelId: channel.ID, Token: "bogus",
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Messages)
}

func TestDeleteMessageHandler_NotAuthor(t *testing.T) {
	f := newFixture(t)
	author, authorToken := f.addUser(t, "alice")
	other, otherToken := f.addUser(t, "bob")
	channel := f.addChannel(t, author, other.ID)

	sendResp, err := f.srv.SendMessage(context.Background(), &chatpb.SendMessageRequest{
		ChannelId: channel.ID, Content: "mine", Token: authorToken,
	})
	require.NoError(t, err)
	require.True(t, sendResp.Success)

	resp, err := f.srv.DeleteMessage(context.Background(), &chatpb.DeleteMessageRequest{
		MessageId: sendResp.Message.Id, Token: otherToken,
	})
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "自分のメッセージのみ削除できます", resp.ErrorMessage)
}

// ---- channels ----

func TestRemoveChannelMemberHandler_Creator(t *testing.T) {
	f := newFixture(t)
	creator, token := f.addUser(t, "alice")
	channel := f.addChannel(t, creator)

	resp, err := f.srv.RemoveChannelMember(context.Background(), &chatpb.RemoveChannelMemberRequest{
		ChannelId: channel.ID, UserId: creator.ID, Token: token,
	})
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "チャンネルの作成者は削除できません", resp.ErrorMessage)
}

func TestUpdateChannelHandler_NotCreator(t *testing.T) {
	f := newFixture(t)
	creator, _ := f.addUser(t, "alice")
	bob, bobToken := f.addUser(t, "bob")
	channel := f.addChannel(t, creator, bob.ID)

	resp, err := f.srv.UpdateChannel(context.Background(), &chatpb.UpdateChannelRequest{
		ChannelId: channel.ID, Name: "renamed", Token: bobToken,
	})
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "チャンネルの作成者のみが更新できます", resp.ErrorMessage)
}

// ---- stream endpoint ----

type fakeSubscribeStream struct {
	chatpb.MessageService_SubscribeMessagesServer

	ctx    context.Context
	mu     sync.Mutex
	events []*chatpb.MessageEvent
}

func (f *fakeSubscribeStream) Context() context.Context { return f.ctx }

func (f *fakeSubscribeStream) Send(e *chatpb.MessageEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, e)
	return nil
}

func TestStreamEndpoint_TranslatesEvents(t *testing.T) {
	stream := &fakeSubscribeStream{}
	ep := &streamEndpoint{stream: stream}

	msg := &models.Message{ID: "m1", ChannelID: "c1", Content: "hi", CreatedAt: time.Now()}

	require.NoError(t, ep.Send(subscriptions.Event{Type: subscriptions.EventCreated, Message: msg}))
	require.NoError(t, ep.Send(subscriptions.Event{Type: subscriptions.EventDeleted, Message: msg}))

	require.Len(t, stream.events, 2)
	assert.Equal(t, chatpb.EventType_MESSAGE_SENT, stream.events[0].EventType)
	assert.Equal(t, chatpb.EventType_MESSAGE_DELETED, stream.events[1].EventType)
	assert.Equal(t, "m1", stream.events[0].Message.Id)
}

func TestSubscribeMessagesHandler_ClientCancelDetaches(t *testing.T) {
	f := newFixture(t)
	user, token := f.addUser(t, "alice")
	channel := f.addChannel(t, user)

	ctx, cancel := context.WithCancel(context.Background())
	stream := &fakeSubscribeStream{ctx: ctx}

	done := make(chan error, 1)
	go func() {
		done <- f.srv.SubscribeMessages(&chatpb.SubscribeMessagesRequest{ChannelId: channel.ID, Token: token}, stream)
	}()

	require.Eventually(t, func() bool { return f.registry.Count(channel.ID) == 1 },
		time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("handler did not return after client cancellation")
	}
	assert.Equal(t, 0, f.registry.Count(channel.ID))
}

func TestSubscribeMessagesHandler_EndsOnServerShutdown(t *testing.T) {
	f := newFixture(t)
	user, token := f.addUser(t, "alice")
	channel := f.addChannel(t, user)

	// the client never cancels; shutdown alone must end the stream
	stream := &fakeSubscribeStream{ctx: context.Background()}

	done := make(chan error, 1)
	go func() {
		done <- f.srv.SubscribeMessages(&chatpb.SubscribeMessagesRequest{ChannelId: channel.ID, Token: token}, stream)
	}()

	require.Eventually(t, func() bool { return f.registry.Count(channel.ID) == 1 },
		time.Second, 5*time.Millisecond)

	close(f.srv.stopping)
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("handler did not return on server shutdown")
	}
	assert.Equal(t, 0, f.registry.Count(channel.ID))
}
