package subscriptions

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mizukilab/gochat/internal/logging"
	"github.com/mizukilab/gochat/internal/server/models"
)

// ---- test logger ----

type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...any) {}
func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}
func (nopLogger) With(...any) logging.Logger            { return nopLogger{} }

// ---- fake endpoint ----

type fakeEndpoint struct {
	mu      sync.Mutex
	events  []Event
	sendErr error
}

func (f *fakeEndpoint) Send(event Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil {
		return f.sendErr
	}
	f.events = append(f.events, event)
	return nil
}

func (f *fakeEndpoint) received() []Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Event(nil), f.events...)
}

func testEvent(channelID, content string) Event {
	return Event{Type: EventCreated, Message: &models.Message{ChannelID: channelID, Content: content}}
}

// ---- tests ----

func TestAttachAndBroadcast(t *testing.T) {
	r := NewRegistry(nopLogger{})
	ep := &fakeEndpoint{}

	r.Attach("c1", ep)
	require.Equal(t, 1, r.Count("c1"))

	r.Broadcast(context.Background(), "c1", testEvent("c1", "hello"))

	events := ep.received()
	require.Len(t, events, 1)
	assert.Equal(t, "hello", events[0].Message.Content)
}

func TestAttach_SameEndpointTwice(t *testing.T) {
	r := NewRegistry(nopLogger{})
	ep := &fakeEndpoint{}

	r.Attach("c1", ep)
	r.Attach("c1", ep)

	assert.Equal(t, 1, r.Count("c1"))

	r.Broadcast(context.Background(), "c1", testEvent("c1", "once"))
	assert.Len(t, ep.received(), 1)
}

func TestBroadcast_ChannelIsolation(t *testing.T) {
	r := NewRegistry(nopLogger{})
	ep1 := &fakeEndpoint{}
	ep2 := &fakeEndpoint{}

	r.Attach("c1", ep1)
	r.Attach("c2", ep2)

	r.Broadcast(context.Background(), "c1", testEvent("c1", "only c1"))

	assert.Len(t, ep1.received(), 1)
	assert.Empty(t, ep2.received())
}

func TestDetach_Idempotent(t *testing.T) {
	r := NewRegistry(nopLogger{})
	ep := &fakeEndpoint{}

	r.Attach("c1", ep)
	r.Detach("c1", ep)
	r.Detach("c1", ep)
	r.Detach("other", ep)

	assert.Equal(t, 0, r.Count("c1"))

	r.Broadcast(context.Background(), "c1", testEvent("c1", "gone"))
	assert.Empty(t, ep.received())
}

func TestDetach_OnlyAffectsTarget(t *testing.T) {
	r := NewRegistry(nopLogger{})
	ep1 := &fakeEndpoint{}
	ep2 := &fakeEndpoint{}

	r.Attach("c1", ep1)
	r.Attach("c1", ep2)
	r.Detach("c1", ep1)

	r.Broadcast(context.Background(), "c1", testEvent("c1", "still here"))

	assert.Empty(t, ep1.received())
	assert.Len(t, ep2.received(), 1)
}

func TestBroadcast_FailedEndpointDoesNotBlockOthers(t *testing.T) {
	r := NewRegistry(nopLogger{})
	broken := &fakeEndpoint{sendErr: errors.New("stream closed")}
	healthy := &fakeEndpoint{}

	r.Attach("c1", broken)
	r.Attach("c1", healthy)

	r.Broadcast(context.Background(), "c1", testEvent("c1", "delivered"))

	assert.Len(t, healthy.received(), 1)
}

func TestBroadcast_EmptyChannel(t *testing.T) {
	r := NewRegistry(nopLogger{})
	// must not panic
	r.Broadcast(context.Background(), "nobody", testEvent("nobody", "void"))
}

func TestRegistry_ConcurrentUse(t *testing.T) {
	r := NewRegistry(nopLogger{})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ep := &fakeEndpoint{}
			for j := 0; j < 100; j++ {
				r.Attach("c1", ep)
				r.Broadcast(context.Background(), "c1", testEvent("c1", "x"))
				r.Detach("c1", ep)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, r.Count("c1"))
}
