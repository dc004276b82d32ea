// Package subscriptions implements the in-process fan-out registry that
// delivers message events to the live endpoints of a channel. The registry
// is single-process and in-memory: endpoints exist only for the lifetime of
// an open stream and are never persisted.
package subscriptions

import (
	"context"
	"sync"

	"github.com/mizukilab/gochat/internal/logging"
	"github.com/mizukilab/gochat/internal/server/metrics"
	"github.com/mizukilab/gochat/internal/server/models"
)

// EventType discriminates the two things that can happen to a message.
type EventType int

const (
	EventCreated EventType = iota
	EventDeleted
)

// Event is what subscribers receive: the kind of mutation and a snapshot of
// the affected message.
type Event struct {
	Type    EventType
	Message *models.Message
}

// Endpoint is a live, per-connection delivery handle. Send must be safe for
// concurrent use: broadcasts for the same channel can originate from
// different callers at once.
type Endpoint interface {
	Send(event Event) error
}

// Registry maintains, per channel id, the set of currently attached
// endpoints. One RW mutex guards the bucket map; channel cardinality is low
// enough that finer-grained locking buys nothing.
type Registry struct {
	mu      sync.RWMutex
	buckets map[string]map[Endpoint]struct{}
	logger  logging.Logger
}

func NewRegistry(logger logging.Logger) *Registry {
	return &Registry{
		buckets: make(map[string]map[Endpoint]struct{}),
		logger:  logger.With("module", "subscriptions"),
	}
}

// Attach adds endpoint to the channel's set, creating the set on first use.
// Attaching the same endpoint twice is harmless; the set stays deduplicated.
func (r *Registry) Attach(channelID string, endpoint Endpoint) {
	r.mu.Lock()
	defer r.mu.Unlock()

	bucket, ok := r.buckets[channelID]
	if !ok {
		bucket = make(map[Endpoint]struct{})
		r.buckets[channelID] = bucket
	}
	bucket[endpoint] = struct{}{}

	metrics.ActiveSubscriptions.WithLabelValues(channelID).Set(float64(len(bucket)))
}

// Detach removes endpoint from the channel's set. Once the set is empty the
// bucket itself is discarded so stale channels do not accumulate. Detaching
// an endpoint or channel that is already gone is a no-op.
func (r *Registry) Detach(channelID string, endpoint Endpoint) {
	r.mu.Lock()
	defer r.mu.Unlock()

	bucket, ok := r.buckets[channelID]
	if !ok {
		return
	}
	delete(bucket, endpoint)
	if len(bucket) == 0 {
		delete(r.buckets, channelID)
	}

	metrics.ActiveSubscriptions.WithLabelValues(channelID).Set(float64(len(bucket)))
}

// Count reports how many endpoints are attached to the channel.
func (r *Registry) Count(channelID string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.buckets[channelID])
}

// Broadcast delivers event to every endpoint attached to channelID at the
// instant the broadcast begins. The bucket is snapshotted under the read
// lock and deliveries happen outside it, so a concurrent Detach can never
// crash the iteration or starve an unrelated endpoint. A failed delivery is
// logged and skipped; it never aborts delivery to the rest and never
// propagates to the caller whose mutation produced the event.
func (r *Registry) Broadcast(ctx context.Context, channelID string, event Event) {
	r.mu.RLock()
	snapshot := make([]Endpoint, 0, len(r.buckets[channelID]))
	for endpoint := range r.buckets[channelID] {
		snapshot = append(snapshot, endpoint)
	}
	r.mu.RUnlock()

	for _, endpoint := range snapshot {
		if err := endpoint.Send(event); err != nil {
			metrics.BroadcastFailures.Inc()
			r.logger.Warn(ctx, "dropping event for subscriber", "channel_id", channelID, "error", err.Error())
		}
	}
}
