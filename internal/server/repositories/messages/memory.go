package messages

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/mizukilab/gochat/internal/common"
	"github.com/mizukilab/gochat/internal/server/models"
)

// MemoryRepository is an in-memory message store guarded by a RW mutex.
// Each message carries an insertion sequence number so that descending
// ordering stays stable when two messages share a timestamp.
type MemoryRepository struct {
	mu   sync.RWMutex
	byID map[string]*storedMessage
	seq  uint64
}

type storedMessage struct {
	msg *models.Message
	seq uint64
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byID: make(map[string]*storedMessage)}
}

func cloneMessage(m *models.Message) *models.Message {
	c := *m
	return &c
}

func (r *MemoryRepository) Create(ctx context.Context, message *models.Message) (*models.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	r.byID[message.ID] = &storedMessage{msg: cloneMessage(message), seq: r.seq}
	return cloneMessage(message), nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*models.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return cloneMessage(s.msg), nil
}

func (r *MemoryRepository) ListByChannelID(ctx context.Context, channelID string, limit int, before *time.Time) ([]*models.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []*storedMessage
	for _, s := range r.byID {
		if s.msg.ChannelID != channelID {
			continue
		}
		if before != nil && !s.msg.CreatedAt.Before(*before) {
			continue
		}
		matched = append(matched, s)
	}

	sort.Slice(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if !a.msg.CreatedAt.Equal(b.msg.CreatedAt) {
			return a.msg.CreatedAt.After(b.msg.CreatedAt)
		}
		return a.seq > b.seq
	})

	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}

	out := make([]*models.Message, 0, len(matched))
	for _, s := range matched {
		out = append(out, cloneMessage(s.msg))
	}
	return out, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.byID, id)
	return nil
}
