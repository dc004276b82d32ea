package channels

import (
	"context"
	"slices"
	"sort"
	"sync"

	"github.com/mizukilab/gochat/internal/common"
	"github.com/mizukilab/gochat/internal/server/models"
)

// MemoryRepository is an in-memory channel store guarded by a RW mutex.
type MemoryRepository struct {
	mu   sync.RWMutex
	byID map[string]*models.Channel
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byID: make(map[string]*models.Channel)}
}

func cloneChannel(c *models.Channel) *models.Channel {
	cc := *c
	cc.MemberIDs = slices.Clone(c.MemberIDs)
	return &cc
}

func (r *MemoryRepository) Create(ctx context.Context, channel *models.Channel) (*models.Channel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := cloneChannel(channel)
	r.byID[c.ID] = c
	return cloneChannel(c), nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*models.Channel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return cloneChannel(c), nil
}

func (r *MemoryRepository) ListByUserID(ctx context.Context, userID string) ([]*models.Channel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*models.Channel
	for _, c := range r.byID {
		if c.HasMember(userID) {
			out = append(out, cloneChannel(c))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *MemoryRepository) Update(ctx context.Context, channel *models.Channel) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[channel.ID]; !ok {
		return common.ErrorNotFound
	}
	r.byID[channel.ID] = cloneChannel(channel)
	return nil
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
