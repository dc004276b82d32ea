package sessions

import (
	"context"
	"sync"

	"github.com/mizukilab/gochat/internal/common"
	"github.com/mizukilab/gochat/internal/server/models"
)

// MemoryRepository is an in-memory session store guarded by a RW mutex.
type MemoryRepository struct {
	mu      sync.RWMutex
	byToken map[string]*models.Session
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byToken: make(map[string]*models.Session)}
}

func (r *MemoryRepository) Add(ctx context.Context, session *models.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := *session
	r.byToken[c.Token] = &c
	return nil
}

func (r *MemoryRepository) Get(ctx context.Context, token string) (*models.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byToken[token]
	if !ok {
		return nil, common.ErrorNotFound
	}
	c := *s
	return &c, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.byToken, token)
	return nil
}

func (r *MemoryRepository) DeleteByUserID(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for token, s := range r.byToken {
		if s.UserID == userID {
			delete(r.byToken, token)
		}
	}
	return nil
}
