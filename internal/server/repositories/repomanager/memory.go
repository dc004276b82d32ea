package repomanager

import (
	"github.com/mizukilab/gochat/internal/server/repositories/channels"
	"github.com/mizukilab/gochat/internal/server/repositories/messages"
	"github.com/mizukilab/gochat/internal/server/repositories/sessions"
	"github.com/mizukilab/gochat/internal/server/repositories/users"
)

// MemoryRepositoryManager bundles the in-memory repositories. It is the
// default backend when no database DSN is configured and the backend the
// service tests run against.
type MemoryRepositoryManager struct {
	users    *users.MemoryRepository
	sessions *sessions.MemoryRepository
	channels *channels.MemoryRepository
	messages *messages.MemoryRepository
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{
		users:    users.NewMemoryRepository(),
		sessions: sessions.NewMemoryRepository(),
		channels: channels.NewMemoryRepository(),
		messages: messages.NewMemoryRepository(),
	}
}

func (m *MemoryRepositoryManager) Users() users.Repository       { return m.users }
func (m *MemoryRepositoryManager) Sessions() sessions.Repository { return m.sessions }
func (m *MemoryRepositoryManager) Channels() channels.Repository { return m.channels }
func (m *MemoryRepositoryManager) Messages() messages.Repository { return m.messages }

func (m *MemoryRepositoryManager) Close() error { return nil }
