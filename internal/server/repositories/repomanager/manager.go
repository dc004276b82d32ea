// Package repomanager wires the per-aggregate repositories to a concrete
// storage backend and hands them out as one bundle.
package repomanager

import (
	"github.com/mizukilab/gochat/internal/server/repositories/channels"
	"github.com/mizukilab/gochat/internal/server/repositories/messages"
	"github.com/mizukilab/gochat/internal/server/repositories/sessions"
	"github.com/mizukilab/gochat/internal/server/repositories/users"
)

// RepositoryManager exposes one repository per aggregate. Close releases
// whatever resources the backend holds; the in-memory manager's Close is
// a no-op.
type RepositoryManager interface {
	Users() users.Repository
	Sessions() sessions.Repository
	Channels() channels.Repository
	Messages() messages.Repository
	Close() error
}
