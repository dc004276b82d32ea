package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/mizukilab/gochat/internal/server/migrations"
	"github.com/mizukilab/gochat/internal/server/repositories/channels"
	"github.com/mizukilab/gochat/internal/server/repositories/messages"
	"github.com/mizukilab/gochat/internal/server/repositories/sessions"
	"github.com/mizukilab/gochat/internal/server/repositories/users"
)

// PostgresRepositoryManager bundles the Postgres repositories over a single
// *sql.DB (pgx stdlib driver) and runs the embedded goose migrations on
// construction.
type PostgresRepositoryManager struct {
	db       *sql.DB
	users    *users.PostgresRepository
	sessions *sessions.PostgresRepository
	channels *channels.PostgresRepository
	messages *messages.PostgresRepository
}

func NewPostgresRepositoryManager(ctx context.Context, dsn string) (*PostgresRepositoryManager, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	m := &PostgresRepositoryManager{
		db:       db,
		users:    users.NewPostgresRepository(db),
		sessions: sessions.NewPostgresRepository(db),
		channels: channels.NewPostgresRepository(db),
		messages: messages.NewPostgresRepository(db),
	}

	if err := m.runMigrations(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return m, nil
}

func (m *PostgresRepositoryManager) runMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return goose.UpContext(ctx, m.db, ".")
}

func (m *PostgresRepositoryManager) Conn() *sql.DB { return m.db }

func (m *PostgresRepositoryManager) Users() users.Repository       { return m.users }
func (m *PostgresRepositoryManager) Sessions() sessions.Repository { return m.sessions }
func (m *PostgresRepositoryManager) Channels() channels.Repository { return m.channels }
func (m *PostgresRepositoryManager) Messages() messages.Repository { return m.messages }

func (m *PostgresRepositoryManager) Close() error { return m.db.Close() }
