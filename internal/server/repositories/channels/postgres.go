package channels

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mizukilab/gochat/internal/common"
	"github.com/mizukilab/gochat/internal/dbx"
	"github.com/mizukilab/gochat/internal/server/models"
)

// PostgresRepository stores channels in a channels table plus a
// channel_members join table. Mutations that touch both run in a
// transaction via dbx.WithTx, so it needs the *sql.DB rather than a DBTX.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, channel *models.Channel) (*models.Channel, error) {
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		query := `
			INSERT INTO channels (id, name, description, created_by, created_at, is_private)
			VALUES ($1, $2, $3, $4, $5, $6)
		`
		if _, err := tx.ExecContext(ctx, query,
			channel.ID, channel.Name, channel.Description,
			channel.CreatedBy, channel.CreatedAt, channel.IsPrivate); err != nil {
			return err
		}
		return insertMembers(ctx, tx, channel.ID, channel.MemberIDs)
	})
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	return channel, nil
}

func insertMembers(ctx context.Context, tx dbx.DBTX, channelID string, memberIDs []string) error {
	query := `
		INSERT INTO channel_members (channel_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`
	for _, id := range memberIDs {
		if _, err := tx.ExecContext(ctx, query, channelID, id); err != nil {
			return err
		}
	}
	return nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Channel, error) {
	query := `
		SELECT c.id, c.name, c.description, c.created_by, c.created_at, c.is_private,
		       COALESCE(array_agg(m.user_id) FILTER (WHERE m.user_id IS NOT NULL), '{}')
		FROM channels c
		LEFT JOIN channel_members m ON m.channel_id = c.id
		WHERE c.id = $1
		GROUP BY c.id
	`
	channel := &models.Channel{}
	var members []byte
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&channel.ID, &channel.Name, &channel.Description,
		&channel.CreatedBy, &channel.CreatedAt, &channel.IsPrivate, &members)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	channel.MemberIDs = parseTextArray(members)
	return channel, nil
}

func (r *PostgresRepository) ListByUserID(ctx context.Context, userID string) ([]*models.Channel, error) {
	query := `
		SELECT c.id, c.name, c.description, c.created_by, c.created_at, c.is_private,
		       COALESCE(array_agg(m.user_id) FILTER (WHERE m.user_id IS NOT NULL), '{}')
		FROM channels c
		LEFT JOIN channel_members m ON m.channel_id = c.id
		WHERE c.id IN (SELECT channel_id FROM channel_members WHERE user_id = $1)
		GROUP BY c.id
		ORDER BY c.created_at
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	var out []*models.Channel
	for rows.Next() {
		channel := &models.Channel{}
		var members []byte
		if err := rows.Scan(&channel.ID, &channel.Name, &channel.Description,
			&channel.CreatedBy, &channel.CreatedAt, &channel.IsPrivate, &members); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		channel.MemberIDs = parseTextArray(members)
		out = append(out, channel)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return out, nil
}

func (r *PostgresRepository) Update(ctx context.Context, channel *models.Channel) error {
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		query := `
			UPDATE channels
			SET name = $2, description = $3, is_private = $4
			WHERE id = $1
		`
		res, err := tx.ExecContext(ctx, query,
			channel.ID, channel.Name, channel.Description, channel.IsPrivate)
		if err != nil {
			return err
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return common.ErrorNotFound
		}
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM channel_members WHERE channel_id = $1`, channel.ID); err != nil {
			return err
		}
		return insertMembers(ctx, tx, channel.ID, channel.MemberIDs)
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("error performing sql request: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	// channel_members and messages rows go away via ON DELETE CASCADE.
	res, err := r.db.ExecContext(ctx, `DELETE FROM channels WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

// parseTextArray decodes a one-dimensional Postgres text[] literal of UUIDs,
// e.g. {a,b,c}. Member ids never contain quotes or escapes, so a simple
// split is enough.
func parseTextArray(raw []byte) []string {
	s := string(raw)
	if len(s) < 2 || s == "{}" {
		return []string{}
	}
	s = s[1 : len(s)-1]
	var out []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ',' {
			if i > start {
				out = append(out, s[start:i])
			}
			start = i + 1
		}
	}
	return out
}
