package messages

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mizukilab/gochat/internal/common"
	"github.com/mizukilab/gochat/internal/dbx"
	"github.com/mizukilab/gochat/internal/server/models"
)

// PostgresRepository implements Repository over dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, message *models.Message) (*models.Message, error) {
	query := `
		INSERT INTO messages (id, channel_id, user_id, username, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		message.ID, message.ChannelID, message.UserID, message.Username,
		message.Content, message.CreatedAt, message.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	return message, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Message, error) {
	query := `
		SELECT id, channel_id, user_id, username, content, created_at, updated_at
		FROM messages
		WHERE id = $1
	`
	message := &models.Message{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&message.ID, &message.ChannelID, &message.UserID, &message.Username,
		&message.Content, &message.CreatedAt, &message.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	return message, nil
}

func (r *PostgresRepository) ListByChannelID(ctx context.Context, channelID string, limit int, before *time.Time) ([]*models.Message, error) {
	query := `
		SELECT id, channel_id, user_id, username, content, created_at, updated_at
		FROM messages
		WHERE channel_id = $1 AND ($2::timestamptz IS NULL OR created_at < $2)
		ORDER BY created_at DESC, id DESC
		LIMIT $3
	`
	var beforeArg any
	if before != nil {
		beforeArg = *before
	}
	rows, err := r.db.QueryContext(ctx, query, channelID, beforeArg, limit)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	var out []*models.Message
	for rows.Next() {
		message := &models.Message{}
		if err := rows.Scan(&message.ID, &message.ChannelID, &message.UserID, &message.Username,
			&message.Content, &message.CreatedAt, &message.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		out = append(out, message)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return out, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM messages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
