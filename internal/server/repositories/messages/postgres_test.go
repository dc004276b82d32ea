package messages

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mizukilab/gochat/internal/common"
	"github.com/mizukilab/gochat/internal/server/models"
)

func setupMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func messageColumns() []string {
	return []string{"id", "channel_id", "user_id", "username", "content", "created_at", "updated_at"}
}

func TestPostgresCreate(t *testing.T) {
	db, mock := setupMock(t)
	repo := NewPostgresRepository(db)

	now := time.Now()
	msg := &models.Message{ID: "m1", ChannelID: "c1", UserID: "u1", Username: "Alice", Content: "hi", CreatedAt: now, UpdatedAt: now}

	mock.ExpectExec("INSERT INTO messages").
		WithArgs(msg.ID, msg.ChannelID, msg.UserID, msg.Username, msg.Content, msg.CreatedAt, msg.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := repo.Create(context.Background(), msg)
	require.NoError(t, err)
	assert.Equal(t, "m1", created.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresListByChannelID(t *testing.T) {
	db, mock := setupMock(t)
	repo := NewPostgresRepository(db)

	now := time.Now()
	mock.ExpectQuery("SELECT id, channel_id, user_id, username, content, created_at, updated_at").
		WithArgs("c1", nil, 2).
		WillReturnRows(sqlmock.NewRows(messageColumns()).
			AddRow("m2", "c1", "u1", "Alice", "newer", now, now).
			AddRow("m1", "c1", "u1", "Alice", "older", now.Add(-time.Minute), now.Add(-time.Minute)))

	out, err := repo.ListByChannelID(context.Background(), "c1", 2, nil)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "newer", out[0].Content)
	assert.Equal(t, "older", out[1].Content)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresListByChannelID_Before(t *testing.T) {
	db, mock := setupMock(t)
	repo := NewPostgresRepository(db)

	cutoff := time.Now()
	mock.ExpectQuery("SELECT id, channel_id, user_id, username, content, created_at, updated_at").
		WithArgs("c1", cutoff, 10).
		WillReturnRows(sqlmock.NewRows(messageColumns()))

	out, err := repo.ListByChannelID(context.Background(), "c1", 10, &cutoff)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresGetByID_NotFound(t *testing.T) {
	db, mock := setupMock(t)
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("SELECT id, channel_id, user_id, username, content, created_at, updated_at").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "missing")
	require.ErrorIs(t, err, common.ErrorNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
