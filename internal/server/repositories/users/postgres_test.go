package users

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
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

func userColumns() []string {
	return []string{"id", "username", "password_hash", "display_name", "created_at", "is_active"}
}

func TestPostgresCreate(t *testing.T) {
	db, mock := setupMock(t)
	repo := NewPostgresRepository(db)

	user := &models.User{ID: "u1", Username: "alice", PasswordHash: "h", DisplayName: "Alice", CreatedAt: time.Now(), IsActive: true}

	mock.ExpectExec("INSERT INTO users").
		WithArgs(user.ID, user.Username, user.PasswordHash, user.DisplayName, user.CreatedAt, user.IsActive).
		WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := repo.Create(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, "alice", created.Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCreate_UniqueViolation(t *testing.T) {
	db, mock := setupMock(t)
	repo := NewPostgresRepository(db)

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"})

	_, err := repo.Create(context.Background(), &models.User{ID: "u1", Username: "alice"})
	require.ErrorIs(t, err, common.ErrorUsernameTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresGetByUsername(t *testing.T) {
	db, mock := setupMock(t)
	repo := NewPostgresRepository(db)

	now := time.Now()
	mock.ExpectQuery("SELECT id, username, password_hash, display_name, created_at, is_active").
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows(userColumns()).AddRow("u1", "alice", "h", "Alice", now, true))

	user, err := repo.GetByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.True(t, user.IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresGetByID_NotFound(t *testing.T) {
	db, mock := setupMock(t)
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("SELECT id, username, password_hash, display_name, created_at, is_active").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "missing")
	require.ErrorIs(t, err, common.ErrorNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUpdate_NoRows(t *testing.T) {
	db, mock := setupMock(t)
	repo := NewPostgresRepository(db)

	mock.ExpectExec("UPDATE users").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &models.User{ID: "missing"})
	require.ErrorIs(t, err, common.ErrorNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresDelete(t *testing.T) {
	db, mock := setupMock(t)
	repo := NewPostgresRepository(db)

	mock.ExpectExec("DELETE FROM users").
		WithArgs("u1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), "u1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
