package channels

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

func newMockRepo(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresRepository(db), mock
}

func TestPostgresCreate_InsertsChannelAndMembersInTx(t *testing.T) {
	repo, mock := newMockRepo(t)

	now := time.Now()
	channel := &models.Channel{
		ID: "c1", Name: "general", Description: "demo",
		CreatedBy: "u1", CreatedAt: now, MemberIDs: []string{"u1", "u2"},
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO channels").
		WithArgs("c1", "general", "demo", "u1", now, false).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO channel_members").
		WithArgs("c1", "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO channel_members").
		WithArgs("c1", "u2").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	got, err := repo.Create(context.Background(), channel)
	require.NoError(t, err)
	assert.Equal(t, "c1", got.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresGetByID_ParsesMemberArray(t *testing.T) {
	repo, mock := newMockRepo(t)

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "name", "description", "created_by", "created_at", "is_private", "coalesce",
	}).AddRow("c1", "general", "demo", "u1", now, false, []byte("{u1,u2}"))

	mock.ExpectQuery("SELECT c.id").WithArgs("c1").WillReturnRows(rows)

	channel, err := repo.GetByID(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, []string{"u1", "u2"}, channel.MemberIDs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresGetByID_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT c.id").WithArgs("missing").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "missing")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestPostgresUpdate_RollsBackWhenChannelMissing(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE channels").
		WithArgs("missing", "x", "", false).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.Update(context.Background(), &models.Channel{ID: "missing", Name: "x"})
	require.ErrorIs(t, err, common.ErrorNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresDelete_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("DELETE FROM channels").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "missing")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestParseTextArray(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{"{}", []string{}},
		{"{a}", []string{"a"}},
		{"{a,b,c}", []string{"a", "b", "c"}},
		{"", []string{}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseTextArray([]byte(tt.raw)), "raw=%q", tt.raw)
	}
}
