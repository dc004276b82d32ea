package sessions

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mizukilab/gochat/internal/common"
	"github.com/mizukilab/gochat/internal/server/models"
)

func addSession(t *testing.T, r *MemoryRepository, token, userID string) {
	t.Helper()
	require.NoError(t, r.Add(context.Background(), &models.Session{
		Token: token, UserID: userID, CreatedAt: time.Now(),
	}))
}

func TestMemoryAddAndGet(t *testing.T) {
	r := NewMemoryRepository()
	addSession(t, r, "tok", "u1")

	s, err := r.Get(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, "u1", s.UserID)

	_, err = r.Get(context.Background(), "missing")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestMemoryDelete_AbsentIsNoop(t *testing.T) {
	r := NewMemoryRepository()
	addSession(t, r, "tok", "u1")

	require.NoError(t, r.Delete(context.Background(), "tok"))
	require.NoError(t, r.Delete(context.Background(), "tok"))

	_, err := r.Get(context.Background(), "tok")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestMemoryDeleteByUserID(t *testing.T) {
	r := NewMemoryRepository()
	addSession(t, r, "t1", "u1")
	addSession(t, r, "t2", "u1")
	addSession(t, r, "t3", "u2")

	require.NoError(t, r.DeleteByUserID(context.Background(), "u1"))

	_, err := r.Get(context.Background(), "t1")
	require.ErrorIs(t, err, common.ErrorNotFound)
	_, err = r.Get(context.Background(), "t2")
	require.ErrorIs(t, err, common.ErrorNotFound)

	// other user's session untouched
	s, err := r.Get(context.Background(), "t3")
	require.NoError(t, err)
	assert.Equal(t, "u2", s.UserID)
}
