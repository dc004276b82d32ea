package messages

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mizukilab/gochat/internal/common"
	"github.com/mizukilab/gochat/internal/server/models"
)

func addMessage(t *testing.T, r *MemoryRepository, id, channelID string, at time.Time) *models.Message {
	t.Helper()
	msg, err := r.Create(context.Background(), &models.Message{
		ID: id, ChannelID: channelID, UserID: "u1", Username: "Alice",
		Content: "content " + id, CreatedAt: at, UpdatedAt: at,
	})
	require.NoError(t, err)
	return msg
}

func TestMemoryList_NewestFirst(t *testing.T) {
	r := NewMemoryRepository()
	base := time.Now()

	for i := 0; i < 4; i++ {
		addMessage(t, r, fmt.Sprintf("m%d", i), "c1", base.Add(time.Duration(i)*time.Second))
	}

	out, err := r.ListByChannelID(context.Background(), "c1", 10, nil)
	require.NoError(t, err)
	require.Len(t, out, 4)
	assert.Equal(t, "m3", out[0].ID)
	assert.Equal(t, "m0", out[3].ID)
}

func TestMemoryList_EqualTimestampsKeepInsertionRecency(t *testing.T) {
	r := NewMemoryRepository()
	at := time.Now()

	addMessage(t, r, "first", "c1", at)
	addMessage(t, r, "second", "c1", at)

	out, err := r.ListByChannelID(context.Background(), "c1", 10, nil)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "second", out[0].ID)
	assert.Equal(t, "first", out[1].ID)
}

func TestMemoryList_LimitAndBefore(t *testing.T) {
	r := NewMemoryRepository()
	base := time.Now()

	for i := 0; i < 5; i++ {
		addMessage(t, r, fmt.Sprintf("m%d", i), "c1", base.Add(time.Duration(i)*time.Second))
	}

	out, err := r.ListByChannelID(context.Background(), "c1", 2, nil)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "m4", out[0].ID)

	cutoff := base.Add(2 * time.Second)
	out, err = r.ListByChannelID(context.Background(), "c1", 10, &cutoff)
	require.NoError(t, err)
	require.Len(t, out, 2)
	// strictly older than the cutoff: m2 itself is excluded
	assert.Equal(t, "m1", out[0].ID)
	assert.Equal(t, "m0", out[1].ID)
}

func TestMemoryList_ChannelFilter(t *testing.T) {
	r := NewMemoryRepository()
	now := time.Now()

	addMessage(t, r, "a", "c1", now)
	addMessage(t, r, "b", "c2", now)

	out, err := r.ListByChannelID(context.Background(), "c1", 10, nil)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "a", out[0].ID)
}

func TestMemoryGetAndDelete(t *testing.T) {
	r := NewMemoryRepository()
	addMessage(t, r, "m1", "c1", time.Now())

	got, err := r.GetByID(context.Background(), "m1")
	require.NoError(t, err)
	assert.Equal(t, "m1", got.ID)

	require.NoError(t, r.Delete(context.Background(), "m1"))
	_, err = r.GetByID(context.Background(), "m1")
	require.ErrorIs(t, err, common.ErrorNotFound)
	require.ErrorIs(t, r.Delete(context.Background(), "m1"), common.ErrorNotFound)
}

func TestMemoryGet_ReturnsCopy(t *testing.T) {
	r := NewMemoryRepository()
	addMessage(t, r, "m1", "c1", time.Now())

	got, err := r.GetByID(context.Background(), "m1")
	require.NoError(t, err)
	got.Content = "mutated"

	again, err := r.GetByID(context.Background(), "m1")
	require.NoError(t, err)
	assert.Equal(t, "content m1", again.Content)
}
