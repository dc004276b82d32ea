package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mizukilab/gochat/internal/common"
)

func TestChannelCreate(t *testing.T) {
	f := newFixture()
	user, token := f.addUser(t, "alice")

	channel, err := f.channelsSvc.Create(context.Background(), token, "general", "all hands", false)
	require.NoError(t, err)

	assert.Equal(t, "general", channel.Name)
	assert.Equal(t, user.ID, channel.CreatedBy)
	assert.Equal(t, []string{user.ID}, channel.MemberIDs)
}

func TestChannelCreate_InvalidToken(t *testing.T) {
	f := newFixture()

	_, err := f.channelsSvc.Create(context.Background(), "bogus", "general", "", false)
	require.ErrorIs(t, err, common.ErrorUnauthenticated)
}

func TestChannelList_OnlyOwnChannels(t *testing.T) {
	f := newFixture()
	alice, aliceToken := f.addUser(t, "alice")
	_, bobToken := f.addUser(t, "bob")

	f.addChannel(t, alice)
	f.addChannel(t, alice)

	listed, err := f.channelsSvc.List(context.Background(), aliceToken)
	require.NoError(t, err)
	assert.Len(t, listed, 2)

	listed, err = f.channelsSvc.List(context.Background(), bobToken)
	require.NoError(t, err)
	assert.Empty(t, listed)

	// soft failure: bad token means empty, not error
	listed, err = f.channelsSvc.List(context.Background(), "bogus")
	require.NoError(t, err)
	assert.Empty(t, listed)
	assert.NotNil(t, listed)
}

func TestChannelGet_MembersOnly(t *testing.T) {
	f := newFixture()
	alice, aliceToken := f.addUser(t, "alice")
	_, bobToken := f.addUser(t, "bob")
	channel := f.addChannel(t, alice)

	got, err := f.channelsSvc.Get(context.Background(), aliceToken, channel.ID)
	require.NoError(t, err)
	assert.Equal(t, channel.ID, got.ID)

	_, err = f.channelsSvc.Get(context.Background(), bobToken, channel.ID)
	require.ErrorIs(t, err, common.ErrorNotAMember)

	_, err = f.channelsSvc.Get(context.Background(), aliceToken, "nope")
	require.ErrorIs(t, err, common.ErrorChannelNotFound)
}

func TestChannelUpdate_CreatorOnly(t *testing.T) {
	f := newFixture()
	alice, aliceToken := f.addUser(t, "alice")
	bob, bobToken := f.addUser(t, "bob")
	channel := f.addChannel(t, alice, bob.ID)

	_, err := f.channelsSvc.Update(context.Background(), bobToken, channel.ID, "renamed", "")
	require.ErrorIs(t, err, common.ErrorNotOwner)

	updated, err := f.channelsSvc.Update(context.Background(), aliceToken, channel.ID, "renamed", "new desc")
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Name)
	assert.Equal(t, "new desc", updated.Description)
}

func TestChannelDelete_CreatorOnly(t *testing.T) {
	f := newFixture()
	alice, aliceToken := f.addUser(t, "alice")
	bob, bobToken := f.addUser(t, "bob")
	channel := f.addChannel(t, alice, bob.ID)

	err := f.channelsSvc.Delete(context.Background(), bobToken, channel.ID)
	require.ErrorIs(t, err, common.ErrorNotOwner)

	require.NoError(t, f.channelsSvc.Delete(context.Background(), aliceToken, channel.ID))

	_, err = f.channelsSvc.Get(context.Background(), aliceToken, channel.ID)
	require.ErrorIs(t, err, common.ErrorChannelNotFound)
}

func TestChannelAddMember(t *testing.T) {
	f := newFixture()
	alice, aliceToken := f.addUser(t, "alice")
	bob, bobToken := f.addUser(t, "bob")
	channel := f.addChannel(t, alice)

	// only the creator manages membership
	err := f.channelsSvc.AddMember(context.Background(), bobToken, channel.ID, bob.ID)
	require.ErrorIs(t, err, common.ErrorNotOwner)

	require.NoError(t, f.channelsSvc.AddMember(context.Background(), aliceToken, channel.ID, bob.ID))
	// idempotent
	require.NoError(t, f.channelsSvc.AddMember(context.Background(), aliceToken, channel.ID, bob.ID))

	got, err := f.channelsSvc.Get(context.Background(), bobToken, channel.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{alice.ID, bob.ID}, got.MemberIDs)
}

func TestChannelRemoveMember(t *testing.T) {
	f := newFixture()
	alice, aliceToken := f.addUser(t, "alice")
	bob, bobToken := f.addUser(t, "bob")
	channel := f.addChannel(t, alice, bob.ID)

	require.NoError(t, f.channelsSvc.RemoveMember(context.Background(), aliceToken, channel.ID, bob.ID))

	_, err := f.channelsSvc.Get(context.Background(), bobToken, channel.ID)
	require.ErrorIs(t, err, common.ErrorNotAMember)
}

func TestChannelRemoveMember_CreatorStays(t *testing.T) {
	f := newFixture()
	alice, aliceToken := f.addUser(t, "alice")
	channel := f.addChannel(t, alice)

	err := f.channelsSvc.RemoveMember(context.Background(), aliceToken, channel.ID, alice.ID)
	require.ErrorIs(t, err, common.ErrorCreatorRemoval)

	got, err := f.channelsSvc.Get(context.Background(), aliceToken, channel.ID)
	require.NoError(t, err)
	assert.Contains(t, got.MemberIDs, alice.ID)
}
