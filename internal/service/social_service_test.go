package service

import (
	"context"
	"testing"

	"murmur/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollow(t *testing.T) {
	env := setupServiceTest(t)
	ctx := context.Background()
	alice := env.register(t, "alice")
	bob := env.register(t, "bob")

	msg, err := env.social.Follow(ctx, alice, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice followed bob", msg)

	var activity models.Activity
	require.NoError(t, env.db.Where("verb = ?", models.VerbFollowedUser).First(&activity).Error)
	assert.Equal(t, msg, activity.Message)

	// Duplicate edge.
	_, err = env.social.Follow(ctx, alice, bob.ID)
	require.Error(t, err)
	assert.Equal(t, 409, models.StatusForError(err))

	// Self edge.
	_, err = env.social.Follow(ctx, alice, alice.ID)
	require.Error(t, err)
	assert.Equal(t, 400, models.StatusForError(err))

	// Missing target.
	_, err = env.social.Follow(ctx, alice, 9999)
	require.Error(t, err)
	assert.Equal(t, 404, models.StatusForError(err))

	assert.EqualValues(t, 1, env.ledgerCount(t))
}

func TestBlockWritesNoLedgerRow(t *testing.T) {
	env := setupServiceTest(t)
	ctx := context.Background()
	alice := env.register(t, "alice")
	bob := env.register(t, "bob")

	msg, err := env.social.Block(ctx, alice, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, "Blocked bob", msg)
	assert.EqualValues(t, 0, env.ledgerCount(t))

	_, err = env.social.Block(ctx, alice, bob.ID)
	require.Error(t, err)
	assert.Equal(t, 409, models.StatusForError(err))

	_, err = env.social.Block(ctx, alice, alice.ID)
	require.Error(t, err)
	assert.Equal(t, 400, models.StatusForError(err))
}

func TestBlockLeavesFollowEdgeInPlace(t *testing.T) {
	env := setupServiceTest(t)
	ctx := context.Background()
	alice := env.register(t, "alice")
	bob := env.register(t, "bob")

	_, err := env.social.Follow(ctx, alice, bob.ID)
	require.NoError(t, err)
	_, err = env.social.Block(ctx, alice, bob.ID)
	require.NoError(t, err)

	var count int64
	require.NoError(t, env.db.Model(&models.Follow{}).
		Where("follower_id = ? AND following_id = ?", alice.ID, bob.ID).
		Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

// Blocking hides the blocker's whole history from the blocked user, in both
// the dedicated feed query and anything built on it.
func TestBlockFiltersFeedSystemWide(t *testing.T) {
	env := setupServiceTest(t)
	ctx := context.Background()
	alice := env.register(t, "alice")
	bob := env.register(t, "bob")
	carol := env.register(t, "carol")

	_, err := env.posts.CreatePost(ctx, CreatePostInput{Actor: bob, Content: "bob's post"})
	require.NoError(t, err)
	_, err = env.social.Follow(ctx, bob, carol.ID)
	require.NoError(t, err)

	_, err = env.social.Block(ctx, bob, alice.ID)
	require.NoError(t, err)

	feed, err := env.feed.Feed(ctx, alice.ID, 0)
	require.NoError(t, err)
	assert.Empty(t, feed)

	feed, err = env.feed.Feed(ctx, carol.ID, 0)
	require.NoError(t, err)
	assert.Len(t, feed, 2)
}
