package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"murmur/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createPost(t *testing.T, repo PostRepository, author *models.User, content string) *models.Post {
	t.Helper()
	post := &models.Post{AuthorID: author.ID, Content: content}
	activity := &models.Activity{
		ActorID:      author.ID,
		Verb:         models.VerbPostCreated,
		TargetUserID: uintPtr(author.ID),
		Message:      fmt.Sprintf("%s made a post", author.Username),
	}
	if err := repo.Create(context.Background(), post, activity); err != nil {
		t.Fatalf("create post: %v", err)
	}
	return post
}

func TestCreatePostAppendsLedgerRow(t *testing.T) {
	db := setupRepoTestDB(t)
	userRepo := NewUserRepository(db)
	postRepo := NewPostRepository(db)

	alice := mustRegister(t, userRepo, "alice", "alice@example.com")
	post := createPost(t, postRepo, alice, "hello")

	var activity models.Activity
	require.NoError(t, db.Where("verb = ?", models.VerbPostCreated).First(&activity).Error)
	assert.Equal(t, alice.ID, activity.ActorID)
	require.NotNil(t, activity.ObjectID)
	assert.Equal(t, post.ID, *activity.ObjectID)
	require.NotNil(t, activity.ObjectType)
	assert.Equal(t, models.ObjectPost, *activity.ObjectType)
	assert.Equal(t, "alice made a post", activity.Message)
}

func TestListSkipsDeletedNewestFirst(t *testing.T) {
	db := setupRepoTestDB(t)
	userRepo := NewUserRepository(db)
	postRepo := NewPostRepository(db)
	ctx := context.Background()

	alice := mustRegister(t, userRepo, "alice", "alice@example.com")

	older := createPost(t, postRepo, alice, "first")
	newer := createPost(t, postRepo, alice, "second")
	// Force distinct timestamps; sqlite rounds aggressively enough that two
	// back-to-back creates can tie.
	db.Model(older).Update("created_at", time.Now().UTC().Add(-time.Hour))

	doomed := createPost(t, postRepo, alice, "doomed")
	activity := &models.Activity{
		ActorID: alice.ID, Verb: models.VerbPostDeleted,
		TargetUserID: uintPtr(alice.ID), Message: "Post deleted by 'OWNER'",
	}
	require.NoError(t, postRepo.SoftDelete(ctx, doomed, models.RoleOwner, activity))

	posts, err := postRepo.List(ctx, 50, 0)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, newer.ID, posts[0].ID)
	assert.Equal(t, older.ID, posts[1].ID)
}

func TestSoftDeleteStampsRoleAndKeepsRow(t *testing.T) {
	db := setupRepoTestDB(t)
	userRepo := NewUserRepository(db)
	postRepo := NewPostRepository(db)
	ctx := context.Background()

	alice := mustRegister(t, userRepo, "alice", "alice@example.com")
	post := createPost(t, postRepo, alice, "hello")

	activity := &models.Activity{
		ActorID: alice.ID, Verb: models.VerbPostDeleted,
		ObjectType: objectTypePtr(models.ObjectPost), ObjectID: uintPtr(post.ID),
		TargetUserID: uintPtr(alice.ID), Message: "Post deleted by 'ADMIN'",
	}
	require.NoError(t, postRepo.SoftDelete(ctx, post, models.RoleAdmin, activity))

	// The row survives for likes and ledger references; it is just flagged.
	reloaded, err := postRepo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.IsDeleted)
	require.NotNil(t, reloaded.DeletedByRole)
	assert.Equal(t, models.RoleAdmin, *reloaded.DeletedByRole)

	var count int64
	db.Model(&models.Activity{}).Where("verb = ?", models.VerbPostDeleted).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestAddLikeDuplicateIsConflict(t *testing.T) {
	db := setupRepoTestDB(t)
	userRepo := NewUserRepository(db)
	postRepo := NewPostRepository(db)
	ctx := context.Background()

	alice := mustRegister(t, userRepo, "alice", "alice@example.com")
	bob := mustRegister(t, userRepo, "bob", "bob@example.com")
	post := createPost(t, postRepo, bob, "hello")

	mkActivity := func() *models.Activity {
		return &models.Activity{
			ActorID: alice.ID, Verb: models.VerbLikedPost,
			ObjectType: objectTypePtr(models.ObjectPost), ObjectID: uintPtr(post.ID),
			TargetUserID: uintPtr(bob.ID), Message: "alice liked bob's post",
		}
	}

	require.NoError(t, postRepo.AddLike(ctx, &models.Like{UserID: alice.ID, PostID: post.ID}, mkActivity()))

	liked, err := postRepo.HasActiveLike(ctx, alice.ID, post.ID)
	require.NoError(t, err)
	assert.True(t, liked)

	err = postRepo.AddLike(ctx, &models.Like{UserID: alice.ID, PostID: post.ID}, mkActivity())
	require.Error(t, err)
	assert.Equal(t, 409, models.StatusForError(err))

	// The failed insert must not have left a second ledger row behind.
	var count int64
	db.Model(&models.Activity{}).Where("verb = ?", models.VerbLikedPost).Count(&count)
	assert.EqualValues(t, 1, count)
}

func objectTypePtr(o models.ObjectType) *models.ObjectType { return &o }
