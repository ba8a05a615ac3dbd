package service

import (
	"context"
	"fmt"

	"murmur/internal/models"
	"murmur/internal/repository"
)

type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

type CreatePostInput struct {
	Actor   *models.User
	Content string
}

type ListPostsInput struct {
	Limit  int
	Offset int
}

func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository) *PostService {
	return &PostService{postRepo: postRepo, userRepo: userRepo}
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	const maxContentLen = 10000

	if in.Content == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if len(in.Content) > maxContentLen {
		return nil, models.NewValidationError("Content too long (max 10000 characters)")
	}

	post := &models.Post{
		AuthorID: in.Actor.ID,
		Content:  in.Content,
	}
	objectType := models.ObjectPost
	activity := &models.Activity{
		ActorID:      in.Actor.ID,
		Verb:         models.VerbPostCreated,
		ObjectType:   &objectType,
		TargetUserID: &in.Actor.ID,
		Message:      fmt.Sprintf("%s made a post", in.Actor.Username),
	}
	if err := s.postRepo.Create(ctx, post, activity); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) ListPosts(ctx context.Context, in ListPostsInput) ([]models.Post, error) {
	limit := in.Limit
	if limit <= 0 {
		limit = 50
	}
	if limit > 100 {
		limit = 100
	}
	offset := in.Offset
	if offset < 0 {
		offset = 0
	}
	return s.postRepo.List(ctx, limit, offset)
}

// GetPost treats soft-deleted posts as absent.
func (s *PostService) GetPost(ctx context.Context, postID uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.IsDeleted {
		return nil, models.NewNotFoundError("Post")
	}
	return post, nil
}

func (s *PostService) LikePost(ctx context.Context, actor *models.User, postID uint) (string, error) {
	post, err := s.GetPost(ctx, postID)
	if err != nil {
		return "", err
	}

	liked, err := s.postRepo.HasActiveLike(ctx, actor.ID, post.ID)
	if err != nil {
		return "", err
	}
	if liked {
		return "", models.NewConflictError("Already liked")
	}

	author, err := s.userRepo.GetByID(ctx, post.AuthorID)
	if err != nil {
		return "", err
	}

	msg := fmt.Sprintf("%s liked %s's post", actor.Username, author.Username)
	objectType := models.ObjectPost
	activity := &models.Activity{
		ActorID:      actor.ID,
		Verb:         models.VerbLikedPost,
		ObjectType:   &objectType,
		ObjectID:     &post.ID,
		TargetUserID: &post.AuthorID,
		Message:      msg,
	}
	if err := s.postRepo.AddLike(ctx, &models.Like{UserID: actor.ID, PostID: post.ID}, activity); err != nil {
		return "", err
	}
	return msg, nil
}

// DeletePost soft-deletes a post on behalf of an admin or owner, stamping
// the deleting role. The transition is terminal.
func (s *PostService) DeletePost(ctx context.Context, actor *models.User, postID uint) error {
	post, err := s.GetPost(ctx, postID)
	if err != nil {
		return err
	}

	objectType := models.ObjectPost
	activity := &models.Activity{
		ActorID:      actor.ID,
		Verb:         models.VerbPostDeleted,
		ObjectType:   &objectType,
		ObjectID:     &post.ID,
		TargetUserID: &post.AuthorID,
		Message:      fmt.Sprintf("Post deleted by '%s'", actor.Role),
	}
	return s.postRepo.SoftDelete(ctx, post, actor.Role, activity)
}
