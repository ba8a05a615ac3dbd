package repository

import (
	"context"
	"errors"
	"time"

	"murmur/internal/cache"
	"murmur/internal/models"
	"murmur/internal/observability"

	"gorm.io/gorm"
)

// PostRepository defines persistence operations for posts and likes.
//
// Every write that carries social meaning takes the matching ledger row and
// commits both in one transaction: if the append fails, the domain write is
// rolled back too.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post, activity *models.Activity) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	List(ctx context.Context, limit, offset int) ([]models.Post, error)
	SoftDelete(ctx context.Context, post *models.Post, role models.Role, activity *models.Activity) error
	AddLike(ctx context.Context, like *models.Like, activity *models.Activity) error
	HasActiveLike(ctx context.Context, userID, postID uint) (bool, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository returns a new PostRepository implementation.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post, activity *models.Activity) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(post).Error; err != nil {
			return models.NewInternalError(err)
		}
		// The ledger row references the freshly assigned post ID.
		objType := models.ObjectPost
		activity.ObjectType = &objType
		activity.ObjectID = &post.ID
		return appendActivity(tx, activity)
	})
}

// GetByID returns the row whether or not it is soft-deleted; callers decide
// how a deleted post presents (readers map it to not-found).
func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.WithContext(ctx).First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post")
		}
		return nil, models.NewInternalError(err)
	}
	return &post, nil
}

func (r *postRepository) List(ctx context.Context, limit, offset int) ([]models.Post, error) {
	defer observability.TrackQuery("select", "posts")()

	var posts []models.Post
	if err := r.db.WithContext(ctx).
		Where("is_deleted = ?", false).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

// SoftDelete marks the post deleted, stamps the deleting tier, refreshes
// updated_at and appends the POST_DELETED ledger row atomically. The
// transition is terminal; nothing ever clears is_deleted.
func (r *postRepository) SoftDelete(ctx context.Context, post *models.Post, role models.Role, activity *models.Activity) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()
		if err := tx.Model(post).Updates(map[string]any{
			"is_deleted":      true,
			"deleted_by_role": role,
			"updated_at":      now,
		}).Error; err != nil {
			return models.NewInternalError(err)
		}
		return appendActivity(tx, activity)
	})
	if err != nil {
		return err
	}
	post.IsDeleted = true
	post.DeletedByRole = &role
	cache.InvalidatePost(ctx, post.ID)
	return nil
}

func (r *postRepository) AddLike(ctx context.Context, like *models.Like, activity *models.Activity) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(like).Error; err != nil {
			if isUniqueConstraintError(err) {
				return models.NewConflictError("Already liked")
			}
			return models.NewInternalError(err)
		}
		return appendActivity(tx, activity)
	})
}

func (r *postRepository) HasActiveLike(ctx context.Context, userID, postID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ? AND post_id = ? AND is_deleted = ?", userID, postID, false).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}
