package repository

import (
	"context"

	"murmur/internal/models"

	"gorm.io/gorm"
)

// SocialRepository defines persistence operations for follow and block edges.
type SocialRepository interface {
	CreateFollow(ctx context.Context, follow *models.Follow, activity *models.Activity) error
	FollowExists(ctx context.Context, followerID, followingID uint) (bool, error)
	CreateBlock(ctx context.Context, block *models.Block) error
	BlockExists(ctx context.Context, blockerID, blockedID uint) (bool, error)
}

type socialRepository struct {
	db *gorm.DB
}

// NewSocialRepository returns a new SocialRepository implementation.
func NewSocialRepository(db *gorm.DB) SocialRepository {
	return &socialRepository{db: db}
}

func (r *socialRepository) CreateFollow(ctx context.Context, follow *models.Follow, activity *models.Activity) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(follow).Error; err != nil {
			if isUniqueConstraintError(err) {
				return models.NewConflictError("Already following")
			}
			return models.NewInternalError(err)
		}
		return appendActivity(tx, activity)
	})
}

func (r *socialRepository) FollowExists(ctx context.Context, followerID, followingID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

// CreateBlock writes the edge only. Blocking deliberately leaves no ledger
// trace and does not touch any follow edge between the two users.
func (r *socialRepository) CreateBlock(ctx context.Context, block *models.Block) error {
	if err := r.db.WithContext(ctx).Create(block).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Already blocked")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *socialRepository) BlockExists(ctx context.Context, blockerID, blockedID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Block{}).
		Where("blocker_id = ? AND blocked_id = ?", blockerID, blockedID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}
