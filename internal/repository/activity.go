package repository

import (
	"context"

	"murmur/internal/models"
	"murmur/internal/observability"

	"gorm.io/gorm"
)

// FeedPageSize caps how many ledger rows one feed read returns.
const FeedPageSize = 100

// ActivityRepository defines read access to the append-only ledger.
// Writes happen through the domain repositories so they share the domain
// write's transaction; this interface only reads.
type ActivityRepository interface {
	Feed(ctx context.Context, viewerID uint, limit int) ([]models.Activity, error)
	CountByActor(ctx context.Context, actorID uint) (int64, error)
}

type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository returns a new ActivityRepository implementation.
func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

// Feed returns the newest ledger rows visible to viewerID.
//
// Visibility is actor-keyed: any user who has blocked the viewer has ALL of
// their activities excluded, not just the ones aimed at the viewer. The
// viewer's own rows always pass (a user cannot block themself).
func (r *activityRepository) Feed(ctx context.Context, viewerID uint, limit int) ([]models.Activity, error) {
	defer observability.TrackQuery("select", "activities")()
	observability.FeedRequests.Inc()

	if limit <= 0 || limit > FeedPageSize {
		limit = FeedPageSize
	}

	var activities []models.Activity
	if err := r.db.WithContext(ctx).
		Where("actor_id NOT IN (?)",
			r.db.Model(&models.Block{}).Select("blocker_id").Where("blocked_id = ?", viewerID),
		).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&activities).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return activities, nil
}

func (r *activityRepository) CountByActor(ctx context.Context, actorID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Activity{}).
		Where("actor_id = ?", actorID).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
