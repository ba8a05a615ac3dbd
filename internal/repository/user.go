package repository

import (
	"context"
	"errors"

	"murmur/internal/cache"
	"murmur/internal/models"

	"gorm.io/gorm"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Register(ctx context.Context, user *models.User) error
	UpdateRole(ctx context.Context, user *models.User, role models.Role) error
	Deactivate(ctx context.Context, user *models.User, activity *models.Activity) error
	Count(ctx context.Context) (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a new UserRepository implementation.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// GetByID reads the user directly from the store. The auth path depends on
// this being fresh: a deactivated user must be rejected on their next
// request, so no cache sits in front of it.
func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("User")
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

// Register creates the account, granting OWNER to the very first user.
// The count and the insert share one transaction so two racing first
// signups cannot both become owner; username/email collisions surface as
// Conflict even when the caller's pre-checks passed.
func (r *userRepository) Register(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Count(&count).Error; err != nil {
			return models.NewInternalError(err)
		}
		if count == 0 {
			user.Role = models.RoleOwner
		} else if user.Role == "" {
			user.Role = models.RoleUser
		}
		user.IsActive = true

		if err := tx.Create(user).Error; err != nil {
			if isUniqueConstraintError(err) {
				return models.NewConflictError("Username or email already registered")
			}
			return models.NewInternalError(err)
		}
		return nil
	})
}

func (r *userRepository) UpdateRole(ctx context.Context, user *models.User, role models.Role) error {
	if err := r.db.WithContext(ctx).
		Model(user).
		Update("role", role).Error; err != nil {
		return models.NewInternalError(err)
	}
	user.Role = role
	cache.InvalidateUser(ctx, user.ID)
	return nil
}

// Deactivate flips is_active to false and appends the USER_DELETED ledger
// row in the same transaction. There is no reactivation path.
func (r *userRepository) Deactivate(ctx context.Context, user *models.User, activity *models.Activity) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(user).Update("is_active", false).Error; err != nil {
			return models.NewInternalError(err)
		}
		return appendActivity(tx, activity)
	})
	if err != nil {
		return err
	}
	user.IsActive = false
	cache.InvalidateUser(ctx, user.ID)
	return nil
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
