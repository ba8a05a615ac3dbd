package service

import (
	"context"
	"fmt"
	"testing"

	"murmur/internal/database"
	"murmur/internal/models"
	"murmur/internal/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type serviceTestEnv struct {
	db     *gorm.DB
	users  repository.UserRepository
	posts  *PostService
	social *SocialService
	admin  *AdminService
	feed   repository.ActivityRepository
}

func setupServiceTest(t *testing.T) *serviceTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	socialRepo := repository.NewSocialRepository(db)

	return &serviceTestEnv{
		db:     db,
		users:  userRepo,
		posts:  NewPostService(postRepo, userRepo),
		social: NewSocialService(socialRepo, userRepo),
		admin:  NewAdminService(userRepo),
		feed:   repository.NewActivityRepository(db),
	}
}

func (e *serviceTestEnv) register(t *testing.T, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username:     username,
		Email:        fmt.Sprintf("%s@example.com", username),
		PasswordHash: "not-a-real-hash",
	}
	require.NoError(t, e.users.Register(context.Background(), user))
	return user
}

func (e *serviceTestEnv) ledgerCount(t *testing.T) int64 {
	t.Helper()
	var count int64
	require.NoError(t, e.db.Model(&models.Activity{}).Count(&count).Error)
	return count
}
