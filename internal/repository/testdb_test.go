package repository

import (
	"context"
	"testing"

	"murmur/internal/database"
	"murmur/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupRepoTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}
	return db
}

func mustRegister(t *testing.T, repo UserRepository, username, email string) *models.User {
	t.Helper()
	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: "x",
	}
	if err := repo.Register(context.Background(), user); err != nil {
		t.Fatalf("register %s: %v", username, err)
	}
	return user
}

func uintPtr(v uint) *uint { return &v }
