// Package repository implements the data access layer for the application.
package repository

import (
	"strings"

	"murmur/internal/models"
	"murmur/internal/observability"

	"gorm.io/gorm"
)

// isUniqueConstraintError checks if a DB error is a unique constraint violation.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	// PostgreSQL unique violation SQLSTATE 23505; SQLite reports
	// "UNIQUE constraint failed".
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "23505")
}

// appendActivity writes one ledger row inside the caller's transaction.
// Callers must pass the tx handle so the append commits or rolls back with
// the domain write it describes.
func appendActivity(tx *gorm.DB, activity *models.Activity) error {
	if err := tx.Create(activity).Error; err != nil {
		return models.NewInternalError(err)
	}
	observability.ActivityAppends.WithLabelValues(string(activity.Verb)).Inc()
	return nil
}
