package models

import "time"

// Post represents a user's post in the Murmur application.
//
// Deletion is a soft, terminal state transition: IsDeleted flips to true
// exactly once, DeletedByRole records which tier performed it, and the row
// stays behind so likes and ledger entries keep a valid reference. Readers
// must treat a deleted post as nonexistent.
type Post struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	AuthorID      uint      `gorm:"not null;index" json:"author_id"`
	Author        User      `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Content       string    `gorm:"type:text;not null" json:"content"`
	IsDeleted     bool      `gorm:"not null;default:false;index" json:"-"`
	DeletedByRole *Role     `gorm:"type:varchar(20)" json:"-"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
