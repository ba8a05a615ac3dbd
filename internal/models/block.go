package models

import "time"

// Block is a directed edge: blocker no longer sees blocked's activity.
// The ordered pair is unique, self-blocks are rejected, and blocking is
// independent of any follow edge between the two users.
//
// The effect is intentionally one-way: A blocking B hides B's activity
// from A's feed, never the reverse.
type Block struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	BlockerID uint      `gorm:"not null;uniqueIndex:idx_block_pair" json:"blocker_id"`
	BlockedID uint      `gorm:"not null;uniqueIndex:idx_block_pair" json:"blocked_id"`
	CreatedAt time.Time `json:"created_at"`

	Blocker User `gorm:"foreignKey:BlockerID" json:"-"`
	Blocked User `gorm:"foreignKey:BlockedID" json:"-"`
}
