package models

import "time"

// Like represents a user's like on a post.
// The combination of UserID and PostID must be unique.
//
// IsDeleted is schema-ready for a future unlike but no endpoint flips it;
// a like, once created, is permanent.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_like_pair" json:"user_id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_like_pair" json:"post_id"`
	IsDeleted bool      `gorm:"not null;default:false" json:"-"`
	CreatedAt time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
	Post Post `gorm:"foreignKey:PostID" json:"-"`
}
