// Package models contains data structures for the application's domain models.
package models

import "time"

// Role is a user's capability tier. Tiers are strictly ordered
// USER < ADMIN < OWNER.
type Role string

const (
	// RoleUser is the default tier for every signup after the first.
	RoleUser Role = "USER"
	// RoleAdmin can soft-delete posts. Assigned and removed only by the owner.
	RoleAdmin Role = "ADMIN"
	// RoleOwner is granted to the first signup and never to anyone else.
	RoleOwner Role = "OWNER"
)

// rank maps each role to its position in the privilege order.
func (r Role) rank() int {
	switch r {
	case RoleOwner:
		return 2
	case RoleAdmin:
		return 1
	case RoleUser:
		return 0
	}
	return -1
}

// Valid reports whether r is one of the three known tiers.
func (r Role) Valid() bool {
	return r.rank() >= 0
}

// AtLeast reports whether r grants at least the privileges of other.
func (r Role) AtLeast(other Role) bool {
	return r.rank() >= other.rank()
}

// User represents a Murmur account. Accounts are never physically removed;
// deactivation (IsActive = false) is terminal and keeps username and email
// reserved.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Role         Role      `gorm:"type:varchar(20);not null;default:'USER'" json:"role"`
	IsActive     bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}
