package models

import "time"

// ActivityVerb is the closed vocabulary of ledger event kinds.
type ActivityVerb string

const (
	VerbPostCreated  ActivityVerb = "POST_CREATED"
	VerbLikedPost    ActivityVerb = "LIKED_POST"
	VerbFollowedUser ActivityVerb = "FOLLOWED_USER"
	VerbUserDeleted  ActivityVerb = "USER_DELETED"
	VerbPostDeleted  ActivityVerb = "POST_DELETED"
)

// ObjectType identifies what an activity's ObjectID refers to.
type ObjectType string

const (
	ObjectPost ObjectType = "POST"
	ObjectUser ObjectType = "USER"
)

// Activity is one row of the append-only ledger. It doubles as audit record
// and feed content: rows are written in the same transaction as the domain
// change they describe and are never updated or deleted afterwards.
//
// Message is rendered at append time; Verb/ObjectType/ObjectID/TargetUserID
// carry the structured equivalent for consumers that want to re-render.
type Activity struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	ActorID      uint         `gorm:"not null;index" json:"actor_id"`
	Verb         ActivityVerb `gorm:"type:varchar(50);not null" json:"verb"`
	ObjectType   *ObjectType  `gorm:"type:varchar(20)" json:"object_type,omitempty"`
	ObjectID     *uint        `json:"object_id,omitempty"`
	TargetUserID *uint        `json:"target_user_id,omitempty"`
	Message      string       `gorm:"size:255;not null" json:"message"`
	CreatedAt    time.Time    `gorm:"index" json:"created_at"`

	Actor User `gorm:"foreignKey:ActorID" json:"-"`
}
