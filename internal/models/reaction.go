package models

import (
	"time"
)

type ReactionType string

const (
	ReactionLike ReactionType = "like"
)

// Reaction links a user to a comment or a fact. The write path only
// exercises comment likes, but the schema supports both targets.
// The unique indexes keep one reaction per user per target; Postgres
// ignores rows where the indexed nullable column is NULL.
type Reaction struct {
	ID        uint         `gorm:"primaryKey" json:"id"`
	UserID    uint         `gorm:"not null;index;uniqueIndex:idx_user_comment;uniqueIndex:idx_user_fact" json:"user_id"`
	User      User         `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	CommentID *uint        `gorm:"index;uniqueIndex:idx_user_comment" json:"comment_id"`
	Comment   *Comment     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	FactID    *uint        `gorm:"index;uniqueIndex:idx_user_fact" json:"fact_id"`
	Fact      *Fact        `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Type      ReactionType `gorm:"size:20;not null;default:'like'" json:"type"`
	CreatedAt time.Time    `json:"created_at"`
}
