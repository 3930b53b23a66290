package models

import (
	"time"
)

// GuestName is the display label stored for comments left by visitors
// without an account.
const GuestName = "Gość"

// Comment belongs to exactly one fact. Exactly one of UserID and GuestName
// is present: registered authors get a user reference, guests get the fixed
// display label. Replies are restricted to one level of nesting.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FactID    uint      `gorm:"not null;index" json:"fact_id"`
	Fact      Fact      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	UserID    *uint     `gorm:"index" json:"user_id"`
	User      *User     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	GuestName *string   `gorm:"size:50" json:"guest_name"`
	ParentID  *uint     `gorm:"index" json:"parent_id"` // Nullable for top-level comments
	Parent    *Comment  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`

	// Filled on read queries, not a column.
	Likes int64 `gorm:"-" json:"likes"`
}

// AuthorName returns the registered username or the guest label.
func (c *Comment) AuthorName() string {
	if c.User != nil {
		return c.User.Username
	}
	if c.GuestName != nil {
		return *c.GuestName
	}
	return GuestName
}
