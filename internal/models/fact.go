package models

import (
	"time"
)

type FactStatus string

const (
	FactStatusDraft     FactStatus = "draft"
	FactStatusPending   FactStatus = "pending"
	FactStatusPublished FactStatus = "published"
	FactStatusRejected  FactStatus = "rejected"
)

// Fact is the central entity: a piece of user-submitted content with a
// moderation lifecycle. Invariant: PublishedAt is set iff Status is published.
type Fact struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"size:200;not null" json:"title"`
	Content     string     `gorm:"type:text;not null" json:"content"`
	Source      string     `gorm:"size:500" json:"source"` // Optional source URL
	CategoryID  *uint      `gorm:"index" json:"category_id"`
	Category    *Category  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"category"`
	AuthorID    *uint      `gorm:"index" json:"author_id"` // Nullable for anonymous legacy data
	Author      *User      `gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"author"`
	Status      FactStatus `gorm:"size:20;default:'pending';not null;index" json:"status"`
	PublishedAt *time.Time `gorm:"index" json:"published_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	// Filled on queue queries, not a column.
	CommentCount int `gorm:"-" json:"comment_count,omitempty"`
}

// IsPublished reports whether the fact is visible to visitors.
func (f *Fact) IsPublished() bool {
	return f.Status == FactStatusPublished
}

// CategoryName is a template helper: facts may have no category.
func (f *Fact) CategoryName() string {
	if f.Category == nil {
		return ""
	}
	return f.Category.Name
}

// AuthorName is a template helper: facts may have no author.
func (f *Fact) AuthorName() string {
	if f.Author == nil {
		return ""
	}
	return f.Author.Username
}
