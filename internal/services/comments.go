package services

import (
	"errors"
	"strings"

	"factshub/internal/apperror"
	"factshub/internal/db"
	"factshub/internal/models"

	"gorm.io/gorm"
)

// AddComment admits a comment on a fact. Guests are allowed and stored under
// the fixed guest label; registered callers get a user reference. There is
// no moderation step, comments are visible immediately.
func AddComment(actor Identity, factID uint, content string, parentID *uint) (*models.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperror.New(apperror.ErrValidation, "comment cannot be empty")
	}

	comment := models.Comment{
		FactID:   factID,
		Content:  content,
		ParentID: parentID,
	}
	if actor.IsAuthenticated() {
		userID := actor.UserID
		comment.UserID = &userID
	} else {
		guest := models.GuestName
		comment.GuestName = &guest
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		var fact models.Fact
		if err := tx.First(&fact, factID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.New(apperror.ErrNotFound, "fact not found")
			}
			return apperror.Store(err)
		}

		if parentID != nil {
			var parent models.Comment
			if err := tx.First(&parent, *parentID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperror.New(apperror.ErrNotFound, "parent comment not found")
				}
				return apperror.Store(err)
			}
			if parent.FactID != factID {
				return apperror.New(apperror.ErrValidation, "parent comment belongs to another fact")
			}
			// One level of nesting only.
			if parent.ParentID != nil {
				return apperror.New(apperror.ErrValidation, "replies to replies are not allowed")
			}
		}

		if err := tx.Create(&comment).Error; err != nil {
			return apperror.Store(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListComments returns the top-level comments of a fact, newest first, with
// like counts filled in.
func ListComments(factID uint) ([]models.Comment, error) {
	var comments []models.Comment
	if err := db.DB.Preload("User").
		Where("fact_id = ? AND parent_id IS NULL", factID).
		Order("created_at DESC").
		Find(&comments).Error; err != nil {
		return nil, apperror.Store(err)
	}

	if err := fillLikeCounts(comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// fillLikeCounts batch-loads like counts for a set of comments.
func fillLikeCounts(comments []models.Comment) error {
	if len(comments) == 0 {
		return nil
	}

	ids := make([]uint, len(comments))
	for i, c := range comments {
		ids[i] = c.ID
	}

	type countResult struct {
		CommentID uint
		Count     int64
	}
	var results []countResult
	if err := db.DB.Model(&models.Reaction{}).
		Select("comment_id, COUNT(*) as count").
		Where("comment_id IN ? AND type = ?", ids, models.ReactionLike).
		Group("comment_id").
		Scan(&results).Error; err != nil {
		return apperror.Store(err)
	}

	countMap := make(map[uint]int64, len(results))
	for _, r := range results {
		countMap[r.CommentID] = r.Count
	}
	for i := range comments {
		comments[i].Likes = countMap[comments[i].ID]
	}
	return nil
}
