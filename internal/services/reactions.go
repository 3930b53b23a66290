package services

import (
	"errors"

	"factshub/internal/apperror"
	"factshub/internal/db"
	"factshub/internal/models"

	"gorm.io/gorm"
)

// AddReaction records a like on a comment and returns the comment's like
// count. One like per (user, comment): a repeated call is a no-op that still
// reports the current count.
func AddReaction(actor Identity, commentID uint) (int64, error) {
	if !actor.IsAuthenticated() {
		return 0, apperror.New(apperror.ErrAuthentication, "you must be signed in to react")
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		var comment models.Comment
		if err := tx.First(&comment, commentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.New(apperror.ErrNotFound, "comment not found")
			}
			return apperror.Store(err)
		}

		var existing models.Reaction
		err := tx.Where("user_id = ? AND comment_id = ?", actor.UserID, commentID).
			First(&existing).Error
		if err == nil {
			// Already liked, nothing to insert.
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.Store(err)
		}

		reaction := models.Reaction{
			UserID:    actor.UserID,
			CommentID: &commentID,
			Type:      models.ReactionLike,
		}
		if err := tx.Create(&reaction).Error; err != nil {
			return apperror.Store(err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	var likes int64
	if err := db.DB.Model(&models.Reaction{}).
		Where("comment_id = ? AND type = ?", commentID, models.ReactionLike).
		Count(&likes).Error; err != nil {
		return 0, apperror.Store(err)
	}
	return likes, nil
}
