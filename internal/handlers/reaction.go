package handlers

import (
	"net/http"

	"factshub/internal/apperror"
	"factshub/internal/middleware"
	"factshub/internal/services"

	"github.com/gin-gonic/gin"
)

type ReactionHandler struct{}

func NewReactionHandler() *ReactionHandler {
	return &ReactionHandler{}
}

type reactionRequest struct {
	CommentID uint `json:"comment_id"`
}

// Create records a like on a comment and returns the new like count.
// Repeated likes from the same user are no-ops.
func (h *ReactionHandler) Create(c *gin.Context) {
	var req reactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, apperror.New(apperror.ErrValidation, "invalid request body"))
		return
	}

	identity := middleware.CurrentIdentity(c)
	likes, err := services.AddReaction(identity, req.CommentID)
	if err != nil {
		JSONError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": "like added",
		"likes":   likes,
	})
}
