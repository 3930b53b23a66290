package handlers

import (
	"net/http"

	"factshub/internal/apperror"
	"factshub/internal/middleware"
	"factshub/internal/services"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct{}

func NewCommentHandler() *CommentHandler {
	return &CommentHandler{}
}

type commentRequest struct {
	FactID   uint   `json:"fact_id"`
	Content  string `json:"content"`
	ParentID *uint  `json:"parent_id"`
}

// Create admits a comment. Guests may comment too; they show up under the
// guest label.
func (h *CommentHandler) Create(c *gin.Context) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, apperror.New(apperror.ErrValidation, "invalid request body"))
		return
	}

	identity := middleware.CurrentIdentity(c)
	comment, err := services.AddComment(identity, req.FactID, req.Content, req.ParentID)
	if err != nil {
		JSONError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": "comment added",
		"id":      comment.ID,
	})
}
