package handlers

import (
	"net/http"

	"factshub/internal/apperror"
	"factshub/internal/middleware"
	"factshub/internal/services"
	"factshub/internal/utils"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct{}

func NewAdminHandler() *AdminHandler {
	return &AdminHandler{}
}

// Queue renders the moderation queue: pending and rejected facts, newest
// first, with the pending count in the header.
func (h *AdminHandler) Queue(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)

	facts, pending, err := services.ModerationQueue(identity)
	if err != nil {
		RenderError(c, apperror.Status(err), apperror.UserMessage(err))
		return
	}

	Render(c, http.StatusOK, "admin/queue.html", gin.H{
		"Title":        "Moderation",
		"Facts":        facts,
		"PendingCount": pending,
	})
}

// Approve publishes a fact and stamps the publication time.
func (h *AdminHandler) Approve(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	factID := utils.StringToUint(c.Param("id"))

	if _, err := services.ApproveFact(identity, factID); err != nil {
		JSONError(c, err)
		return
	}

	invalidateListCaches()
	c.JSON(http.StatusOK, gin.H{"success": "fact approved"})
}

// Reject moves a fact to rejected; it can still be approved later.
func (h *AdminHandler) Reject(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	factID := utils.StringToUint(c.Param("id"))

	if _, err := services.RejectFact(identity, factID); err != nil {
		JSONError(c, err)
		return
	}

	invalidateListCaches()
	c.JSON(http.StatusOK, gin.H{"success": "fact rejected"})
}
