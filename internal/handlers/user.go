package handlers

import (
	"net/http"

	"factshub/internal/middleware"
	"factshub/internal/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct{}

func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

// Profile shows the signed-in user's account and every fact they submitted,
// whatever its status. Reads the user row fresh for display.
func (h *UserHandler) Profile(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)

	user, err := services.GetUser(identity.UserID)
	if err != nil {
		RenderError(c, http.StatusNotFound, "user not found")
		return
	}

	facts, err := services.FactsByAuthor(user.ID)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "could not load facts")
		return
	}

	Render(c, http.StatusOK, "user/profile.html", gin.H{
		"Title": user.Username,
		"User":  user,
		"Facts": facts,
	})
}
