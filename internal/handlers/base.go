package handlers

import (
	"errors"
	"log"

	"factshub/internal/apperror"
	"factshub/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Render helper to inject common variables like the current identity.
func Render(c *gin.Context, code int, name string, obj gin.H) {
	if obj == nil {
		obj = gin.H{}
	}

	identity := middleware.CurrentIdentity(c)
	if identity.IsAuthenticated() {
		obj["CurrentUser"] = identity
	}
	obj["CurrentPath"] = c.Request.URL.Path

	c.HTML(code, name, obj)
}

// RenderError renders the shared error page.
func RenderError(c *gin.Context, code int, message string) {
	Render(c, code, "error.html", gin.H{"Error": message})
}

// JSONError translates a service error into a JSON response. Store errors
// are logged with their cause and surfaced with a generic message only.
func JSONError(c *gin.Context, err error) {
	if errors.Is(err, apperror.ErrStore) {
		log.Printf("[store] %s %s: %v", c.Request.Method, c.Request.URL.Path, errors.Unwrap(err))
	}
	c.JSON(apperror.Status(err), gin.H{"error": apperror.UserMessage(err)})
}
