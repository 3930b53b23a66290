package middleware

import (
	"net/http"

	"factshub/internal/models"
	"factshub/internal/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const IdentityKey = "identity"

// Session keys. Role is written once at login and trusted for the session's
// lifetime; it is not re-read from the store per request.
const (
	SessionUserID   = "user_id"
	SessionUsername = "username"
	SessionRole     = "role"
)

// LoadIdentity builds the request-scoped identity from the cookie session.
// Every request carries an identity; without a session it is the anonymous
// guest.
func LoadIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := services.Anonymous()

		session := sessions.Default(c)
		if userID, ok := session.Get(SessionUserID).(uint); ok && userID != 0 {
			identity.UserID = userID
			if username, ok := session.Get(SessionUsername).(string); ok {
				identity.Username = username
			}
			if role, ok := session.Get(SessionRole).(string); ok {
				identity.Role = models.Role(role)
			}
			if !identity.Role.Valid() {
				identity.Role = models.RoleUser
			}
		}

		c.Set(IdentityKey, identity)
		c.Next()
	}
}

// CurrentIdentity returns the identity LoadIdentity stored on the context.
func CurrentIdentity(c *gin.Context) services.Identity {
	if v, exists := c.Get(IdentityKey); exists {
		if identity, ok := v.(services.Identity); ok {
			return identity
		}
	}
	return services.Anonymous()
}

// AuthRequired guards pages that need a signed-in user.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !CurrentIdentity(c).IsAuthenticated() {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}

// ModeratorRequired guards the moderation pages.
func ModeratorRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := CurrentIdentity(c)
		if !identity.IsAuthenticated() || !identity.Role.CanModerate() {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}

// SignIn writes the caller's identity into the session. Role is cached here
// for the session's duration.
func SignIn(c *gin.Context, user *models.User) error {
	session := sessions.Default(c)
	session.Set(SessionUserID, user.ID)
	session.Set(SessionUsername, user.Username)
	session.Set(SessionRole, string(user.Role))
	return session.Save()
}

// SignOut clears the session.
func SignOut(c *gin.Context) error {
	session := sessions.Default(c)
	session.Clear()
	return session.Save()
}
