package handlers

import (
	"net/http"

	"factshub/internal/apperror"
	"factshub/internal/middleware"
	"factshub/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates an account. JSON in, JSON out; the front end posts from
// a modal.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, apperror.New(apperror.ErrValidation, "invalid request body"))
		return
	}

	if _, err := services.Register(req.Username, req.Email, req.Password); err != nil {
		JSONError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": "registration complete, please log in"})
}

// Login verifies credentials and stores id, username and role in the session.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, apperror.New(apperror.ErrValidation, "invalid request body"))
		return
	}

	user, err := services.Authenticate(req.Email, req.Password)
	if err != nil {
		JSONError(c, err)
		return
	}

	if err := middleware.SignIn(c, user); err != nil {
		JSONError(c, apperror.Store(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": "logged in"})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	_ = middleware.SignOut(c)
	c.Redirect(http.StatusFound, "/")
}
