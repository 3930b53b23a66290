package router

import (
	"factshub/internal/handlers"
	"factshub/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// Handlers
	authHandler := handlers.NewAuthHandler()
	factHandler := handlers.NewFactHandler()
	commentHandler := handlers.NewCommentHandler()
	reactionHandler := handlers.NewReactionHandler()
	adminHandler := handlers.NewAdminHandler()
	userHandler := handlers.NewUserHandler()

	// Public Routes
	r.GET("/", factHandler.Index)
	r.GET("/archive", factHandler.Archive)

	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)
	r.GET("/logout", authHandler.Logout)

	// Public JSON API
	api := r.Group("/api")
	{
		api.GET("/random-fact", factHandler.Random)
		api.GET("/fact/:id", factHandler.Detail)
		api.POST("/comment", commentHandler.Create)   // guests included
		api.POST("/reaction", reactionHandler.Create) // engine rejects anonymous callers
		api.POST("/facts/:id/approve", adminHandler.Approve)
		api.POST("/facts/:id/reject", adminHandler.Reject)
	}

	// Protected Routes
	authorized := r.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.GET("/submit-fact", factHandler.ShowSubmit)
		authorized.POST("/submit-fact", factHandler.Submit)
		authorized.GET("/profile", userHandler.Profile)
	}

	// Moderation Routes
	admin := r.Group("/admin")
	admin.Use(middleware.ModeratorRequired())
	{
		admin.GET("", adminHandler.Queue)
	}
}
