package routes

import (
	"project-management-api/internal/handlers"
	"project-management-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupRoutes assembles the router around a wired handler set.
func SetupRoutes(h *handlers.Handler) *gin.Engine {
	ginRouter := gin.Default()

	// CORS middleware (for frontend integration)
	ginRouter.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check endpoint
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Project Management API is running",
		})
	})

	// Public routes (no authentication required)
	api := ginRouter.Group("/api")
	{
		api.POST("/token", h.Token)
		api.POST("/token/refresh", h.RefreshToken)
	}

	// Protected routes (authentication required)
	protectedRoutes := api.Group("")
	protectedRoutes.Use(middleware.JWTAuthMiddleware())
	{
		// Project endpoints
		protectedRoutes.GET("/projects", h.ListProjects)
		protectedRoutes.POST("/projects", h.CreateProject)
		protectedRoutes.PUT("/projects", h.UpdateProject)
		protectedRoutes.DELETE("/projects", h.DeleteProject)
		// Task endpoints
		protectedRoutes.GET("/tasks", h.ListTasks)
		protectedRoutes.POST("/tasks", h.CreateTask)
		protectedRoutes.PUT("/tasks", h.UpdateTask)
		protectedRoutes.DELETE("/tasks", h.DeleteTask)
		protectedRoutes.PUT("/assign-task", h.AssignTask)
		// Milestone endpoints
		protectedRoutes.GET("/milestones", h.ListMilestones)
		protectedRoutes.POST("/milestones", h.CreateMilestone)
		protectedRoutes.PUT("/milestones", h.UpdateMilestone)
		protectedRoutes.DELETE("/milestones", h.DeleteMilestone)
		// Notification feed
		protectedRoutes.GET("/notifications", h.ListNotifications)
		// User administration
		protectedRoutes.GET("/users", h.GetAllUsers)
		protectedRoutes.POST("/users", h.CreateUser)
		// Realtime notification stream
		protectedRoutes.GET("/ws", h.WebSocket)
	}

	return ginRouter
}
