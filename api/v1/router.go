package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/atolyedigital/agency-api/middleware"
	"github.com/atolyedigital/agency-api/repositories"
)

// RegisterRoutes registers all v1 API routes on the given group
func RegisterRoutes(router *gin.RouterGroup, store repositories.Store) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	authController := NewAuthController(store)
	projectController := NewProjectController(store)
	blogController := NewBlogController(store)
	proposalController := NewProposalController(store)
	userController := NewUserController(store)
	statsController := NewStatsController(store)

	// Auth endpoints
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/login", authController.Login)
		authGroup.GET("/me", middleware.AuthMiddleware(), authController.GetCurrentUser)
		authGroup.POST("/change-password", middleware.AuthMiddleware(), authController.ChangePassword)
	}

	// Public content endpoints
	router.GET("/projects", projectController.ListPublished)
	router.GET("/projects/featured", projectController.ListFeatured)
	router.GET("/projects/slug/:slug", projectController.GetBySlug)
	router.GET("/blogs", blogController.ListPublished)
	router.GET("/blogs/slug/:slug", blogController.GetBySlug)
	router.GET("/stats", statsController.GetStats)

	// Proposal submission is the one write path without a token
	router.POST("/proposals", proposalController.Submit)

	// Admin endpoints - protected by AuthMiddleware
	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware())
	{
		projects := admin.Group("/projects")
		{
			projects.GET("", projectController.ListAll)
			projects.POST("", projectController.Create)
			projects.GET("/:id", projectController.GetByID)
			projects.PUT("/:id", projectController.Update)
			projects.DELETE("/:id", projectController.Delete)
		}

		blogs := admin.Group("/blogs")
		{
			blogs.GET("", blogController.ListAll)
			blogs.POST("", blogController.Create)
			blogs.GET("/:id", blogController.GetByID)
			blogs.PUT("/:id", blogController.Update)
			blogs.DELETE("/:id", blogController.Delete)
		}

		proposals := admin.Group("/proposals")
		{
			proposals.GET("", proposalController.ListAll)
			proposals.GET("/:id", proposalController.GetByID)
			proposals.PUT("/:id", proposalController.Update)
			proposals.DELETE("/:id", proposalController.Delete)
		}

		// User management additionally requires the admin role
		users := admin.Group("/users")
		users.Use(middleware.AdminMiddleware())
		{
			users.GET("", userController.ListAll)
			users.POST("", userController.Create)
			users.PUT("/:id", userController.Update)
			users.DELETE("/:id", userController.Delete)
		}
	}
}
