package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	v1 "github.com/atolyedigital/agency-api/api/v1"
	"github.com/atolyedigital/agency-api/config"
	"github.com/atolyedigital/agency-api/repositories"
	"github.com/atolyedigital/agency-api/services"
)

func main() {
	// Load environment variables
	config.LoadEnv()

	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	// Initialize router
	router := gin.Default()

	// CORS configuration
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: false,
	}))

	// Initialize storage
	store, err := repositories.NewFileStore(config.DataDir())
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	// Seed a default admin so a fresh deployment is reachable
	userService := services.NewUserService(store)
	if err := userService.EnsureDefaultAdmin(
		config.GetEnv("ADMIN_USERNAME", "admin"),
		config.GetEnv("ADMIN_PASSWORD", "admin123"),
		"Administrator",
	); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	// Health check endpoint
	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "agency-api",
			"version": "1.0.0",
		})
	})

	// Register API routes
	api := router.Group("/api")
	v1.RegisterRoutes(api, store)

	port := config.Port()

	// Start server
	log.Printf("🚀 Agency API starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
