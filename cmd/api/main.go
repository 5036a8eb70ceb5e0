package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"christmas-gift-api/config"
	"christmas-gift-api/controllers"
	"christmas-gift-api/middleware"
	"christmas-gift-api/routes"
	"christmas-gift-api/services"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	logFile, _ := config.InitLogging()
	if logFile != nil {
		defer logFile.Close()
	}

	config.InitDB()

	ginMode := os.Getenv("GIN_MODE")
	if ginMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())

	// Security headers
	router.Use(func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Next()
	})

	router.Use(middleware.CORSMiddleware())

	// Statuses and settings are reference data; one cache serves both for the
	// life of the process.
	cache := services.NewReferenceCache(services.DefaultReferenceTTL)
	submissionService := services.NewWishListSubmissionService(config.DB, cache)
	settingsService := services.NewSettingsService(config.DB, cache)
	notificationService := services.NewWishListNotificationService(config.DB, nil)

	routes.SetupRoutes(
		router,
		controllers.NewSubmissionController(submissionService, notificationService),
		controllers.NewSettingsController(settingsService),
	)

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)

	if err := router.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
