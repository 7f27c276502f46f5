package main

import (
	"log"

	"plumtrips-backend/config"
	"plumtrips-backend/database"
	"plumtrips-backend/handlers"
	"plumtrips-backend/middleware"
	"plumtrips-backend/storage"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	config.Load()

	// Connect to database
	database.Connect()

	// Connect to Redis (optional, won't crash if unavailable)
	database.ConnectRedis()

	// Configure S3 document storage (optional)
	storage.Connect()

	// Setup router
	r := gin.Default()
	r.Use(middleware.CORSMiddleware())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": config.AppConfig.AppName,
		})
	})

	// ==========================================
	// AUTH ROUTES (public, admin accounts)
	// ==========================================
	auth := r.Group("/auth")
	{
		auth.POST("/register", handlers.Register)
		auth.POST("/login", handlers.Login)
	}

	// ==========================================
	// ONBOARDING ROUTES (public, token-addressed)
	// ==========================================
	onboard := r.Group("/onboarding")
	{
		onboard.GET("/invite/:token", handlers.OpenInvite)
		onboard.GET("/draft/:token", handlers.GetDraft)
		onboard.POST("/draft/:token", handlers.SaveDraft)
		onboard.POST("/validate/:token", handlers.ValidateStep)
		onboard.POST("/upload-doc", handlers.UploadDoc)
		onboard.POST("/submit/:token", handlers.Submit)
	}

	// ==========================================
	// API ROUTES (authenticated)
	// ==========================================
	api := r.Group("/api")
	api.Use(middleware.AuthRequired())
	{
		// User
		api.GET("/users/me", handlers.GetProfile)
		api.PUT("/users/me", handlers.UpdateProfile)

		// Invites
		api.POST("/invites", handlers.CreateInvite)
		api.GET("/invites", handlers.ListInvites)
		api.GET("/invites/:id", handlers.GetInvite)
		api.POST("/invites/:id/revoke", handlers.RevokeInvite)

		// Submissions
		api.GET("/submissions", handlers.ListSubmissions)
		api.GET("/submissions/:id", handlers.GetSubmission)

		// Activity
		api.GET("/activity", handlers.GetActivity)
	}

	// Start server
	port := config.AppConfig.Port
	log.Printf("🚀 %s server starting on port %s", config.AppConfig.AppName, port)

	addr := "0.0.0.0:" + port
	log.Printf("🚀 Listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
