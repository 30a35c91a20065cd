// @title Nedhal Reading Competition API
// @version 1.0
// @description Backend API for the Nedhal reading competition dashboard
// @contact.name API Support
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"context"
	"log"
	"time"

	"nedhal-be/config"
	"nedhal-be/internal/database"
	"nedhal-be/internal/handlers"
	"nedhal-be/internal/middleware"
	"nedhal-be/internal/models"
	"nedhal-be/internal/repository"
	"nedhal-be/internal/services"
	"nedhal-be/internal/utils"

	"github.com/gin-gonic/gin"

	_ "nedhal-be/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Connect to MongoDB
	mongodb, err := database.NewMongoDB(cfg.MongoDBURI, cfg.MongoDBDatabase)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongodb.Disconnect()

	// Initialize repositories
	userRepo := repository.NewUserRepository(mongodb.Database)
	entryRepo := repository.NewEntryRepository(mongodb.Database)

	// Initialize services
	store := services.NewDataStore()
	sheetsService := services.NewSheetsService(cfg)
	refresher := services.NewRefreshService(sheetsService, entryRepo, store)
	statsService := services.NewStatsService(store)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	seedAdmin(ctx, cfg, userRepo)

	// Serve stale cached rows until the first fetch lands
	if err := refresher.Seed(ctx); err != nil {
		log.Println("Failed to seed entries from cache:", err)
	}
	services.StartRefreshWorker(ctx, cfg.RefreshInterval, refresher)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(cfg, userRepo)
	seasonsHandler := handlers.NewSeasonsHandler(statsService)
	leaderboardHandler := handlers.NewLeaderboardHandler(statsService)
	participantsHandler := handlers.NewParticipantsHandler(statsService)
	adminHandler := handlers.NewAdminHandler(refresher, store)

	// Initialize Gin
	r := gin.Default()

	// Apply CORS middleware
	r.Use(middleware.CORS(cfg))

	// Public routes
	public := r.Group("/api")
	{
		// Health check
		public.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":   "ok",
				"message":  "Nedhal API is running",
				"database": "MongoDB connected",
			})
		})

		// Auth routes
		auth := public.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.RefreshToken)
		}

		// Dashboard data
		public.GET("/seasons", seasonsHandler.List)
		public.GET("/seasons/current", seasonsHandler.Current)
		public.GET("/seasons/comparison", seasonsHandler.Comparison)
		public.GET("/leaderboard", leaderboardHandler.Leaderboard)
		public.GET("/countdown", leaderboardHandler.Countdown)
		public.GET("/expelled", leaderboardHandler.Expelled)
		public.GET("/records", leaderboardHandler.Records)
		public.GET("/participants/search", participantsHandler.Search)
		public.GET("/participants/:name", participantsHandler.Detail)
	}

	// Protected routes
	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware(cfg))
	{
		protected.POST("/auth/logout", authHandler.Logout)
		protected.GET("/auth/me", authHandler.GetMe)

		protected.POST("/admin/refresh", adminHandler.ForceRefresh)
		protected.GET("/admin/warnings", adminHandler.Warnings)
	}

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	log.Printf("Connected to MongoDB: %s", cfg.MongoDBDatabase)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

// seedAdmin creates the configured admin account on first boot.
func seedAdmin(ctx context.Context, cfg *config.Config, userRepo *repository.UserRepository) {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return
	}

	seedCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := userRepo.FindByEmail(seedCtx, cfg.AdminEmail); err == nil {
		return
	}

	hashed, err := utils.HashPassword(cfg.AdminPassword)
	if err != nil {
		log.Println("Failed to hash admin password:", err)
		return
	}

	admin := &models.User{
		Email:    cfg.AdminEmail,
		Password: hashed,
		Name:     "Admin",
	}
	if err := userRepo.Create(seedCtx, admin); err != nil {
		log.Println("Failed to seed admin account:", err)
		return
	}
	log.Println("Seeded admin account:", cfg.AdminEmail)
}
