package main

import (
	"fmt"
	"net/http"
	"os"

	"cryptofolio/internal/config"
	"cryptofolio/internal/database"
	"cryptofolio/internal/handlers"
	"cryptofolio/internal/logger"
	"cryptofolio/internal/middleware"
	"cryptofolio/internal/services"
	"cryptofolio/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "cryptofolio/internal/docs" // Import swagger docs
)

// @title           Cryptofolio API
// @version         1.0
// @description     Cryptofolio is a crypto portfolio tracker: users record their asset positions and get valuation, profit/loss, distribution, and accumulation statistics.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db)
	portfolioService := services.NewPortfolioService(db)
	statsService := services.NewStatsService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	portfolioHandler := handlers.NewPortfolioHandler(portfolioService)
	statsHandler := handlers.NewStatsHandler(statsService)

	// Register custom binding validators
	validator.Register()

	// Initialize Gin router. The edge policies are an ordered chain:
	// CORS must come before Cache so OPTIONS preflights short-circuit
	// without ever touching the cache layer.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS())
	router.Use(middleware.Cache())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public routes
	router.POST("/api/register", authHandler.Register)
	router.POST("/api/login", authHandler.Login)

	// Protected routes
	api := router.Group("/api")
	api.Use(middleware.AuthMiddleware())

	api.GET("/me", authHandler.Me)

	portfolio := api.Group("/portfolio")
	portfolio.GET("", portfolioHandler.List)
	portfolio.POST("", portfolioHandler.Create)
	portfolio.GET("/:id", portfolioHandler.Show)
	portfolio.PUT("/:id", portfolioHandler.Update)
	portfolio.PATCH("/:id", portfolioHandler.Update)
	portfolio.DELETE("/:id", portfolioHandler.Delete)

	stats := api.Group("/stats/portfolio")
	stats.GET("/value", statsHandler.Value)
	stats.GET("/summary", statsHandler.Summary)
	stats.GET("/history", statsHandler.History)
	stats.GET("/distribution", statsHandler.Distribution)

	log.Infof("Starting Cryptofolio backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
