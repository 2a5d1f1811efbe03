package main

import (
	"fmt"
	"net/http"
	"os"

	"spendcheck/internal/config"
	"spendcheck/internal/database"
	"spendcheck/internal/handlers"
	"spendcheck/internal/logger"
	"spendcheck/internal/middleware"
	"spendcheck/internal/services"
	"spendcheck/internal/store/gormstore"
	"spendcheck/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "spendcheck/internal/docs" // Import swagger docs
)

// @title           Spendcheck API
// @version         1.0
// @description     Spendcheck is a personal expense tracker that keeps score against a monthly budget and comments on your spending as you log it.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

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
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Custom binding validators
	validator.Register()

	// Stores and services
	db := dbManager.DB()
	expenseStore := gormstore.NewExpenseStore(db)
	budgetStore := gormstore.NewBudgetStore(db)
	userService := services.NewUserService(db)
	expenseService := services.NewExpenseService(expenseStore, userService)
	budgetService := services.NewBudgetService(budgetStore)
	summaryService := services.NewSummaryService(expenseStore, budgetStore)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	expenseHandler := handlers.NewExpenseHandler(expenseService)
	budgetHandler := handlers.NewBudgetHandler(budgetService)
	summaryHandler := handlers.NewSummaryHandler(summaryService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	// User profile
	protected.GET("/profile", authHandler.GetProfile)
	protected.PUT("/profile", authHandler.UpdateProfile)

	// Expense routes
	expenses := protected.Group("/expenses")
	expenses.POST("", expenseHandler.CreateExpense)
	expenses.GET("", expenseHandler.ListExpenses)
	expenses.DELETE("/:id", expenseHandler.DeleteExpense)
	protected.DELETE("/months/:monthKey/expenses", expenseHandler.ResetMonth)

	// Budget routes
	budgets := protected.Group("/budgets")
	budgets.PUT("/:monthKey", budgetHandler.SetBudget)
	budgets.GET("/:monthKey", budgetHandler.GetBudget)

	// Summary routes
	summary := protected.Group("/summary")
	summary.GET("", summaryHandler.GetSummary)
	summary.GET("/export", summaryHandler.ExportCategories)

	log.Infof("Starting Spendcheck backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
