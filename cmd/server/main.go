package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"

	"moodsync-backend/handlers"
	"moodsync-backend/repository"
	"moodsync-backend/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/generative-ai-go/genai"
	"github.com/joho/godotenv"
	"google.golang.org/api/option"
)

func main() {
	// Load .env file from project root (relative to cmd/server/)
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found, using environment variables")
		}
	}

	db, err := initMongo()
	if err != nil {
		log.Fatal("Failed to initialize MongoDB:", err)
	}
	defer db.Close(context.Background())

	geminiClient, err := initGemini()
	if err != nil {
		log.Fatal("Failed to initialize Gemini:", err)
	}

	// Initialize repositories
	moodRepo := repository.NewMoodRepository(db)
	lifestyleRepo := repository.NewLifestyleRepository(db)
	gratitudeRepo := repository.NewGratitudeRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Initialize services
	guidanceService := service.NewGuidanceService(
		service.GuidanceWithClient(geminiClient),
	)
	moodService := service.NewMoodService(
		service.MoodWithStore(moodRepo),
		service.MoodWithUserStore(userRepo),
		service.MoodWithGuidance(guidanceService),
	)
	lifestyleService := service.NewLifestyleService(
		service.LifestyleWithStore(lifestyleRepo),
	)
	gratitudeService := service.NewGratitudeService(
		service.GratitudeWithStore(gratitudeRepo),
	)
	authService := service.NewAuthService(
		service.AuthWithUserStore(userRepo),
	)
	accountService := service.NewAccountService(
		service.AccountWithMoodStore(moodRepo),
		service.AccountWithGratitudeStore(gratitudeRepo),
		service.AccountWithLifestyleStore(lifestyleRepo),
	)

	// Initialize handlers
	moodHandler := handlers.NewMoodHandler(moodService)
	lifestyleHandler := handlers.NewLifestyleHandler(lifestyleService)
	gratitudeHandler := handlers.NewGratitudeHandler(gratitudeService)
	authHandler := handlers.NewAuthHandler(authService)
	accountHandler := handlers.NewAccountHandler(accountService)

	// Setup Gin router
	r := gin.Default()
	r.Use(corsMiddleware())

	// Liveness endpoints for orchestration probes
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/health", func(c *gin.Context) {
		if err := db.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unavailable",
				"error":  err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"database": "reachable",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		api.GET("/", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "Mood Sync API"})
		})

		// Mood endpoints
		api.POST("/mood/submit", moodHandler.Submit)
		api.GET("/mood/history", moodHandler.History)
		api.GET("/mood/trends", moodHandler.Trends)
		api.GET("/mood/trigger-insights", moodHandler.TriggerInsights)
		api.GET("/mood/trigger-heatmap", moodHandler.TriggerHeatmap)

		// Lifestyle endpoints
		api.POST("/lifestyle/assess", lifestyleHandler.Assess)
		api.GET("/lifestyle/history", lifestyleHandler.History)
		api.GET("/lifestyle/weekly-report", lifestyleHandler.WeeklyReport)

		// Gratitude endpoints
		api.POST("/gratitude/add", gratitudeHandler.Add)
		api.GET("/gratitude/entries", gratitudeHandler.List)
		api.DELETE("/gratitude/delete/:id", gratitudeHandler.Delete)

		// Auth endpoints
		api.POST("/auth/signup", authHandler.Signup)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/send-otp", authHandler.SendOTP)
		api.POST("/auth/verify-otp", authHandler.VerifyOTP)

		// Account endpoints
		api.DELETE("/user/data", accountHandler.DeleteUserData)
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

func initMongo() (*repository.DB, error) {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = "moodsync"
	}

	db, err := repository.NewDB(context.Background(), uri, dbName)
	if err != nil {
		return nil, err
	}

	log.Println("MongoDB connection established")
	return db, nil
}

// initGemini returns nil when no API key is configured; the guidance
// service then serves its fallback message for every submission.
func initGemini() (*genai.Client, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Println("Warning: GEMINI_API_KEY not set, guidance falls back to canned messages")
		return nil, nil
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	log.Println("Gemini client initialized")
	return client, nil
}

func corsMiddleware() gin.HandlerFunc {
	config := cors.DefaultConfig()
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "X-User-Id"}

	origins := os.Getenv("CORS_ORIGINS")
	if origins == "" || origins == "*" {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = strings.Split(origins, ",")
	}

	return cors.New(config)
}
