package main

import (
	"net/http"
	"os"
	"time"

	"lagnasohalaa/database"
	"lagnasohalaa/internal/cache"
	"lagnasohalaa/internal/controllers"
	"lagnasohalaa/internal/middleware"
	"lagnasohalaa/internal/models"
	"lagnasohalaa/internal/repository"
	"lagnasohalaa/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("No .env file found, using environment variables")
	}

	if os.Getenv("APP_ENV") == "production" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
		gin.SetMode(gin.ReleaseMode)
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	if os.Getenv("JWT_SECRET_KEY") == "" {
		logrus.Fatal("JWT_SECRET_KEY is not set")
	}

	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		logrus.Fatalf("Failed to run database migrations: %v", err)
	}

	redisClient := cache.Connect()

	userRepo := repository.NewUserRepository(database.DB)
	profileRepo := repository.NewStore[models.Profile](database.DB)
	serviceRepo := repository.NewStore[models.WeddingService](database.DB)
	blogRepo := repository.NewStore[models.BlogPost](database.DB)
	storyRepo := repository.NewStore[models.SuccessStory](database.DB)
	pricingRepo := repository.NewPricingRepository(repository.NewStore[models.PricingPlan](database.DB), redisClient)

	authController := controllers.NewAuthController(userRepo)
	profileController := controllers.NewProfileController(profileRepo)
	serviceController := controllers.NewServiceController(serviceRepo)
	blogController := controllers.NewBlogController(blogRepo)
	storyController := controllers.NewStoryController(storyRepo)
	pricingController := controllers.NewPricingController(pricingRepo)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger())
	router.Use(middleware.CORS())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"message":   "Lagna Sohalaa API is running",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	api := router.Group("/api")
	routes.RegisterAuthRoutes(api, authController)
	routes.RegisterProfileRoutes(api, profileController)
	routes.RegisterServiceRoutes(api, serviceController)
	routes.RegisterBlogRoutes(api, blogController)
	routes.RegisterStoryRoutes(api, storyController)
	routes.RegisterPricingRoutes(api, pricingController)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Route not found",
		})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:           ":" + port,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	logrus.Infof("Server starting on port %s", port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logrus.Fatalf("Failed to start server: %v", err)
	}
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := logrus.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
			"ip":      c.ClientIP(),
		})

		if c.Writer.Status() >= http.StatusInternalServerError {
			entry.Error("request failed")
		} else {
			entry.Info("request completed")
		}
	}
}
