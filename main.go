// api/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"portfolio/api/database"
	"portfolio/api/handlers"
	"portfolio/api/middleware"
	"portfolio/api/store"
)

// Login attempts allowed per IP per window.
const (
	loginRateLimit  = 10
	loginRateWindow = time.Minute
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	// Load .env file at the very start
	if err := godotenv.Load(); err != nil {
		zap.S().Infof("No .env file found or error loading .env: %v", err)
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// --- Initialize the embedded SQLite database ---
	dbClient, err := database.NewSQLiteDB(database.ResolvePath())
	if err != nil {
		zap.S().Fatalf("Failed to open database: %v", err)
	}
	defer dbClient.Close()

	if err := database.Migrate(dbClient.DB); err != nil {
		zap.S().Fatalf("Failed to migrate database: %v", err)
	}

	// --- Initialize Stores ---
	skillStore := store.NewSkillStore(dbClient.DB)
	projectStore := store.NewProjectStore(dbClient.DB)
	experienceStore := store.NewExperienceStore(dbClient.DB)
	aboutStore := store.NewAboutStore(dbClient.DB)
	statStore := store.NewStatStore(dbClient.DB)
	contactStore := store.NewContactStore(dbClient.DB)
	analyticsStore := store.NewAnalyticsStore(dbClient.DB)

	// --- Initialize Handlers ---
	skillHandlers := handlers.NewSkillHandlers(skillStore)
	projectHandlers := handlers.NewProjectHandlers(projectStore)
	experienceHandlers := handlers.NewExperienceHandlers(experienceStore)
	aboutHandlers := handlers.NewAboutHandlers(aboutStore)
	statHandlers := handlers.NewStatHandlers(statStore)
	contactHandlers := handlers.NewContactHandlers(contactStore)
	analyticsHandlers := handlers.NewAnalyticsHandlers(analyticsStore)
	authHandlers := handlers.NewAuthHandlers()

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	api := r.Group("/api")
	{
		// Public marketing-site reads
		api.GET("/skills", skillHandlers.List)
		api.GET("/projects", projectHandlers.List)
		api.GET("/projects/count", projectHandlers.Count)
		api.GET("/experience", experienceHandlers.List)
		api.GET("/about", aboutHandlers.List)
		api.GET("/stats", statHandlers.List)

		// Public visitor submissions
		api.POST("/contact", contactHandlers.Create)
		api.POST("/analytics/track", analyticsHandlers.Track)

		// Session endpoints
		api.POST("/admin/login", middleware.RateLimiter(loginRateLimit, loginRateWindow), authHandlers.Login)
		api.POST("/admin/logout", authHandlers.Logout)

		// Admin panel routes (require a valid session)
		protected := api.Group("/")
		protected.Use(middleware.AuthRequired())
		{
			protected.POST("/skills", skillHandlers.Create)
			protected.PUT("/skills/:id", skillHandlers.Update)
			protected.DELETE("/skills/:id", skillHandlers.Delete)

			protected.POST("/projects", projectHandlers.Create)
			protected.PUT("/projects/:id", projectHandlers.Update)
			protected.DELETE("/projects/:id", projectHandlers.Delete)

			protected.POST("/experience", experienceHandlers.Create)
			protected.PUT("/experience/:id", experienceHandlers.Update)
			protected.DELETE("/experience/:id", experienceHandlers.Delete)

			protected.POST("/about", aboutHandlers.Upsert)

			protected.POST("/stats", statHandlers.Create)
			protected.PUT("/stats/:id", statHandlers.Update)
			protected.DELETE("/stats/:id", statHandlers.Delete)

			protected.GET("/contact", contactHandlers.List)
			protected.PUT("/contact/:id", contactHandlers.UpdateRead)
			protected.DELETE("/contact/:id", contactHandlers.Delete)

			protected.GET("/analytics/stats", analyticsHandlers.Stats)
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		zap.S().Infof("Portfolio API server starting on http://localhost:%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.S().Fatalf("Portfolio API server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.S().Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zap.S().Fatalf("Server forced to shutdown: %v", err)
	}

	zap.S().Info("Server exiting.")
}
