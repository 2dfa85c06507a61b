// ================== cmd/api/main.go ==================
//
// @title Todo API
// @version 1.0
// @description A RESTful API for managing todo items backed by PostgreSQL
// @host localhost:8080
// @BasePath /api
// @schemes http
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/xyz-asif/todoapi/internal/config"
	"github.com/xyz-asif/todoapi/internal/database"
	"github.com/xyz-asif/todoapi/internal/middleware"
	"github.com/xyz-asif/todoapi/internal/pkg/logger"
	"github.com/xyz-asif/todoapi/internal/pkg/response"
	"github.com/xyz-asif/todoapi/internal/routes"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	docs "github.com/xyz-asif/todoapi/docs"
)

func main() {
	// Load config
	cfg := config.Load()
	logger.SetGlobalLevel(logger.ParseLevel(cfg.AppEnv))

	// Configure Swagger metadata at runtime
	docs.SwaggerInfo.Title = "Todo API"
	docs.SwaggerInfo.Description = "A RESTful API for managing todo items backed by PostgreSQL"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = "localhost:" + cfg.Port
	docs.SwaggerInfo.BasePath = "/api"
	docs.SwaggerInfo.Schemes = []string{"http"}

	// Connect to PostgreSQL
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()
	logger.Info("Database connected")

	// Setup Gin
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS(cfg.FrontendURL))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		if err := db.Ping(c.Request.Context()); err != nil {
			response.ServiceUnavailable(c, "Database unreachable", "DATABASE_DOWN")
			return
		}
		response.Success(c, map[string]interface{}{
			"status": "ok",
			"time":   time.Now().Unix(),
		})
	})

	// Swagger documentation
	router.GET(
		"/swagger/*any",
		ginSwagger.WrapHandler(
			swaggerFiles.Handler,
			ginSwagger.URL("/swagger/doc.json"),
			ginSwagger.DefaultModelsExpandDepth(-1),
			ginSwagger.DocExpansion("none"),
		),
	)

	// Register all routes
	if err := routes.SetupRoutes(router, db.DB); err != nil {
		logger.Fatal("Failed to set up routes: %v", err)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	go func() {
		logger.Info("Server starting on port %s", cfg.Port)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown: %v", err)
	}

	logger.Info("Server exited")
}
