package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/bvqadmin/montos-api/config"
	_ "github.com/bvqadmin/montos-api/docs"
	"github.com/bvqadmin/montos-api/internal/database"
	"github.com/bvqadmin/montos-api/internal/handlers"
	"github.com/bvqadmin/montos-api/internal/middleware"
	"github.com/bvqadmin/montos-api/internal/models"
	"github.com/bvqadmin/montos-api/internal/repository"
)

// maxBodyBytes caps request bodies at 10 MiB.
const maxBodyBytes = 10 << 20

// @title API MontoColoCadoPC
// @version 1.0.0
// @description CRUD and aggregate statistics over the MontoColoCadoPC issuance registry.
// @BasePath /api
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		log.SetFormatter(&log.JSONFormatter{})
	}

	// The payload-key to column mapping is static; verify it before serving.
	if err := models.ValidateFieldMappings(); err != nil {
		log.Fatalf("Invalid field mappings: %v", err)
	}

	// Initialize database connection
	ctx := context.Background()
	db, err := database.New(ctx, cfg.DatabaseURL, cfg.DBMaxConns)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Initialize repository and handlers
	montoRepo := repository.NewMontoRepository(db.Pool)
	montoHandler := handlers.NewMontoHandler(montoRepo)
	healthHandler := handlers.NewHealthHandler()

	// Setup Gin router
	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.ErrorHandler(!cfg.IsProduction()))
	router.Use(corsPolicy(cfg))
	router.Use(middleware.MaxBodySize(maxBodyBytes))

	router.GET("/", healthHandler.Root)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes, rate limited as a group
	api := router.Group("/api", middleware.RateLimiter(cfg.RateLimitWindow, cfg.RateLimitMax))
	api.GET("", healthHandler.Index)
	api.GET("/health", healthHandler.Health)
	api.GET("/montos", montoHandler.List)
	api.GET("/montos/stats", montoHandler.GetStats)
	api.GET("/montos/:rmv", montoHandler.Get)
	api.POST("/montos", montoHandler.Create)
	api.PUT("/montos/:rmv", montoHandler.Update)
	api.DELETE("/montos/:rmv", montoHandler.Delete)

	router.NoRoute(middleware.NoRoute())

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.WithFields(log.Fields{
			"port": cfg.Port,
			"env":  cfg.Env,
		}).Info("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	// Drain in-flight requests, then close the pool via the deferred Close.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}

	log.Info("server exited")
}

// corsPolicy allows the configured origins in production and any origin in
// development.
func corsPolicy(cfg *config.Config) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if cfg.IsProduction() {
		if len(cfg.AllowedOrigins) == 0 {
			log.Fatal("ALLOWED_ORIGINS is required in production")
		}
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsCfg.AllowOriginFunc = func(string) bool { return true }
	}
	return cors.New(corsCfg)
}
