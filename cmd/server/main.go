package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"frota-backend/internal/api/routes"
	"frota-backend/internal/config"
	"frota-backend/pkg/cache"
	"frota-backend/pkg/database"
	"frota-backend/pkg/geocode"
	"frota-backend/pkg/jwt"
	"frota-backend/pkg/logger"
)

func main() {
	// Load configuration
	cfg := config.Load()

	zlog := logger.New(cfg.Environment)
	defer zlog.Sync()

	// Connect to Postgres
	db, err := database.Connect(cfg.DB)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer database.Close(db)

	// Initialize Redis client
	redisClient, err := cache.NewClient(cfg.Redis)
	if err != nil {
		zlog.Warn("redis unavailable, caching and rate limiting disabled", zap.Error(err))
		redisClient = nil
	} else {
		defer redisClient.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Ping(ctx).Err(); err != nil {
			zlog.Warn("redis ping failed (will retry automatically)", zap.Error(err))
		} else {
			zlog.Info("redis connected")
		}
		cancel()
	}

	// Session token signer
	jwtUtil, err := jwt.New(cfg.JWTPrivateKey, cfg.JWTPublicKey, cfg.JWTExpiry)
	if err != nil {
		log.Fatal("Failed to load JWT key pair:", err)
	}

	geocoder := geocode.NewClient()

	// Setup Gin router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	// CORS middleware
	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
	}

	// Handle wildcard origin for development
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false // Cannot use credentials with AllowAllOrigins
	} else {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
		corsConfig.AllowCredentials = true
	}

	router.Use(cors.New(corsConfig))

	// Setup routes
	routes.SetupRoutes(router, routes.Dependencies{
		DB:          db,
		RedisClient: redisClient,
		JWTUtil:     jwtUtil,
		Geocoder:    geocoder,
		Logger:      zlog,
		Config:      cfg,
	})

	// Start server
	zlog.Info("server starting", zap.String("port", cfg.Port))
	log.Fatal(router.Run(":" + cfg.Port))
}
