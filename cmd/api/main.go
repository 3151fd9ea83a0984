package main

import (
	"mini-social/internal/app"
	"mini-social/pkg/cache"
	"mini-social/pkg/config"
	"mini-social/pkg/database"
	"mini-social/pkg/logger"
)

// @title           Mini Social API
// @version         1.0
// @description     Posts, comments and likes behind a JWT-protected API

// @host      localhost:4000
// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if cfg.JWTSecret == "" {
		panic("JWT_SECRET must be set in environment variables")
	}

	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	// Redis only backs rate limiting; the API stays up without it.
	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Warn("Redis unavailable, rate limiting disabled: %v", err)
		redisClient = nil
	}

	app.Run(cfg, log, db, redisClient)
}
