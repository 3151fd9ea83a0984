package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	apiHTTP "mini-social/internal/controller/http"
	"mini-social/internal/repo/persistent"
	"mini-social/internal/usecase"
	"mini-social/pkg/config"
	"mini-social/pkg/jwt"
	"mini-social/pkg/logger"
	"mini-social/pkg/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "mini-social/docs" // Swagger docs
)

// Run wires the repositories, use cases and handlers, starts the HTTP
// server and blocks until an interrupt triggers a graceful shutdown.
func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, redisClient *redis.Client) {
	jwtService := jwt.NewService(cfg.JWTSecret)

	// Initialize repositories
	userRepo := persistent.NewUserRepository(db)
	postRepo := persistent.NewPostRepository(db)
	commentRepo := persistent.NewCommentRepository(db)

	// Initialize use cases
	authUseCase := usecase.NewAuthUseCase(userRepo, jwtService, log)
	postUseCase := usecase.NewPostUseCase(postRepo, commentRepo, log)
	commentUseCase := usecase.NewCommentUseCase(commentRepo, postRepo, log)
	assembler := usecase.NewViewAssembler(userRepo, postRepo, commentRepo)

	// Initialize HTTP handlers
	development := cfg.IsDevelopment()
	authHandler := apiHTTP.NewAuthHandler(authUseCase, development)
	postHandler := apiHTTP.NewPostHandler(postUseCase, assembler, log, development)
	commentHandler := apiHTTP.NewCommentHandler(commentUseCase, assembler, log, development)

	if !development {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"name": "mini-social api", "status": "ok"})
	})

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")

	// Public routes
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.GET("/posts", postHandler.ListPosts)
		api.GET("/posts/:id", postHandler.GetPost)
		api.GET("/posts/:id/comments", commentHandler.ListComments)
	}

	// Routes that require a valid token. The limiter runs after auth so it
	// keys on the authenticated user rather than the client IP.
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(jwtService))
	if redisClient != nil {
		protected.Use(middleware.RateLimitMiddleware(redisClient, 100, time.Minute)) // 100 requests per minute
	}
	{
		protected.GET("/auth/me", authHandler.Me)
		protected.POST("/posts", postHandler.CreatePost)
		protected.PUT("/posts/:id", postHandler.UpdatePost)
		protected.DELETE("/posts/:id", postHandler.DeletePost)
		protected.POST("/posts/:id/like", postHandler.ToggleLike)
		protected.POST("/posts/:id/comments", commentHandler.CreateComment)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info("API starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Shutdown server first so in-flight requests can still reach the database
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Close database connection
	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	// Close Redis connection
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis: %v", err)
		}
	}

	log.Info("API exited")
}
