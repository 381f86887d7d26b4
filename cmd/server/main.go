package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vsxchangeza/backend/internal/auth"
	"github.com/vsxchangeza/backend/internal/config"
	"github.com/vsxchangeza/backend/internal/database"
	"github.com/vsxchangeza/backend/internal/handlers"
	"github.com/vsxchangeza/backend/internal/logger"
	"github.com/vsxchangeza/backend/internal/metrics"
	"github.com/vsxchangeza/backend/internal/middleware"
	"github.com/vsxchangeza/backend/internal/storage"
	"github.com/vsxchangeza/backend/internal/telemetry"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if err := logger.Initialize(cfg.LogLevel, cfg.LogFile); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Log.Sync()

	logger.Log.Info("VSXchangeZA backend starting", zap.String("environment", cfg.Environment))

	// Initialize database and run migrations
	if err := database.Initialize(); err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer database.Close()

	if err := database.Migrate(); err != nil {
		logger.Log.Fatal("Failed to run migrations", zap.Error(err))
	}

	authService := auth.NewService(cfg.JWTSecret)

	// Select the media store: local disk by default, S3 when configured
	var (
		media      storage.MediaStore
		localStore *storage.LocalStore
	)
	if cfg.MediaStore == "s3" {
		s3Store, err := storage.NewS3Store(cfg.AWSRegion, cfg.AWSBucket, cfg.CDNBaseURL)
		if err != nil {
			logger.Log.Fatal("Failed to initialize S3 media store", zap.Error(err))
		}
		if err := s3Store.CheckBucketAccess(context.Background()); err != nil {
			logger.Log.Warn("S3 bucket access check failed, uploads may fail", zap.Error(err))
		}
		media = s3Store
	} else {
		ls, err := storage.NewLocalStore(cfg.UploadDir, "/uploads")
		if err != nil {
			logger.Log.Fatal("Failed to initialize local media store", zap.Error(err))
		}
		media = ls
		localStore = ls
	}

	// Tracing is off unless OTEL_ENABLED=true
	tp, err := telemetry.InitTracer(telemetry.Config{
		ServiceName:  "vsxchangeza-backend",
		Environment:  cfg.Environment,
		OTLPEndpoint: cfg.OTelEndpoint,
		Enabled:      cfg.OTelEnabled,
		SamplingRate: cfg.OTelSamplingRate,
	})
	if err != nil {
		logger.Log.Warn("Failed to initialize tracing", zap.Error(err))
	}
	if tp != nil {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = tp.Shutdown(ctx)
		}()
	}

	metrics.Initialize()

	h := handlers.NewHandlers(authService, media)

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Metrics())
	if tp != nil {
		r.Use(otelgin.Middleware("vsxchangeza-backend"))
	}
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.CORSOrigin}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	r.GET("/health", h.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Uploaded media is served straight off disk when using the local store
	if localStore != nil {
		r.Static("/uploads", localStore.Dir())
	}

	api := r.Group("/api")
	{
		api.POST("/auth/register", h.Register)
		api.POST("/auth/login", h.Login)

		api.GET("/me", auth.RequireAuth(authService), h.Me)
		api.PUT("/me", auth.RequireAuth(authService), h.UpdateMe)

		api.GET("/users", h.SearchUsers)
		api.GET("/users/:id", h.GetUser)

		api.GET("/posts", h.ListPosts)
		api.POST("/posts", auth.RequireAuth(authService), h.CreatePost)
		api.POST("/posts/:id/approve", auth.RequireAuth(authService), h.ApprovePost)

		api.GET("/posts/:id/comments", h.ListComments)
		api.POST("/posts/:id/comments", auth.RequireAuth(authService), h.CreateComment)

		api.POST("/upload", auth.RequireAuth(authService), h.Upload)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		logger.Log.Info("Listening", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	// Give outstanding requests 30 seconds to complete
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Log.Info("Server exited")
}
