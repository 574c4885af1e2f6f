package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DJSYT/MineCloud/internal/api/handlers"
	"github.com/DJSYT/MineCloud/internal/api/middleware"
	"github.com/DJSYT/MineCloud/internal/api/routes"
	"github.com/DJSYT/MineCloud/internal/domain/inquiry"
	"github.com/DJSYT/MineCloud/internal/domain/tracking"
	"github.com/DJSYT/MineCloud/internal/domain/user"
	"github.com/DJSYT/MineCloud/internal/infrastructure/persistence/postgres/connection"
	"github.com/DJSYT/MineCloud/internal/infrastructure/persistence/postgres/migrations"
	"github.com/DJSYT/MineCloud/pkg/config"
	"github.com/DJSYT/MineCloud/pkg/logger"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// RequestLoggerMiddleware logs all incoming HTTP requests
func RequestLoggerMiddleware(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		log.Info("Request completed",
			zap.String("path", path),
			zap.String("method", method),
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

func main() {
	cfg, err := config.LoadConfig("")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logg := logger.NewLogger(cfg.Logging.Level)
	defer logg.Sync()

	logg.Info("Configuration loaded successfully")
	logg.Info("Server mode: " + cfg.Server.Mode)

	if cfg.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	gin.DefaultWriter = os.Stdout

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(RequestLoggerMiddleware(logg))
	router.Use(middleware.NewMetricsMiddleware().CollectMetrics())
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     cfg.CORS.AllowedMethods,
		AllowHeaders:     cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	db, err := connection.NewDatabase(cfg)
	if err != nil {
		logg.Fatal("Failed to connect to database", zap.Error(err))
	}

	if err := migrations.AutoMigrate(db, logg.Logger); err != nil {
		logg.Fatal("Failed to run database migrations", zap.Error(err))
	}

	// Repositories
	userRepo := user.NewRepository(db.DB)
	inquiryRepo := inquiry.NewRepository(db.DB)
	trackingRepo := tracking.NewRepository(db.DB)

	// Services
	userService := user.NewService(userRepo)
	inquiryService := inquiry.NewService(inquiryRepo)
	trackingService := tracking.NewService(trackingRepo)

	// Handlers
	validation := middleware.NewValidationMiddleware(logg)
	userHandler := handlers.NewUserHandler(userService, logg)
	inquiryHandler := handlers.NewInquiryHandler(inquiryService, logg)
	trackingHandler := handlers.NewTrackingHandler(trackingService, logg)
	analyticsHandler := handlers.NewAnalyticsHandler(trackingService, inquiryService, logg)

	// Routes
	routes.SetupHealthRoutes(router)
	routes.NewTrackingRoutes(trackingHandler).RegisterRoutes(router)
	routes.NewInquiryRoutes(inquiryHandler, validation).RegisterRoutes(router)
	routes.NewUserRoutes(userHandler, validation).RegisterRoutes(router)
	routes.NewAnalyticsRoutes(analyticsHandler).RegisterRoutes(router)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		logg.Info("MineCloud API server running", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logg.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logg.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logg.Error("Forced shutdown", zap.Error(err))
	}

	logg.Info("Server exited")
}
