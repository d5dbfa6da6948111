package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/daybreakhq/Daybreak/Backend_go/internal/api/handlers"
	"github.com/daybreakhq/Daybreak/Backend_go/internal/api/middleware"
	"github.com/daybreakhq/Daybreak/Backend_go/internal/api/routes"
	"github.com/daybreakhq/Daybreak/Backend_go/internal/domain/alarm"
	"github.com/daybreakhq/Daybreak/Backend_go/internal/domain/challenge"
	"github.com/daybreakhq/Daybreak/Backend_go/internal/domain/profile"
	"github.com/daybreakhq/Daybreak/Backend_go/internal/domain/routine"
	"github.com/daybreakhq/Daybreak/Backend_go/internal/domain/tone"
	"github.com/daybreakhq/Daybreak/Backend_go/internal/infrastructure/cache"
	"github.com/daybreakhq/Daybreak/Backend_go/internal/infrastructure/persistence/postgres/connection"
	"github.com/daybreakhq/Daybreak/Backend_go/internal/infrastructure/persistence/postgres/migrations"
	"github.com/daybreakhq/Daybreak/Backend_go/internal/infrastructure/prefs"
	"github.com/daybreakhq/Daybreak/Backend_go/internal/infrastructure/scheduler"
	"github.com/daybreakhq/Daybreak/Backend_go/pkg/config"
	"github.com/daybreakhq/Daybreak/Backend_go/pkg/logger"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
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
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("") // Empty string will make it search in default locations
	if err != nil {
		stdlog.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	log := logger.NewLogger()
	defer log.Sync()

	log.Info("Configuration loaded successfully")
	log.Info("Server mode: " + cfg.Server.Mode)

	// Set up Gin
	if cfg.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	gin.DefaultWriter = os.Stdout

	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(RequestLoggerMiddleware(log))
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    cfg.CORS.AllowedMethods,
		AllowHeaders: append(cfg.CORS.AllowedHeaders,
			"Accept-Encoding",
			"Content-Encoding",
			"Content-Type",
		),
		ExposeHeaders: []string{
			"Content-Length",
			"Content-Encoding",
			"Content-Type",
			"Vary",
		},
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	metricsMiddleware := middleware.NewMetricsMiddleware()
	router.Use(metricsMiddleware.CollectMetrics())

	// Add Prometheus metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Connect to database
	db, err := connection.NewDatabase(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Run database migrations
	if err := migrations.AutoMigrate(db, log.Logger); err != nil {
		log.Fatal("Failed to run database migrations", zap.Error(err))
	}

	// Initialize Redis
	redisConfig := cache.NewConfigFromEnv(cfg)
	redisClient, err := cache.NewRedisClient(redisConfig)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Preference store: Postgres behind a Redis read-through
	prefStore := prefs.NewCachedStore(prefs.NewGormStore(db), redisClient)

	// Initialize logrus logger for the profile service
	profileLogger := logrus.New()
	profileLogger.SetFormatter(&logrus.JSONFormatter{})
	if cfg.Server.Mode == "production" {
		profileLogger.SetLevel(logrus.InfoLevel)
	} else {
		profileLogger.SetLevel(logrus.DebugLevel)
	}

	// Initialize repositories
	alarmRepo := alarm.NewRepository(prefStore)
	routineRepo := routine.NewRepository(prefStore)
	profileRepo := profile.NewRepository(prefStore)

	// Initialize services
	toneService := tone.NewService(log.Logger)
	challengeService := challenge.NewService(challenge.Config{
		TapGoal:      cfg.Alarm.TapGoal,
		MathRequired: cfg.Alarm.MathRequired,
		SessionTTL:   time.Duration(cfg.Alarm.SessionTTLMinutes) * time.Minute,
	}, log.Logger)
	routineService := routine.NewService(routineRepo, redisClient, log.Logger)
	profileService := profile.NewService(profileRepo, redisClient, profileLogger)

	// The ring scheduler owns the single alarm timer
	ringScheduler := scheduler.NewRingScheduler(challengeService, redisClient, log)

	alarmService := alarm.NewService(
		alarmRepo,
		ringScheduler,
		challengeService,
		redisClient,
		log.Logger,
		time.Duration(cfg.Alarm.SnoozeMinutes)*time.Minute,
	)

	// Re-arm the persisted schedule after a restart
	if err := alarmService.Restore(context.Background()); err != nil {
		log.Error("Failed to restore alarm schedule", zap.Error(err))
	}

	// Create cache middleware instance
	cacheMiddleware := middleware.NewCacheMiddleware(redisClient, "daybreak", 5*time.Minute)

	// Initialize handlers
	alarmHandler := handlers.NewAlarmHandler(alarmService)
	toneHandler := handlers.NewToneHandler(toneService)
	challengeHandler := handlers.NewChallengeHandler(challengeService)
	routineHandler := handlers.NewRoutineHandler(routineService)
	profileHandler := handlers.NewProfileHandler(profileService)
	eventHandler := handlers.NewEventHandler(redisClient)

	// Health check routes (no /api prefix as these are system endpoints)
	routes.SetupHealthRoutes(router)
	router.GET("/health/cache", func(c *gin.Context) {
		if err := redisClient.HealthCheck(c); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"component": "cache",
				"error":     err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"component": "cache",
			"metrics":   redisClient.GetMetrics(),
		})
	})
	router.DELETE("/health/cache/metrics", func(c *gin.Context) {
		redisClient.ResetCacheMetrics()
		c.JSON(http.StatusOK, gin.H{"message": "cache metrics reset"})
	})

	// Alarm routes
	alarmRoutes := routes.NewAlarmRoutes(alarmHandler)
	alarmRoutes.RegisterRoutes(router, cacheMiddleware)
	log.Info("Registered alarm routes at /api/alarm")

	// Tone routes
	toneRoutes := routes.NewToneRoutes(toneHandler)
	toneRoutes.RegisterRoutes(router, cacheMiddleware)
	log.Info("Registered tone routes at /api/tones")

	// Challenge and ring session routes
	challengeRoutes := routes.NewChallengeRoutes(challengeHandler)
	challengeRoutes.RegisterRoutes(router, cacheMiddleware)
	log.Info("Registered challenge routes at /api/challenges and /api/sessions")

	// Routine and feed routes
	routineRoutes := routes.NewRoutineRoutes(routineHandler)
	routineRoutes.RegisterRoutes(router, cacheMiddleware)
	log.Info("Registered routine routes at /api/routines and /api/feed")

	// Profile and onboarding routes
	profileRoutes := routes.NewProfileRoutes(profileHandler)
	profileRoutes.RegisterRoutes(router, cacheMiddleware)
	log.Info("Registered profile routes at /api/profile and /api/onboarding")

	// Ring event stream
	eventRoutes := routes.NewEventRoutes(eventHandler)
	eventRoutes.RegisterRoutes(router, cacheMiddleware)
	log.Info("Registered event stream at /api/events/stream")

	// Start server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info(fmt.Sprintf("Server starting on port %d", cfg.Server.Port))

		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	ringScheduler.Cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited properly")
}
