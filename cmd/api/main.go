// @title           Match Service API
// @version         1.0
// @description     경기 생성, 참가/대기열, 초대 관리 API
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.wealist.co.kr/support
// @contact.email  support@wealist.co.kr

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8000
// @BasePath  /api/matches

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	_ "match-service/docs" // Swagger docs import

	"match-service/internal/client"
	"match-service/internal/config"
	"match-service/internal/database"
	"match-service/internal/handler"
	"match-service/internal/job"
	"match-service/internal/metrics"
	"match-service/internal/repository"
	"match-service/internal/router"
	"match-service/internal/service"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := initLogger(cfg.Logger.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("Starting Match Service",
		zap.String("port", cfg.Server.Port),
		zap.String("mode", cfg.Server.Mode),
		zap.String("base_path", cfg.Server.BasePath),
		zap.Duration("invitation_ttl", cfg.Match.InvitationTTL),
	)

	m := metrics.NewWithLogger(logger)

	// The engine has nothing to serve without its store, so startup waits for it
	dbConfig := database.Config{
		DSN:             cfg.Database.GetDSN(),
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}
	connectCtx, cancelConnect := context.WithTimeout(context.Background(), 2*time.Minute)
	db, err := database.Connect(connectCtx, dbConfig, 0, logger)
	cancelConnect()
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	logger.Info("Database connected successfully")

	if cfg.Database.AutoMigrate {
		if err := database.AutoMigrateWithRetry(db, logger, 3); err != nil {
			logger.Fatal("Failed to run database migrations", zap.Error(err))
		}
	}

	if err := database.RegisterMetricsCallbacks(db, m); err != nil {
		logger.Warn("Failed to register query metrics callbacks", zap.Error(err))
	}
	statsDone := database.StartDBStatsCollector(db, m, 15*time.Second)

	// Redis only feeds the pub/sub notification sink
	rdb, err := database.NewRedis(cfg.Redis, logger)
	if err != nil {
		logger.Warn("Redis unavailable, pub/sub notifications disabled", zap.Error(err))
		rdb = nil
	}

	var sinks []client.Sink
	if cfg.Notification.BaseURL != "" {
		sinks = append(sinks, client.Sink{
			Name: "noti_service",
			Client: client.NewNotificationClient(
				cfg.Notification.BaseURL,
				cfg.Notification.APIKey,
				cfg.Notification.Timeout,
				logger,
				m,
			),
		})
	}
	if rdb != nil && cfg.Notification.RedisPublish {
		sinks = append(sinks, client.Sink{Name: "redis", Client: client.NewRedisPublisher(rdb, logger, m)})
	}
	if len(sinks) == 0 {
		logger.Warn("No notification sinks configured, events will be discarded")
	}
	dispatcher := client.NewAsyncDispatcher(client.DispatcherConfig{
		QueueSize:   cfg.Notification.QueueSize,
		Workers:     cfg.Notification.Workers,
		SendTimeout: cfg.Notification.Timeout,
	}, sinks, logger, m)

	store := repository.NewStore(db)

	collector := metrics.NewBusinessMetricsCollector(store.Matches(), store.Invitations(), m, logger, cfg.Job.MetricsInterval)
	collector.Start()

	matchService := service.NewMatchService(store, dispatcher, service.MatchOptions{
		MaxPlayers: cfg.Match.MaxPlayers,
	}, logger, m)
	invitationService := service.NewInvitationService(store, dispatcher, service.InvitationOptions{
		TTL: cfg.Match.InvitationTTL,
	}, logger, m)

	scheduler, err := job.NewScheduler(
		cfg.Job.InvitationExpirySpec,
		job.NewInvitationExpiryJob(invitationService, logger, 30*time.Second),
		logger,
	)
	if err != nil {
		logger.Fatal("Failed to schedule invitation expiry", zap.Error(err))
	}
	scheduler.Start()
	logger.Info("Invitation expiry job scheduled", zap.String("spec", cfg.Job.InvitationExpirySpec))

	r := router.Setup(router.Config{
		DB:          db,
		Redis:       rdb,
		Logger:      logger,
		Metrics:     m,
		Gatherer:    prometheus.DefaultGatherer,
		JWTSecret:   cfg.JWT.Secret,
		BasePath:    cfg.Server.BasePath,
		CORSOrigins: cfg.CORS.AllowedOrigins,
		Retry: handler.RetryPolicy{
			MaxAttempts:     cfg.Retry.MaxAttempts,
			InitialInterval: cfg.Retry.InitialInterval,
			MaxInterval:     cfg.Retry.MaxInterval,
		},
		MatchService:      matchService,
		InvitationService: invitationService,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("Match Service started successfully",
			zap.String("address", srv.Addr),
			zap.String("swagger", fmt.Sprintf("http://localhost:%s/swagger/index.html", cfg.Server.Port)),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	// in-flight jobs finish before the dispatcher drains
	<-scheduler.Stop().Done()
	if err := dispatcher.Close(ctx); err != nil {
		logger.Warn("Notification queue not fully drained", zap.Error(err))
	}

	collector.Stop()
	close(statsDone)
	if rdb != nil {
		_ = rdb.Close()
	}
	if err := database.Close(db); err != nil {
		logger.Error("Failed to close database", zap.Error(err))
	}

	logger.Info("Server exited gracefully")
}

// initLogger initializes the zap logger with the specified level
func initLogger(level string) (*zap.Logger, error) {
	zapLevel, err := zapcore.ParseLevel(level)
	if err != nil {
		zapLevel = zapcore.InfoLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      zapLevel == zapcore.DebugLevel,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return config.Build()
}
