package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"match-service/internal/database"
	"match-service/internal/handler"
	"match-service/internal/metrics"
	"match-service/internal/middleware"
	"match-service/internal/service"
)

const serviceName = "match-service"

// Config holds router configuration
type Config struct {
	DB     *gorm.DB
	Redis  *redis.Client
	Logger *zap.Logger

	Metrics *metrics.Metrics
	// Gatherer backs /metrics; nil means the default registry
	Gatherer prometheus.Gatherer

	JWTSecret   string
	BasePath    string
	CORSOrigins []string
	Retry       handler.RetryPolicy

	MatchService      service.MatchService
	InvitationService service.InvitationService
}

// Setup sets up the router with all routes
func Setup(cfg Config) *gin.Engine {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.Metrics(cfg.Metrics))

	metricsHandler := promhttp.Handler()
	if cfg.Gatherer != nil {
		metricsHandler = promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{})
	}

	// Probes and scrape endpoints answer on the root and under the base path
	probes := []*gin.RouterGroup{&r.RouterGroup}
	if cfg.BasePath != "" && cfg.BasePath != "/" {
		probes = append(probes, r.Group(cfg.BasePath))
	}
	for _, g := range probes {
		g.GET("/metrics", gin.WrapH(metricsHandler))
		g.GET("/health", health)
		g.GET("/ready", ready(cfg))
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	matchHandler := handler.NewMatchHandler(cfg.MatchService, cfg.Retry, cfg.Logger, cfg.Metrics)
	invitationHandler := handler.NewInvitationHandler(cfg.InvitationService, cfg.Retry, cfg.Logger, cfg.Metrics)

	api := r.Group(cfg.BasePath)
	api.Use(middleware.Auth(cfg.JWTSecret))

	// ============================================================
	// Match routes
	// ============================================================
	matches := api.Group("/matches")
	{
		matches.POST("", matchHandler.CreateMatch)
		matches.GET("/:matchId", matchHandler.GetMatch)
		matches.GET("/:matchId/participants", matchHandler.ListParticipants)

		matches.POST("/:matchId/publish", matchHandler.PublishMatch)
		matches.POST("/:matchId/start", matchHandler.StartMatch)
		matches.POST("/:matchId/finish", matchHandler.FinishMatch)
		matches.POST("/:matchId/cancel", matchHandler.CancelMatch)

		matches.POST("/:matchId/join", matchHandler.JoinMatch)
		matches.DELETE("/:matchId/leave", matchHandler.LeaveMatch)

		matches.POST("/:matchId/invitations", invitationHandler.CreateInvitation)
	}

	// ============================================================
	// Invitation routes
	// ============================================================
	invitations := api.Group("/invitations")
	{
		invitations.GET("/me", invitationHandler.ListMyInvitations)
		invitations.POST("/:invitationId/respond", invitationHandler.RespondToInvitation)
	}

	return r
}

func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": serviceName})
}

// ready fails while the database is unreachable. Redis only feeds a
// notification sink, so it is reported but never blocks readiness.
func ready(cfg Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		if err := database.Ping(ctx, cfg.DB); err != nil {
			cfg.Logger.Warn("Readiness check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "service": serviceName})
			return
		}

		redisStatus := "disabled"
		if cfg.Redis != nil {
			redisStatus = "ok"
			if err := cfg.Redis.Ping(ctx).Err(); err != nil {
				redisStatus = "unreachable"
			}
		}

		c.JSON(http.StatusOK, gin.H{"status": "ready", "service": serviceName, "redis": redisStatus})
	}
}
