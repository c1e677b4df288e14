package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/portfolio"
	"portfolio-backend/internal/services/health"
	"portfolio-backend/internal/shared/config"
	"portfolio-backend/internal/shared/metrics"
	"portfolio-backend/internal/shared/server/middleware"
	"portfolio-backend/internal/shared/server/respond"
)

const (
	rateGroupDefault = "DEFAULT"
	rateGroupExtract = "EXTRACT"
)

// RouterDeps collects the handlers mounted under /api/v1.
type RouterDeps struct {
	Config           config.Config
	PortfolioHandler *portfolio.Handler
	Health           *health.Service
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	cfg := deps.Config
	if cfg.Env == "dev" || cfg.Env == "local" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.Identity(),
		middleware.RateLimit(middleware.RateLimitConfig{
			DefaultGroup: rateGroupDefault,
			GroupFor:     rateGroupFor,
			Rules: map[string]middleware.RateLimitRule{
				rateGroupExtract: {Rate: cfg.RateLimitRPS, Burst: cfg.RateLimitBurst},
				rateGroupDefault: {Rate: cfg.RateLimitRPS * 4, Burst: cfg.RateLimitBurst * 4},
			},
		}),
	)

	healthSvc := deps.Health
	if healthSvc == nil {
		healthSvc = health.NewService(nil, nil)
	}
	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		status, ok := healthSvc.Status(c.Request.Context())
		if !ok {
			respond.JSON(c, http.StatusServiceUnavailable, status)
			return
		}
		respond.JSON(c, http.StatusOK, status)
	})
	registerMeRoutes(api)
	if deps.PortfolioHandler != nil {
		deps.PortfolioHandler.RegisterRoutes(api)
	}

	return r
}

// rateGroupFor puts extraction work in its own, tighter bucket.
func rateGroupFor(c *gin.Context) string {
	if c.Request.Method == http.MethodPost {
		return rateGroupExtract
	}
	return rateGroupDefault
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
