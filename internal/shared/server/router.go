package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-scoring/internal/services/health"
	"resume-scoring/internal/shared/config"
	"resume-scoring/internal/shared/metrics"
	"resume-scoring/internal/shared/server/middleware"
	"resume-scoring/internal/shared/server/respond"
)

const (
	healthPath  = "/api/v1/health"
	metricsPath = "/metrics"

	rateGroupDefault = "DEFAULT"
	rateGroupScoring = "SCORING"
)

// RouteRegistrar is implemented by every feature handler.
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// RouterDeps carries what NewRouter needs to mount routes.
type RouterDeps struct {
	Config   config.Config
	Handlers []RouteRegistrar
	Health   *health.Service
	// Limiter is shared across routers built in the same process. Nil uses a fresh one.
	Limiter *middleware.RateLimiter
}

var scoringRoutes = map[string]bool{
	"/api/v1/assets/:id/scan":           true,
	"/api/v1/assets/:id/duplicate-scan": true,
	"/api/v1/assets/:id/ats":            true,
	"/api/v1/assets/:id/critique":       true,
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	cfg := deps.Config

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.Auth(healthPath, metricsPath),
		middleware.RateLimit(middleware.RateLimitConfig{
			DefaultGroup: rateGroupDefault,
			GroupFor:     rateGroupFor,
			Limiter:      deps.Limiter,
			Rules:        rateLimitRules(cfg),
		}),
	)

	r.GET(metricsPath, metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", healthHandler(deps.Health))
	registerMeRoutes(api)
	for _, h := range deps.Handlers {
		if h != nil {
			h.RegisterRoutes(api)
		}
	}

	return r
}

func healthHandler(svc *health.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if svc == nil {
			respond.JSON(c, http.StatusOK, gin.H{"ok": true})
			return
		}
		ok, checks := svc.Status(c.Request.Context())
		status := http.StatusOK
		if !ok {
			status = http.StatusServiceUnavailable
		}
		respond.JSON(c, status, gin.H{"ok": ok, "checks": checks})
	}
}

func rateGroupFor(c *gin.Context) string {
	if scoringRoutes[c.FullPath()] {
		return rateGroupScoring
	}
	return rateGroupDefault
}

// rateLimitRules applies the configured limit to scoring routes and a looser
// one to plain reads and writes.
func rateLimitRules(cfg config.Config) map[string]middleware.RateLimitRule {
	return map[string]middleware.RateLimitRule{
		rateGroupScoring: {Rate: cfg.RateLimitRPS, Burst: cfg.RateLimitBurst},
		rateGroupDefault: {Rate: cfg.RateLimitRPS * 4, Burst: cfg.RateLimitBurst * 2},
	}
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
