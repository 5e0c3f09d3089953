package server

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-web/internal/portfolio"
	"portfolio-web/internal/services/health"
	"portfolio-web/internal/shared/config"
	"portfolio-web/internal/shared/metrics"
	"portfolio-web/internal/shared/server/middleware"
	"portfolio-web/internal/shared/server/respond"
	"portfolio-web/internal/shared/telemetry"
)

const downloadRateGroup = "DOWNLOAD"

// RouterDeps carries the handlers and settings the router wires together.
type RouterDeps struct {
	Config           config.Config
	Templates        *template.Template
	PortfolioHandler *portfolio.Handler
	Health           *health.Service
	Limiter          *middleware.RateLimiter
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}
	cfg := deps.Config
	r := gin.New()

	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		telemetry.Warn("router.trusted_proxies_invalid", map[string]any{"error": err})
	}
	if deps.Templates != nil {
		r.SetHTMLTemplate(deps.Templates)
	}

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(isPageRoute),
		middleware.SecureHeaders(cfg.SSLEnabled),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.RateLimit(middleware.RateLimitConfig{
			Limiter:  deps.Limiter,
			GroupFor: rateGroupFor,
			IsPage:   isPageRoute,
			Rules: map[string]middleware.RateLimitRule{
				downloadRateGroup: {Rate: cfg.RateLimitDownloadRPS, Burst: cfg.RateLimitDownloadBurst},
			},
		}),
	)

	r.NoRoute(func(c *gin.Context) {
		respond.Text(c, http.StatusNotFound, respond.CodeNotFound, "Not Found")
	})

	if deps.PortfolioHandler != nil {
		deps.PortfolioHandler.RegisterPageRoutes(r)
	}

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, deps.Health.Status(c.Request.Context()))
	})
	if deps.PortfolioHandler != nil {
		deps.PortfolioHandler.RegisterRoutes(api)
	}

	r.GET("/metrics", metrics.Handler())

	return r
}

// isPageRoute reports whether the matched route is browser-facing and should
// answer errors in plain text.
func isPageRoute(c *gin.Context) bool {
	switch c.FullPath() {
	case portfolio.HomePath, portfolio.DownloadPath:
		return true
	}
	return false
}

func rateGroupFor(c *gin.Context) string {
	if c.FullPath() == portfolio.DownloadPath {
		return downloadRateGroup
	}
	return ""
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
