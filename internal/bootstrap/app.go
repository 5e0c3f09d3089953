package bootstrap

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"portfolio-web/internal/portfolio"
	"portfolio-web/internal/services/health"
	"portfolio-web/internal/shared/config"
	"portfolio-web/internal/shared/server"
	"portfolio-web/internal/shared/server/middleware"
	"portfolio-web/internal/shared/storage/object"
	localstore "portfolio-web/internal/shared/storage/object/local"
	s3store "portfolio-web/internal/shared/storage/object/s3"
	"portfolio-web/internal/shared/telemetry"
	"portfolio-web/internal/web"
)

// App holds shared dependencies.
type App struct {
	Config           config.Config
	Router           *gin.Engine
	Store            object.ObjectStore
	PortfolioService *portfolio.Service
	PortfolioHandler *portfolio.Handler
	HealthService    *health.Service
}

// Build prepares dependencies and wires routes.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.MediaRoot) == "" {
		cfg.MediaRoot = "./media"
	}
	if strings.TrimSpace(cfg.MediaStore) == "" {
		cfg.MediaStore = "local"
	}
	ctx := context.Background()

	templates, err := web.LoadTemplates()
	if err != nil {
		return nil, fmt.Errorf("bootstrap: %w", err)
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: %w", err)
	}
	portfolioSvc := portfolio.NewService(store, cfg.ResumeDownloadName)

	app := &App{
		Config:           cfg,
		Store:            store,
		PortfolioService: portfolioSvc,
		PortfolioHandler: portfolio.NewHandler(portfolioSvc),
		HealthService:    health.NewService(portfolioSvc),
	}

	checkResume(ctx, portfolioSvc)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:           cfg,
		Templates:        templates,
		PortfolioHandler: app.PortfolioHandler,
		Health:           app.HealthService,
		Limiter:          middleware.NewRateLimiter(nil),
	})

	return app, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.MediaStore {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix)
	default:
		return localstore.New(cfg.MediaRoot), nil
	}
}

// checkResume logs whether the resume is in place. A missing file is not
// fatal; downloads answer 404 until it appears.
func checkResume(ctx context.Context, svc *portfolio.Service) {
	path := svc.ResumePath()
	if svc.Available(ctx) {
		telemetry.Info("bootstrap.resume_found", map[string]any{"path": path})
		return
	}
	telemetry.Warn("bootstrap.resume_missing", map[string]any{"path": path})
}
