package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/portfolio"
	"portfolio-backend/internal/services/health"
	"portfolio-backend/internal/shared/config"
	"portfolio-backend/internal/shared/server"
	"portfolio-backend/internal/shared/storage/db"
	"portfolio-backend/internal/shared/telemetry"
	"portfolio-backend/linkedin"
)

// App holds shared dependencies.
type App struct {
	Config           config.Config
	Router           *gin.Engine
	DB               *sql.DB
	Extractor        *linkedin.Extractor
	PortfolioRepo    portfolio.Repo
	PortfolioService *portfolio.Service
	PortfolioHandler *portfolio.Handler
}

// Build prepares dependencies and wires routes.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	extractor, err := BuildExtractor(cfg.VocabularyFile)
	if err != nil {
		return nil, err
	}

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var repo portfolio.Repo
	if sqlDB != nil {
		repo = &portfolio.PGRepo{DB: sqlDB}
	} else {
		repo = portfolio.NewMemoryRepo()
	}
	svc := portfolio.NewService(repo, extractor, cfg.MaxTextBytes)

	app := &App{
		Config:           cfg,
		DB:               sqlDB,
		Extractor:        extractor,
		PortfolioRepo:    repo,
		PortfolioService: svc,
		PortfolioHandler: portfolio.NewHandler(svc),
	}
	app.Router = server.NewRouter(server.RouterDeps{
		Config:           cfg,
		PortfolioHandler: app.PortfolioHandler,
		Health:           health.NewService(sqlDB, extractor.Strategies()),
	})
	return app, nil
}

// BuildExtractor loads an optional vocabulary file over the embedded tables.
func BuildExtractor(path string) (*linkedin.Extractor, error) {
	if strings.TrimSpace(path) == "" {
		return linkedin.NewExtractor(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open vocabulary: %w", err)
	}
	defer f.Close()

	vocab, err := linkedin.LoadVocabulary(f)
	if err != nil {
		return nil, fmt.Errorf("load vocabulary %s: %w", path, err)
	}
	ex := linkedin.NewExtractor(linkedin.WithVocabulary(vocab))
	telemetry.Info("bootstrap.vocabulary", map[string]any{
		"path":       path,
		"strategies": ex.Strategies(),
	})
	return ex, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			telemetry.Info("bootstrap.memory", map[string]any{"reason": "DATABASE_URL empty"})
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			telemetry.Error("bootstrap.memory", map[string]any{"reason": "database connect failed", "error": err.Error()})
			return nil, nil
		}
		return nil, err
	}
	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
