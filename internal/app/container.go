package app

import (
	"context"
	"log"
	"os"
	"time"

	"devcollab/internal/config"
	"devcollab/internal/database"
	"devcollab/internal/database/migration"
	dbpostgres "devcollab/internal/database/postgres"
	"devcollab/internal/infrastructure/ai"
	"devcollab/internal/infrastructure/cache"
	"devcollab/internal/repository"
	"devcollab/internal/usecase"
)

// Container wires the infrastructure and usecases together. The Gemini
// generator is optional: without an API key the explainer simply runs on
// its deterministic fallback.
type Container struct {
	Config config.Config
	Logger *log.Logger
	DB     database.DB
	Cache  *cache.Redis

	Matches usecase.MatchUsecase
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := migration.Run(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	redisCache := cache.NewRedis(cfg.Redis, logger)

	var generator usecase.TextGenerator
	if cfg.Gemini.APIKey != "" {
		gemini, err := ai.NewGemini(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			logger.Printf("[App] Gemini unavailable, explanations use fallback: %v", err)
		} else {
			generator = gemini
		}
	} else {
		logger.Printf("[App] GEMINI_API_KEY not set, explanations use fallback")
	}

	profileRepo := cache.NewCachedProfileRepository(repository.NewPostgresProfileRepository(db), redisCache)
	matchRepo := repository.NewPostgresMatchRepository(db)
	projectRepo := repository.NewPostgresProjectRepository(db)

	explainer := usecase.NewExplainer(generator, cfg.Gemini.Timeout, logger)
	matches := usecase.NewMatchService(matchRepo, profileRepo, projectRepo, explainer, logger)

	return &Container{
		Config:  cfg,
		Logger:  logger,
		DB:      db,
		Cache:   redisCache,
		Matches: matches,
	}, nil
}

func (c *Container) Close() error {
	if c == nil || c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
