package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/thebeat-edu/beat-go-api/internal/config"
	"github.com/thebeat-edu/beat-go-api/internal/database"
	"github.com/thebeat-edu/beat-go-api/internal/handler"
	"github.com/thebeat-edu/beat-go-api/internal/middleware"
	"github.com/thebeat-edu/beat-go-api/internal/persistence"
	"github.com/thebeat-edu/beat-go-api/internal/router"
	"github.com/thebeat-edu/beat-go-api/internal/service"
	"github.com/thebeat-edu/beat-go-api/internal/socratic"
	"github.com/thebeat-edu/beat-go-api/internal/store"
	"github.com/thebeat-edu/beat-go-api/pkg/ai"
	"github.com/thebeat-edu/beat-go-api/pkg/infactory"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	persister, redisClient, err := buildPersister(cfg, logger)
	if err != nil {
		log.Fatalf("failed to initialise persistence: %v", err)
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	appStore := store.New(persister, logger)
	loadCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := appStore.Load(loadCtx); err != nil {
		log.Fatalf("failed to load state snapshot: %v", err)
	}
	cancel()

	articleClient, err := infactory.New(infactory.Config{
		BaseURL: cfg.ArticleAPIBase,
		APIKey:  cfg.ArticleAPIKey,
		Logger:  logger,
	})
	if err != nil {
		log.Fatalf("failed to create archive client: %v", err)
	}

	var generator ai.QuestionGenerator
	if cfg.OpenAIAPIKey != "" {
		openaiGenerator, err := ai.NewOpenAIGenerator(ai.OpenAIConfig{
			APIKey: cfg.OpenAIAPIKey,
			Model:  cfg.OpenAIModel,
			Logger: logger,
		})
		if err != nil {
			log.Fatalf("failed to create question generator: %v", err)
		}
		generator = openaiGenerator
	}

	validate := validator.New(validator.WithRequiredStructEnabled())

	classroomService := service.NewClassroomService(appStore, validate, logger)
	researchService := service.NewResearchService(appStore, validate, logger)
	writingService := service.NewWritingService(appStore, validate, logger)
	activityService := service.NewActivityService(appStore, validate, logger)
	demoService := service.NewDemoService(appStore, validate, logger)
	sessionService := service.NewSessionService(appStore, validate, logger)
	articleService := service.NewArticleService(articleClient, appStore, redisClient, cfg.ArticleCacheTTL, validate, logger)
	socraticService := service.NewSocraticService(appStore, socratic.NewPicker(), generator, validate, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		ClassroomHandler: handler.NewClassroomHandler(classroomService, logger),
		ResearchHandler:  handler.NewResearchHandler(researchService, logger),
		WritingHandler:   handler.NewWritingHandler(writingService, logger),
		ActivityHandler:  handler.NewActivityHandler(activityService, logger),
		DemoHandler:      handler.NewDemoHandler(demoService, logger),
		SessionHandler:   handler.NewSessionHandler(sessionService, logger),
		ArticleHandler:   handler.NewArticleHandler(articleService, logger),
		SocraticHandler:  handler.NewSocraticHandler(socraticService, logger),
		InfactoryProxy:   handler.InfactoryProxy(cfg.ArticleAPIBase, cfg.ArticleAPIKey, logger),
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

// buildPersister prefers Redis; the file persister is the single-node
// fallback for environments without one.
func buildPersister(cfg config.Config, logger zerolog.Logger) (persistence.Persister, *redis.Client, error) {
	if cfg.RedisURL != "" {
		client, err := database.ConnectRedis(cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		persister, err := persistence.NewRedisPersister(client, cfg.SnapshotKey)
		if err != nil {
			return nil, nil, err
		}
		logger.Info().Msg("using redis snapshot persistence")
		return persister, client, nil
	}

	filePersister, err := persistence.NewFilePersister(cfg.SnapshotFile)
	if err != nil {
		return nil, nil, err
	}
	logger.Info().Str("path", cfg.SnapshotFile).Msg("using file snapshot persistence")
	return filePersister, nil, nil
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
