package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "examforge/cmd/api/docs"
	"examforge/internal/adapter"
	"examforge/internal/adapter/evaluator"
	"examforge/internal/adapter/llmclient"
	"examforge/internal/adapter/quizgen"
	"examforge/internal/cache"
	"examforge/internal/config"
	"examforge/internal/domain"
	"examforge/internal/handler"
	"examforge/internal/logger"
	"examforge/internal/middleware"
	"examforge/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	fiberSwagger "github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// @title ExamForge API
// @version 1.0
// @description Exam practice API: question generation, answer evaluation and paper style analysis.
// @BasePath /api
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(logger.Config{Level: cfg.Logger.Level, Env: cfg.Logger.Env}); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	ctx := context.Background()

	store := newCacheBackend(cfg, log)
	generator, answerEvaluator := newPracticeAdapters(ctx, cfg, log)

	practiceService := service.NewPracticeService(generator, answerEvaluator, store, cfg.Cache)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		BodyLimit:    cfg.Server.BodyLimit,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(middleware.RequestLogger())

	app.Get("/health", handler.NewHealthHandler(store).Check)
	app.Get("/swagger/*", fiberSwagger.HandlerDefault)

	api := app.Group("/api")
	handler.NewPracticeHandler(practiceService).RegisterRoutes(api)

	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		log.Info("starting server", zap.String("addr", addr))
		if err := app.Listen(addr); err != nil {
			log.Fatal("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
}

// newCacheBackend picks Redis when an address is configured, otherwise the
// in-process cache.
func newCacheBackend(cfg *config.Config, log *zap.Logger) domain.Cache {
	if cfg.Redis.Address == "" {
		log.Info("no redis address configured, using in-process cache")
		return adapter.NewMemoryCacheAdapter()
	}

	client, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		log.Fatal("failed to connect to redis", zap.Error(err))
	}
	log.Info("connected to redis", zap.String("address", cfg.Redis.Address))
	return adapter.NewRedisCacheAdapter(client)
}

// newPracticeAdapters selects the model-backed pipeline when a provider
// credential is configured, and the deterministic fallbacks otherwise.
func newPracticeAdapters(ctx context.Context, cfg *config.Config, log *zap.Logger) (domain.QuestionGenerator, domain.AnswerEvaluator) {
	if !cfg.LLM.Enabled() {
		log.Warn("no model credential configured, using heuristic evaluation and static question generation")
		return quizgen.NewStaticQuestionGenerator(), evaluator.NewHeuristicEvaluator()
	}

	client, err := llmclient.New(ctx, cfg.LLM)
	if err != nil {
		log.Fatal("failed to build model client", zap.Error(err))
	}
	log.Info("model client ready",
		zap.String("provider", cfg.LLM.Provider),
		zap.String("model", cfg.LLM.Model))
	return quizgen.NewLLMQuestionGenerator(client), evaluator.NewLLMEvaluator(client)
}
