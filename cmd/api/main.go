package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"lexiquiz/internal/adapter/generate"
	"lexiquiz/internal/cache"
	"lexiquiz/internal/config"
	"lexiquiz/internal/database"
	"lexiquiz/internal/domain"
	"lexiquiz/internal/handler"
	"lexiquiz/internal/logger"
	"lexiquiz/internal/middleware"
	"lexiquiz/internal/repository"
	"lexiquiz/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
			zap.String("ip", c.IP()),
		)

		return err
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	ctx := context.Background()

	// Text generator: backend selected once at startup, injected everywhere.
	var generator domain.TextGenerator
	switch cfg.Generation.Source {
	case "googleai":
		appLogger.Info("Initializing GoogleAI generator")
		generator, err = generate.NewGoogleAIGenerator(ctx, cfg.Generation.GoogleAI)
		if err != nil {
			appLogger.Fatal("Failed to create GoogleAI generator", zap.Error(err))
		}
	case "openai":
		appLogger.Info("Initializing OpenAI generator")
		generator, err = generate.NewOpenAIGenerator(cfg.Generation.OpenAI)
		if err != nil {
			appLogger.Fatal("Failed to create OpenAI generator", zap.Error(err))
		}
	default:
		appLogger.Fatal("Unsupported generation source; check generation.source in config",
			zap.String("source", cfg.Generation.Source))
	}

	// Document store: one interface, two interchangeable implementations.
	var store domain.DocumentStore
	switch cfg.Store.Driver {
	case "redis":
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		store = repository.NewRedisDocumentStore(redisClient)
		appLogger.Info("Redis document store initialized", zap.String("address", cfg.Redis.Address))
	case "postgres":
		db, err := database.NewSQLXPostgresDB(cfg.Database.DSN)
		if err != nil {
			appLogger.Fatal("Failed to connect to Postgres", zap.Error(err))
		}
		store = repository.NewPostgresDocumentStore(db)
		appLogger.Info("Postgres document store initialized")
	default:
		appLogger.Fatal("Unsupported store driver; check store.driver in config",
			zap.String("driver", cfg.Store.Driver))
	}

	// Services
	quizService := service.NewQuizService(generator)
	wordService := service.NewWordOfDayService(store, generator, cfg.WordOfDay.CacheTTL)

	// Handlers
	quizHandler := handler.NewQuizHandler(quizService)
	wordHandler := handler.NewWordHandler(wordService)
	healthHandler := handler.NewHealthHandler(store)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
		MaxAge:       300,
	}))
	app.Use(recover.New())

	app.Get("/health", healthHandler.Check)

	apiGroup := app.Group("/api", middleware.Protected(cfg.Auth.JWTSecret))
	apiGroup.Post("/quiz/generate", quizHandler.GenerateQuiz)
	apiGroup.Post("/quiz/generate/bulk", quizHandler.GenerateQuizSet)
	apiGroup.Get("/word-of-day", wordHandler.GetWordOfDay)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
