package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/mcoot/wordhunt/internal/api"
	"github.com/mcoot/wordhunt/internal/factory"
	redisstorage "github.com/mcoot/wordhunt/internal/storage/redis"
)

const defaultDictionaryPath = "data/words.txt"

func main() {
	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(os.Getenv("LOG_LEVEL")),
	}))
	slog.SetDefault(logger)

	// Build factory config from environment
	cfg := factory.Config{
		DictionaryPath: envOr("DICTIONARY_PATH", defaultDictionaryPath),
		DictionaryName: os.Getenv("DICTIONARY_NAME"),
		MinWordLength:  envInt(logger, "MIN_WORD_LENGTH", 0),
		Logger:         logger,
		StorageType:    os.Getenv("STORAGE_TYPE"),
	}

	// Configure Redis if storage type is redis
	if cfg.StorageType == factory.StorageTypeRedis {
		redisURL := os.Getenv("REDIS_URL")
		if redisURL == "" {
			logger.Error("REDIS_URL required when STORAGE_TYPE=redis")
			os.Exit(1)
		}
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = redisURL
		cfg.RedisConfig = &redisCfg

		// With redis, a missing word list falls back to dictionaries saved by an earlier run
		if _, err := os.Stat(cfg.DictionaryPath); err != nil {
			logger.Warn("dictionary file not found, using stored dictionaries",
				slog.String("path", cfg.DictionaryPath))
			cfg.DictionaryPath = ""
		}
	}

	// Create application factory
	ctx := context.Background()
	app, err := factory.New(ctx, cfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	serverConfig := api.DefaultServerConfig()
	serverConfig.Port = envInt(logger, "PORT", serverConfig.Port)
	serverConfig.SolveWorkers = envInt(logger, "SOLVE_WORKERS", serverConfig.SolveWorkers)
	if d := os.Getenv("REQUEST_TIMEOUT"); d != "" {
		if parsed, err := time.ParseDuration(d); err == nil {
			serverConfig.RequestTimeout = parsed
		} else {
			logger.Warn("ignoring invalid REQUEST_TIMEOUT", slog.String("value", d))
		}
	}

	// Create API router
	router := api.NewRouter(api.RouterConfig{
		Logger:            logger,
		Clock:             app.Clock,
		DictionaryService: app.DictionaryService,
		BoardService:      app.BoardService,
		ScoringService:    app.ScoringService,
		GameController:    app.GameController,
		HintService:       app.HintService,
		RequestTimeout:    serverConfig.RequestTimeout,
		SolveWorkers:      serverConfig.SolveWorkers,
	})

	server := api.NewServer(router, serverConfig, logger)

	// Handle graceful shutdown
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started",
		slog.String("addr", server.Addr()),
		slog.Any("dictionaries", app.DictionaryService.Names()),
	)

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(logger *slog.Logger, key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		logger.Warn("ignoring invalid integer", slog.String("key", key), slog.String("value", v))
		return fallback
	}
	return n
}

func logLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}
