package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Cheptoo21/wtf-grp43-capstone-project-backend/internal/ai"
	"github.com/Cheptoo21/wtf-grp43-capstone-project-backend/internal/amqp"
	"github.com/Cheptoo21/wtf-grp43-capstone-project-backend/internal/auth"
	"github.com/Cheptoo21/wtf-grp43-capstone-project-backend/internal/config"
	apphttp "github.com/Cheptoo21/wtf-grp43-capstone-project-backend/internal/http"
	applog "github.com/Cheptoo21/wtf-grp43-capstone-project-backend/internal/log"
	"github.com/Cheptoo21/wtf-grp43-capstone-project-backend/internal/services"
	"github.com/Cheptoo21/wtf-grp43-capstone-project-backend/internal/storage"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	cfg := config.Load()

	logger := applog.New(applog.Config{Level: cfg.SlogLevel(), Component: applog.ComponentApp})
	applog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", applog.FieldError, err)
		os.Exit(1)
	}

	// Choose data backend (default: sqlite)
	var (
		store interface {
			services.TransactionStore
			services.UserStore
			Close() error
		}
		err error
	)
	switch cfg.DataBackend {
	case "memory":
		store = storage.NewMemoryStore()
		logger.Info("Initialized memory backend")
	default:
		store, err = storage.NewSQLiteRepository(cfg.SQLiteDBPath)
		if err != nil {
			logger.Error("Failed to initialize SQLite repository", applog.FieldError, err, "path", cfg.SQLiteDBPath)
			os.Exit(1)
		}
		logger.Info("Initialized SQLite backend", "path", cfg.SQLiteDBPath)
	}
	defer store.Close()

	// AMQP event publishing is optional
	var events *amqp.Client
	if cfg.AMQPURL != "" {
		events, err = amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Error("Failed to initialize AMQP client", applog.FieldError, err)
			os.Exit(1)
		}
		defer events.Close()
		logger.Info("AMQP event publishing enabled", "exchange", cfg.AMQPExchange, "queue", cfg.AMQPQueue)
	} else {
		logger.Info("AMQP event publishing disabled - no AMQP_URL provided")
	}

	var extractor apphttp.TransactionExtractor
	if cfg.OpenAIAPIKey != "" {
		extractor = ai.NewExtractor(cfg.OpenAIAPIKey, cfg.OpenAIModel)
		logger.Info("AI extraction enabled", "model", cfg.OpenAIModel)
	} else {
		logger.Info("AI extraction disabled - no OPENAI_API_KEY provided")
	}

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)

	srv := apphttp.NewServer(":"+cfg.Port, apphttp.Deps{
		Auth:          services.NewAuthService(store, tokens),
		Transactions:  services.NewTransactionService(store, events, cfg.DefaultCurrency),
		Voice:         services.NewVoiceService(store),
		Extractor:     extractor,
		AllowedOrigin: cfg.AllowedOrigin,
	})

	// Graceful shutdown handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", applog.FieldError, err)
		}
		cancel()
	}()

	logger.Info("Starting voxledger server", "port", cfg.Port, "backend", cfg.DataBackend)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", applog.FieldError, err, "port", cfg.Port)
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("Server stopped gracefully")
}
