// voxledger-worker consumes transaction events and writes an audit
// log entry for each one. It is a separate process so the API server
// never blocks on the broker.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/Cheptoo21/wtf-grp43-capstone-project-backend/internal/amqp"
	"github.com/Cheptoo21/wtf-grp43-capstone-project-backend/internal/config"
	applog "github.com/Cheptoo21/wtf-grp43-capstone-project-backend/internal/log"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	cfg := config.Load()

	logger := applog.New(applog.Config{Level: cfg.SlogLevel(), Component: applog.ComponentWorker})
	applog.SetDefault(logger)

	logger.Info("Starting voxledger-worker")

	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", applog.FieldError, err)
		os.Exit(1)
	}
	if cfg.AMQPURL == "" {
		logger.Error("AMQP_URL is required for the worker")
		os.Exit(1)
	}

	client, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		logger.Error("Failed to initialize AMQP client", applog.FieldError, err)
		os.Exit(1)
	}
	defer client.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return client.ConsumeTransactionEvents(ctx, func(evt *amqp.TransactionEvent) error {
			logger.Info("Transaction event",
				applog.FieldAction, evt.Action,
				applog.FieldTransactionID, evt.TransactionID,
				applog.FieldUserID, evt.UserID,
				applog.FieldTransactionType, evt.Type,
				applog.FieldItem, evt.Item,
				applog.FieldAmount, evt.Amount,
				applog.FieldCurrency, evt.Currency)
			return nil
		})
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Worker stopped with error", applog.FieldError, err)
		os.Exit(1)
	}
	logger.Info("Worker stopped gracefully")
}
