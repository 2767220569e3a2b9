package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"focusfinance/internal/advice"
	"focusfinance/internal/advice/gemini"
	"focusfinance/internal/amqp"
	"focusfinance/internal/cli"
	"focusfinance/internal/log"
	"focusfinance/internal/store"
	"focusfinance/internal/worker"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger(log.ComponentWorker)

	logger.Info("Starting advice-worker")

	cfg := cli.LoadAndValidateConfig(logger)
	result := cli.InitBackend(context.Background(), logger, cfg)
	defer func() {
		if result.Cleanup != nil {
			if err := result.Cleanup(); err != nil {
				logger.Error("Backend cleanup error", log.FieldError, err)
			}
		}
	}()

	ledgerStore := store.NewLedger(result.Store)
	geminiClient := gemini.NewClient(cfg.GeminiAPIKey, gemini.WithModel(cfg.GeminiModel))
	advisor := advice.NewService(geminiClient, cfg.AdviceTimeout)

	adviceWorker := worker.NewAdviceWorker(ledgerStore, advisor, result.Store, cfg.AdviceRefreshInterval)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	// Periodic refresh keeps advice fresh even without broker events.
	g.Go(func() error {
		return adviceWorker.Run(gctx)
	})

	if result.AMQP != nil {
		g.Go(func() error {
			return result.AMQP.ConsumeLedgerEvents(gctx, func(msg *amqp.LedgerEventMessage) error {
				return adviceWorker.HandleLedgerEvent(gctx, msg)
			})
		})
	} else {
		logger.Info("AMQP disabled, running on periodic refresh only")
	}

	if err := g.Wait(); err != nil && err != context.Canceled {
		logger.Error("Worker stopped with error", log.FieldError, err)
		os.Exit(1)
	}
	logger.Info("Worker shutdown complete")
}
