package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"focusfinance/internal/advice"
	"focusfinance/internal/advice/gemini"
	"focusfinance/internal/cli"
	apphttp "focusfinance/internal/http"
	"focusfinance/internal/log"
	"focusfinance/internal/services"
	"focusfinance/internal/store"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger(log.ComponentApp)

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
	profileStore := store.NewProfileStore(result.Store)
	themeStore := store.NewThemeStore(result.Store)

	var publisher services.EventPublisher
	if result.AMQP != nil {
		publisher = result.AMQP
	}
	ledgerService := services.NewLedgerService(ledgerStore, publisher)

	geminiClient := gemini.NewClient(cfg.GeminiAPIKey, gemini.WithModel(cfg.GeminiModel))
	advisor := advice.NewService(geminiClient, cfg.AdviceTimeout)

	srv := apphttp.NewServer(":"+cfg.Port, ledgerService, profileStore, themeStore, advisor)

	// Configure server timeouts and limits
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 30 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

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
			logger.Error("Server shutdown error", log.FieldError, err)
		}
		cancel()
	}()

	logger.Info("Starting focusfinance server", "port", cfg.Port, "backend", cfg.StorageBackend)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", log.FieldError, err, "port", cfg.Port)
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("Server stopped gracefully")
}
