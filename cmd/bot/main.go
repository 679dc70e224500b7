package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"homework_status_bot/internal/app"
	"homework_status_bot/internal/infra/config"
	"homework_status_bot/internal/infra/logger"
	"homework_status_bot/internal/infra/practicum"
	"homework_status_bot/internal/infra/scheduler"
	"homework_status_bot/internal/infra/telegram"
)

func main() {
	// Requests cover changes since process start; the value never advances.
	startedAt := time.Now()

	cfg, err := config.Load()
	if err != nil {
		logger.Log.Fatalf("Could not load application configuration: %v", err)
	}
	logFile, err := logger.Init(cfg)
	if err != nil {
		logger.Log.Fatalf("Could not initialize logger: %v", err)
	}
	defer logFile.Close()

	mainLogger := logger.For("main")
	mainLogger.WithField("environment", cfg.Environment).Info("Configuration loaded")

	schedule, err := scheduler.NewPollSchedule(cfg.PollSchedule, cfg.RetryPeriod)
	if err != nil {
		mainLogger.WithError(err).Fatal("Could not build poll schedule")
	}

	bot, err := telegram.NewBot(cfg.TelegramToken, "")
	if err != nil {
		mainLogger.WithError(err).Fatal("Could not create Telegram bot")
	}
	notifier := app.NewNotifier(telegram.NewTelebotAdapter(bot), logger.For("notifier"))

	client := practicum.NewClient(cfg.Endpoint, cfg.PracticumToken, cfg.RequestTimeout, cfg.FetchAttempts, logger.For("practicum"))

	poller := app.NewPoller(client, notifier, schedule, logger.For("poller"), cfg.TelegramChatID, startedAt)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := poller.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		mainLogger.WithError(err).Error("Polling stopped unexpectedly")
	}
	mainLogger.Info("Application shut down gracefully.")
}
