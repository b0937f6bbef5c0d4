package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"homework_status_bot/internal/app"
	"homework_status_bot/internal/infra/config"
	"homework_status_bot/internal/infra/logger"
	"homework_status_bot/internal/infra/practicum"
	"homework_status_bot/internal/infra/scheduler"
	itelegram "homework_status_bot/internal/infra/telegram"

	"gopkg.in/telebot.v3"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// The one legitimate fatal exit path: missing or invalid credentials.
		logger.Log.Fatalf("FATAL: Could not load application configuration: %v", err)
	}

	logger.Init(cfg)
	log := logger.Get()
	log.Infof("Configuration loaded. PollInterval: %s, LogLevel: %s, Environment: %s, Chat ID: %d",
		cfg.PollInterval, cfg.LogLevel, cfg.Environment, cfg.TelegramChatID)

	// Initialize Telegram Bot. No update poller is started: the bot only
	// sends, it never handles inbound messages.
	pref := telebot.Settings{
		Token: cfg.TelegramToken,
		OnError: func(err error, c telebot.Context) { // Global error handler
			log.Errorf("telebot: %v", err)
		},
	}
	bot, err := telebot.NewBot(pref)
	if err != nil {
		log.Fatalf("FATAL: Could not create Telegram bot: %v", err)
	}
	telegramClient := itelegram.NewTelebotAdapter(bot)
	log.Info("Telegram client initialized.")

	apiClient := practicum.NewClient(cfg.PracticumEndpoint, cfg.PracticumToken)
	log.Info("Practicum API client initialized.")

	stats := app.NewStats()
	poller := app.NewPollerService(apiClient, telegramClient, cfg.TelegramChatID, cfg.PollInterval, stats, log)

	digest := scheduler.NewDigestScheduler(stats, telegramClient, cfg.TelegramChatID, cfg.CronSpecDailyDigest, log)
	if err := digest.Start(); err != nil {
		log.Fatalf("FATAL: Could not start digest scheduler: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	go poller.Run(ctx)
	log.Info("Application setup complete. Poller and digest scheduler are running.")

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit // Block until a signal is received

	log.Info("Shutting down application...")
	cancel()
	digest.Stop()
	log.Info("Application shut down gracefully.")
}
