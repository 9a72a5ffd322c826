package main

import (
	"bookstore_tgbot/config"
	redisClient "bookstore_tgbot/data/redis"
	"bookstore_tgbot/data/session"
	"bookstore_tgbot/internal/externalApi/storeApi"
	"bookstore_tgbot/internal/mailer"
	"bookstore_tgbot/internal/service/storefrontService"
	"bookstore_tgbot/internal/tgbot"
	"bookstore_tgbot/internal/transport/telegram"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	cfg := config.MustLoad()

	setupLogger(cfg)

	slog.Debug("config", slog.Any("cfg", cfg))

	redisClient := redisClient.MustInitRedis(cfg)
	defer redisClient.Close()

	redisSession := session.NewRedisSession(cfg, redisClient)

	storeClient := storeApi.New(cfg)

	Mailer := mailer.NewMailer(cfg)

	storefront := storefrontService.New(storeClient)

	tgController := telegram.NewController(cfg, storefront, redisSession, Mailer)

	tgBot := tgbot.New(cfg, tgController, redisSession)

	tgBot.Start()
	defer tgBot.Stop()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	<-interrupt
}

func setupLogger(cfg *config.Config) {
	var logLevel slog.Level

	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warning":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(log)
}
