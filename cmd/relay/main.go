package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hustlex/internal/config"
	"hustlex/internal/logger"
	"hustlex/internal/notifier"
	"hustlex/internal/service"
	"hustlex/internal/webhook"

	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadRelay()

	log, err := logger.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("Starting HustleX submission relay", zap.String("addr", cfg.Addr))

	// Missing secrets are reported per request, not at startup
	var relayer webhook.Relayer
	if cfg.Ready() {
		poster, err := notifier.NewTelegramPoster(cfg.BotToken, cfg.ChannelID, cfg.APIURL)
		if err != nil {
			log.Fatal("Failed to create Telegram poster", zap.Error(err))
		}
		relayer = service.NewRelayService(poster, log)
	} else {
		log.Warn("BOT_TOKEN or CHANNEL_ID not set, submissions will be rejected")
	}

	h := webhook.NewHandler(cfg, relayer, log)
	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           webhook.NewRouter(h, log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)

	<-signalChan
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("HTTP server shutdown failed", zap.Error(err))
	}
	log.Info("Server exited")
}
