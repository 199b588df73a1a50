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
	"hustlex/internal/handler"
	"hustlex/internal/i18n"
	"hustlex/internal/logger"
	"hustlex/internal/middleware"
	"hustlex/internal/notifier"
	"hustlex/internal/repository/local"
	"hustlex/internal/service"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("Starting HustleX profile assistant", zap.String("data_dir", cfg.DataDir))

	if cfg.DataDir == "" {
		log.Warn("DATA_DIR is empty, profiles are kept in memory only")
	} else if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		log.Fatal("Failed to create data directory", zap.Error(err))
	}

	resolver, err := i18n.NewResolver()
	if err != nil {
		log.Fatal("Failed to load locales", zap.Error(err))
	}

	// Initialize Telegram bot
	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.BotToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
		OnError: func(err error, c tele.Context) {
			log.Error("Unhandled bot error", zap.Error(err))
		},
	})
	if err != nil {
		log.Fatal("Failed to create bot", zap.Error(err))
	}

	log.Info("Telegram bot initialized", zap.String("username", bot.Me.Username))

	// Job posting shares the bot token and posts to CHANNEL_ID
	var publisher handler.JobPublisher
	if cfg.ChannelID != "" {
		poster, err := notifier.NewTelegramPoster(cfg.BotToken, cfg.ChannelID, "")
		if err != nil {
			log.Fatal("Failed to create Telegram poster", zap.Error(err))
		}
		publisher = service.NewRelayService(poster, log)
	} else {
		log.Warn("CHANNEL_ID not set, /postjob is disabled")
	}

	// Initialize handler
	h := handler.NewHandler(
		bot,
		resolver,
		service.NewInterpreter(),
		local.NewDevices(cfg.DataDir),
		publisher,
		cfg.WebsiteURL,
		log,
	)
	bot.Use(middleware.SessionMiddleware(h, resolver, log))
	h.RegisterHandlers()

	log.Info("Handlers registered")

	var metricsServer *http.Server
	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		metricsServer = &http.Server{Addr: cfg.MetricsAddr, Handler: mux}

		go func() {
			log.Info("Metrics server started", zap.String("addr", cfg.MetricsAddr))
			if err := metricsServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				log.Error("Metrics server failed", zap.Error(err))
			}
		}()
	}

	// Start bot in background
	go func() {
		log.Info("Bot started successfully")
		bot.Start()
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	log.Info("Shutdown signal received, stopping bot...")

	// Graceful shutdown
	bot.Stop()

	if metricsServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := metricsServer.Shutdown(ctx); err != nil {
			log.Error("Metrics server shutdown failed", zap.Error(err))
		}
	}

	log.Info("Bot stopped gracefully")
}
