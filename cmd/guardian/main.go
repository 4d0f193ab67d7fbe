package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/Damian-oliveiro/Comp-Arch-Guardian/internal/alert"
	"github.com/Damian-oliveiro/Comp-Arch-Guardian/internal/config"
	"github.com/Damian-oliveiro/Comp-Arch-Guardian/internal/geo"
	"github.com/Damian-oliveiro/Comp-Arch-Guardian/internal/server"
	"github.com/Damian-oliveiro/Comp-Arch-Guardian/internal/telegram"
)

func main() {
	// Secrets may live in a local .env file during development.
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.LoadConfig(config.GetConfigPath())
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Refusing to start: %v", err)
	}

	// Setup logger
	logger := logrus.New()
	if cfg.Logging.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{})
	}
	logger.SetOutput(os.Stdout)

	// Set log level
	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		logger.Warnf("Invalid log level '%s', defaulting to 'info'", cfg.Logging.Level)
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	// Wire the pipeline: scan -> location -> address -> Telegram.
	locator := geo.NewLocator(logger, cfg.Google.GeolocationURL, cfg.Google.APIKey)
	geocoder := geo.NewGeocoder(logger, cfg.Google.GeocodeURL, cfg.Google.APIKey)
	notifier := telegram.NewSender(logger, cfg.Telegram.APIBaseURL, cfg.Telegram.BotToken, cfg.Telegram.ChatID)
	service := alert.NewService(locator, geocoder, notifier, logger)
	handler := server.NewHandler(service, logger)

	srv := server.NewServer(server.Config{
		Host: cfg.Server.Host,
		Port: cfg.Server.Port,
	}, handler.Router(), logger)

	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Stop(ctx); err != nil {
		logger.Errorf("Forced shutdown: %v", err)
	}
}
