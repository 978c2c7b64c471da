package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wordlearner/internal/assist"
	"wordlearner/internal/config"
	"wordlearner/internal/domain"
	"wordlearner/internal/drill"
	"wordlearner/internal/handler"
	"wordlearner/internal/middleware"
	"wordlearner/internal/repository/jsonfile"
	"wordlearner/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Word Learner Bot")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	logger.Info("Configuration loaded successfully",
		zap.String("words_file", cfg.WordsFile),
		zap.String("settings_file", cfg.SettingsFile),
	)

	// Initialize repositories
	wordRepo := jsonfile.NewWordRepo(cfg.WordsFile)
	settingsRepo := jsonfile.NewSettingsRepo(cfg.SettingsFile)

	// Load the collection; a corrupt words file must be fixed by hand,
	// starting fresh would silently lose it
	wordService, err := service.NewWordService(wordRepo)
	if err != nil {
		logger.Fatal("Failed to load words file", zap.Error(err))
	}

	logger.Info("Word collection loaded", zap.Int("words", wordService.Count()))

	// Broken settings are replaceable, fall back to defaults
	settings, err := settingsRepo.Load()
	if err != nil {
		logger.Warn("Failed to load settings, using defaults", zap.Error(err))
		settings = domain.DefaultSettings()
	}

	settingsService := service.NewSettingsService(settingsRepo, settings)
	sequenceService := service.NewSequenceService(wordService, settings.DisplayMode)

	// Assist features stay hidden when no API key is set
	assistClient := assist.NewClient(cfg.Assist.APIKey, cfg.Assist.BaseURL)
	assistService := service.NewAssistService(assistClient)
	logger.Info("Assist client initialized", zap.Bool("configured", assistService.Configured()))

	// Initialize Telegram bot
	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.BotToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	logger.Info("Telegram bot initialized")

	bot.Use(middleware.OwnerOnly(cfg.OwnerID, logger))

	// Initialize handler
	runner := drill.NewRunner(sequenceService, logger)
	h := handler.NewHandler(bot, wordService, sequenceService, settingsService, assistService, runner, logger)
	h.RegisterHandlers()

	logger.Info("Handlers registered")

	// Start bot in background
	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping bot...")

	// Graceful shutdown
	runner.Stop()
	bot.Stop()

	logger.Info("Bot stopped gracefully")
}
