package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	BotToken     string
	OwnerID      int64
	WordsFile    string
	SettingsFile string
	Assist       AssistConfig
}

// AssistConfig holds the chat API credentials. An empty APIKey disables the
// assistant features.
type AssistConfig struct {
	APIKey  string
	BaseURL string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// .env is optional, real environment variables win anyway
	_ = godotenv.Load()

	cfg := &Config{
		BotToken:     os.Getenv("BOT_TOKEN"),
		WordsFile:    getEnv("WORDS_FILE", "words.json"),
		SettingsFile: getEnv("SETTINGS_FILE", "config.json"),
		Assist: AssistConfig{
			APIKey:  os.Getenv("DEEPSEEK_API_KEY"),
			BaseURL: os.Getenv("DEEPSEEK_BASE_URL"),
		},
	}

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}

	rawOwnerID := os.Getenv("OWNER_ID")
	if rawOwnerID == "" {
		return nil, fmt.Errorf("OWNER_ID is required")
	}
	ownerID, err := strconv.ParseInt(rawOwnerID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("OWNER_ID must be a numeric Telegram ID: %w", err)
	}
	cfg.OwnerID = ownerID

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
