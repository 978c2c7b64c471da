package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		envValue     string
		expected     string
	}{
		{
			name:         "env variable set",
			key:          "TEST_KEY",
			defaultValue: "default",
			envValue:     "custom",
			expected:     "custom",
		},
		{
			name:         "env variable empty",
			key:          "TEST_KEY_EMPTY",
			defaultValue: "default",
			envValue:     "",
			expected:     "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.envValue)

			result := getEnv(tt.key, tt.defaultValue)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Setenv("BOT_TOKEN", "test_token")
	t.Setenv("OWNER_ID", "123456789")
	t.Setenv("WORDS_FILE", "")
	t.Setenv("SETTINGS_FILE", "")
	t.Setenv("DEEPSEEK_API_KEY", "sk-test")
	t.Setenv("DEEPSEEK_BASE_URL", "")

	cfg, err := Load()

	assert.NoError(t, err)
	assert.NotNil(t, cfg)
	assert.Equal(t, "test_token", cfg.BotToken)
	assert.Equal(t, int64(123456789), cfg.OwnerID)
	assert.Equal(t, "words.json", cfg.WordsFile)
	assert.Equal(t, "config.json", cfg.SettingsFile)
	assert.Equal(t, "sk-test", cfg.Assist.APIKey)
	assert.Equal(t, "", cfg.Assist.BaseURL)
}

func TestLoad_FilePathsFromEnv(t *testing.T) {
	t.Setenv("BOT_TOKEN", "test_token")
	t.Setenv("OWNER_ID", "42")
	t.Setenv("WORDS_FILE", "/data/my-words.json")
	t.Setenv("SETTINGS_FILE", "/data/my-config.json")

	cfg, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, "/data/my-words.json", cfg.WordsFile)
	assert.Equal(t, "/data/my-config.json", cfg.SettingsFile)
}

func TestLoad_MissingBotToken(t *testing.T) {
	t.Setenv("BOT_TOKEN", "")
	t.Setenv("OWNER_ID", "42")

	cfg, err := Load()

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "BOT_TOKEN")
}

func TestLoad_MissingOwnerID(t *testing.T) {
	t.Setenv("BOT_TOKEN", "test_token")
	t.Setenv("OWNER_ID", "")

	cfg, err := Load()

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "OWNER_ID")
}

func TestLoad_InvalidOwnerID(t *testing.T) {
	t.Setenv("BOT_TOKEN", "test_token")
	t.Setenv("OWNER_ID", "not-a-number")

	cfg, err := Load()

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "OWNER_ID")
}
