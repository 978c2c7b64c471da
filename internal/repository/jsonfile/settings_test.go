package jsonfile

import (
	"os"
	"path/filepath"
	"testing"

	"wordlearner/internal/domain"
	"wordlearner/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsRepo_Load_MissingFile(t *testing.T) {
	repo := NewSettingsRepo(filepath.Join(t.TempDir(), "config.json"))

	settings, err := repo.Load()

	assert.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), settings)
}

func TestSettingsRepo_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{
  "display_interval": 10,
  "display_mode": "sequential",
  "show_chinese": false
}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	repo := NewSettingsRepo(path)
	settings, err := repo.Load()

	assert.NoError(t, err)
	assert.Equal(t, 10, settings.DisplayInterval)
	assert.Equal(t, domain.ModeSequential, settings.DisplayMode)
	assert.False(t, settings.ShowTranslation)
}

func TestSettingsRepo_Load_PartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"display_interval": 7}`), 0o644))

	repo := NewSettingsRepo(path)
	settings, err := repo.Load()

	assert.NoError(t, err)
	assert.Equal(t, 7, settings.DisplayInterval)
	assert.Equal(t, domain.ModeRandom, settings.DisplayMode)
	assert.True(t, settings.ShowTranslation)
}

func TestSettingsRepo_Load_CorruptData(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "invalid json",
			content: `{"display_interval": `,
		},
		{
			name:    "unknown mode",
			content: `{"display_mode": "shuffled"}`,
		},
		{
			name:    "non-positive interval",
			content: `{"display_interval": 0}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			repo := NewSettingsRepo(path)
			_, err := repo.Load()

			assert.ErrorIs(t, err, repository.ErrCorruptData)
		})
	}
}

func TestSettingsRepo_Save(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	repo := NewSettingsRepo(path)

	settings := domain.Settings{
		DisplayInterval: 15,
		DisplayMode:     domain.ModeSequential,
		ShowTranslation: false,
	}

	err := repo.Save(settings)
	assert.NoError(t, err)

	loaded, err := repo.Load()
	assert.NoError(t, err)
	assert.Equal(t, settings, loaded)

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Contains(t, string(data), "show_chinese")
}

func TestSettingsRepo_Save_InvalidSettings(t *testing.T) {
	repo := NewSettingsRepo(filepath.Join(t.TempDir(), "config.json"))

	err := repo.Save(domain.Settings{DisplayInterval: 0, DisplayMode: domain.ModeRandom})

	assert.Error(t, err)
}
