package jsonfile

import (
	"errors"
	"fmt"
	"os"

	"wordlearner/internal/domain"
	"wordlearner/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// SettingsRepo implements repository.SettingsRepository on a JSON file.
// Keys absent from the file keep their default values.
type SettingsRepo struct {
	path     string
	validate *validator.Validate
}

// NewSettingsRepo creates a settings repository backed by the file at path.
func NewSettingsRepo(path string) *SettingsRepo {
	return &SettingsRepo{
		path:     path,
		validate: validator.New(),
	}
}

// Load reads the settings, merging the file over the defaults. A missing
// file yields the defaults; a file that cannot be decoded or fails
// validation yields repository.ErrCorruptData.
func (r *SettingsRepo) Load() (domain.Settings, error) {
	defaults := domain.DefaultSettings()

	v := viper.New()
	v.SetDefault("display_interval", defaults.DisplayInterval)
	v.SetDefault("display_mode", string(defaults.DisplayMode))
	v.SetDefault("show_chinese", defaults.ShowTranslation)
	v.SetConfigFile(r.path)
	v.SetConfigType("json")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || os.IsNotExist(err) {
			return defaults, nil
		}
		return domain.Settings{}, fmt.Errorf("%w: %v", repository.ErrCorruptData, err)
	}

	var settings domain.Settings
	if err := v.Unmarshal(&settings); err != nil {
		return domain.Settings{}, fmt.Errorf("%w: %v", repository.ErrCorruptData, err)
	}

	if err := r.validate.Struct(settings); err != nil {
		return domain.Settings{}, fmt.Errorf("%w: %v", repository.ErrCorruptData, err)
	}

	return settings, nil
}

// Save validates and persists the settings immediately.
func (r *SettingsRepo) Save(settings domain.Settings) error {
	if err := r.validate.Struct(settings); err != nil {
		return fmt.Errorf("validating settings: %w", err)
	}

	v := viper.New()
	v.Set("display_interval", settings.DisplayInterval)
	v.Set("display_mode", string(settings.DisplayMode))
	v.Set("show_chinese", settings.ShowTranslation)
	v.SetConfigType("json")

	if err := v.WriteConfigAs(r.path); err != nil {
		return fmt.Errorf("writing settings file: %w", err)
	}

	return nil
}
