package service

import (
	"fmt"
	"sync"

	"wordlearner/internal/domain"
	"wordlearner/internal/repository"
)

// SettingsService owns the learner settings and writes every change through
// to the settings file.
type SettingsService struct {
	repo repository.SettingsRepository

	mu       sync.RWMutex
	settings domain.Settings
}

// NewSettingsService creates the service around already-loaded settings.
func NewSettingsService(repo repository.SettingsRepository, settings domain.Settings) *SettingsService {
	return &SettingsService{repo: repo, settings: settings}
}

// Get returns the current settings.
func (s *SettingsService) Get() domain.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// SetInterval updates the auto-advance interval in seconds.
func (s *SettingsService) SetInterval(seconds int) error {
	if seconds <= 0 {
		return fmt.Errorf("display interval must be positive, got %d", seconds)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings.DisplayInterval = seconds
	return s.persistLocked()
}

// SetMode updates the display mode.
func (s *SettingsService) SetMode(mode domain.Mode) error {
	if !mode.Valid() {
		return fmt.Errorf("unknown display mode %q", mode)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings.DisplayMode = mode
	return s.persistLocked()
}

// ToggleTranslation flips translation visibility and returns the new value.
func (s *SettingsService) ToggleTranslation() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings.ShowTranslation = !s.settings.ShowTranslation
	return s.settings.ShowTranslation, s.persistLocked()
}

func (s *SettingsService) persistLocked() error {
	if err := s.repo.Save(s.settings); err != nil {
		return fmt.Errorf("%w: %v", ErrNotSaved, err)
	}
	return nil
}
