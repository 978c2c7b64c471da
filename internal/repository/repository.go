package repository

import (
	"errors"

	"wordlearner/internal/domain"
)

// ErrCorruptData is returned when a data file exists but cannot be decoded
// into a valid collection.
var ErrCorruptData = errors.New("data file is corrupt")

// WordRepository defines word collection persistence. Load returns the full
// ordered collection; Save replaces the stored collection atomically.
type WordRepository interface {
	Load() ([]domain.Word, error)
	Save(words []domain.Word) error
}

// SettingsRepository defines settings persistence.
type SettingsRepository interface {
	Load() (domain.Settings, error)
	Save(settings domain.Settings) error
}
