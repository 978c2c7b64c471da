package domain

import "time"

// Mode selects how the drill picks the next word.
type Mode string

const (
	ModeRandom     Mode = "random"
	ModeSequential Mode = "sequential"
)

// Valid reports whether the mode is one of the recognized values.
func (m Mode) Valid() bool {
	return m == ModeRandom || m == ModeSequential
}

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == ModeRandom {
		return ModeSequential
	}
	return ModeRandom
}

// Settings holds the learner-facing configuration persisted in the settings
// file. ShowTranslation keeps the legacy show_chinese key so files written by
// earlier versions stay readable.
type Settings struct {
	DisplayInterval int  `mapstructure:"display_interval" validate:"gt=0"`
	DisplayMode     Mode `mapstructure:"display_mode" validate:"required,oneof=random sequential"`
	ShowTranslation bool `mapstructure:"show_chinese"`
}

// DefaultSettings returns the values used when the settings file is missing
// or a key is absent.
func DefaultSettings() Settings {
	return Settings{
		DisplayInterval: 3,
		DisplayMode:     ModeRandom,
		ShowTranslation: true,
	}
}

// Interval converts the display interval to a duration.
func (s Settings) Interval() time.Duration {
	return time.Duration(s.DisplayInterval) * time.Second
}
