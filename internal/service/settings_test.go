package service

import (
	"fmt"
	"testing"

	"wordlearner/internal/domain"
	"wordlearner/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSettingsService_Get(t *testing.T) {
	mockRepo := new(testutil.MockSettingsRepository)
	service := NewSettingsService(mockRepo, domain.DefaultSettings())

	assert.Equal(t, domain.DefaultSettings(), service.Get())
}

func TestSettingsService_SetInterval(t *testing.T) {
	tests := []struct {
		name          string
		seconds       int
		expectedError bool
	}{
		{
			name:    "valid interval",
			seconds: 10,
		},
		{
			name:          "zero interval",
			seconds:       0,
			expectedError: true,
		},
		{
			name:          "negative interval",
			seconds:       -5,
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockSettingsRepository)
			service := NewSettingsService(mockRepo, domain.DefaultSettings())

			if !tt.expectedError {
				mockRepo.On("Save", domain.Settings{
					DisplayInterval: tt.seconds,
					DisplayMode:     domain.ModeRandom,
					ShowTranslation: true,
				}).Return(nil).Once()
			}

			err := service.SetInterval(tt.seconds)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Equal(t, 3, service.Get().DisplayInterval)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.seconds, service.Get().DisplayInterval)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestSettingsService_SetMode(t *testing.T) {
	mockRepo := new(testutil.MockSettingsRepository)
	service := NewSettingsService(mockRepo, domain.DefaultSettings())
	mockRepo.On("Save", mock.Anything).Return(nil).Once()

	err := service.SetMode(domain.ModeSequential)

	assert.NoError(t, err)
	assert.Equal(t, domain.ModeSequential, service.Get().DisplayMode)
	mockRepo.AssertExpectations(t)
}

func TestSettingsService_SetMode_Invalid(t *testing.T) {
	mockRepo := new(testutil.MockSettingsRepository)
	service := NewSettingsService(mockRepo, domain.DefaultSettings())

	err := service.SetMode(domain.Mode("shuffled"))

	assert.Error(t, err)
	assert.Equal(t, domain.ModeRandom, service.Get().DisplayMode)
	mockRepo.AssertExpectations(t)
}

func TestSettingsService_ToggleTranslation(t *testing.T) {
	mockRepo := new(testutil.MockSettingsRepository)
	service := NewSettingsService(mockRepo, domain.DefaultSettings())
	mockRepo.On("Save", mock.Anything).Return(nil).Twice()

	show, err := service.ToggleTranslation()
	assert.NoError(t, err)
	assert.False(t, show)

	show, err = service.ToggleTranslation()
	assert.NoError(t, err)
	assert.True(t, show)

	mockRepo.AssertExpectations(t)
}

func TestSettingsService_ToggleTranslation_SaveFails(t *testing.T) {
	mockRepo := new(testutil.MockSettingsRepository)
	service := NewSettingsService(mockRepo, domain.DefaultSettings())
	mockRepo.On("Save", mock.Anything).Return(fmt.Errorf("disk full"))

	show, err := service.ToggleTranslation()

	assert.ErrorIs(t, err, ErrNotSaved)
	assert.False(t, show)
	// The in-memory change is kept.
	assert.False(t, service.Get().ShowTranslation)
}
