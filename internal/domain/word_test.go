package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWord_Validate(t *testing.T) {
	tests := []struct {
		name        string
		word        Word
		expectedErr error
	}{
		{
			name:        "valid word",
			word:        Word{Word: "serendipity", Translation: "случайная удача"},
			expectedErr: nil,
		},
		{
			name:        "valid word without translation",
			word:        Word{Word: "ephemeral"},
			expectedErr: nil,
		},
		{
			name:        "empty word",
			word:        Word{Word: "", Translation: "пусто"},
			expectedErr: ErrEmptyWord,
		},
		{
			name:        "blank word",
			word:        Word{Word: "   ", Translation: "пробелы"},
			expectedErr: ErrEmptyWord,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.word.Validate()
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
