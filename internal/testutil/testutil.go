package testutil

import (
	"wordlearner/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestWord creates a test word
func NewTestWord(word, translation string) domain.Word {
	return domain.Word{
		Word:        word,
		Translation: translation,
	}
}

// NewTestWords creates a collection of word/translation pairs in order
func NewTestWords(pairs ...string) []domain.Word {
	words := make([]domain.Word, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		words = append(words, domain.Word{Word: pairs[i], Translation: pairs[i+1]})
	}
	return words
}
