package domain

import (
	"errors"
	"strings"
)

// ErrEmptyWord is returned when a record is created or loaded without a word.
var ErrEmptyWord = errors.New("word cannot be empty")

// Word represents a single vocabulary record. The word text doubles as the
// collection key; the JSON field names are the record file format.
type Word struct {
	Word         string `json:"word"`
	Translation  string `json:"translation"`
	PartOfSpeech string `json:"partOfSpeech,omitempty"`
}

// Validate checks the non-empty-word invariant.
func (w Word) Validate() error {
	if strings.TrimSpace(w.Word) == "" {
		return ErrEmptyWord
	}
	return nil
}

// HistoryInfo summarizes the browse history of shown words.
type HistoryInfo struct {
	Total       int
	Position    int
	UniqueWords int
}
