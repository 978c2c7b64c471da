package service

import (
	"fmt"
	"strings"
	"sync"

	"wordlearner/internal/domain"
	"wordlearner/internal/repository"
)

// WordService owns the ordered word collection and is its sole mutator.
// Every mutation is written through to the repository immediately; when the
// write fails the in-memory change is kept and ErrNotSaved is returned so the
// caller knows the change is not durable.
type WordService struct {
	repo repository.WordRepository

	mu    sync.RWMutex
	words []domain.Word
	index map[string]int
}

// NewWordService loads the collection from the repository.
func NewWordService(repo repository.WordRepository) (*WordService, error) {
	words, err := repo.Load()
	if err != nil {
		return nil, err
	}

	s := &WordService{
		repo:  repo,
		words: words,
		index: make(map[string]int, len(words)),
	}
	for i, w := range words {
		s.index[w.Word] = i
	}

	return s, nil
}

// Add appends a new word record and persists the collection.
func (s *WordService) Add(word, translation, partOfSpeech string) (domain.Word, error) {
	record := domain.Word{
		Word:         strings.TrimSpace(word),
		Translation:  strings.TrimSpace(translation),
		PartOfSpeech: strings.TrimSpace(partOfSpeech),
	}
	if err := record.Validate(); err != nil {
		return domain.Word{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.index[record.Word]; ok {
		return domain.Word{}, fmt.Errorf("%w: %q", ErrWordExists, record.Word)
	}

	s.words = append(s.words, record)
	s.index[record.Word] = len(s.words) - 1

	if err := s.persistLocked(); err != nil {
		return record, err
	}
	return record, nil
}

// Edit updates only the supplied fields of an existing record. A nil field
// keeps the stored value.
func (s *WordService) Edit(word string, translation, partOfSpeech *string) (domain.Word, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[word]
	if !ok {
		return domain.Word{}, fmt.Errorf("%w: %q", ErrWordNotFound, word)
	}

	if translation != nil {
		s.words[i].Translation = strings.TrimSpace(*translation)
	}
	if partOfSpeech != nil {
		s.words[i].PartOfSpeech = strings.TrimSpace(*partOfSpeech)
	}

	record := s.words[i]
	if err := s.persistLocked(); err != nil {
		return record, err
	}
	return record, nil
}

// Delete removes the record with the given word.
func (s *WordService) Delete(word string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[word]
	if !ok {
		return fmt.Errorf("%w: %q", ErrWordNotFound, word)
	}

	s.words = append(s.words[:i], s.words[i+1:]...)
	delete(s.index, word)
	for j := i; j < len(s.words); j++ {
		s.index[s.words[j].Word] = j
	}

	return s.persistLocked()
}

// Get returns the record with the exact word key.
func (s *WordService) Get(word string) (domain.Word, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[word]
	if !ok {
		return domain.Word{}, fmt.Errorf("%w: %q", ErrWordNotFound, word)
	}
	return s.words[i], nil
}

// Search returns records whose word or translation contains the query,
// case-insensitively, in collection order. An empty query returns the full
// collection.
func (s *WordService) Search(query string) []domain.Word {
	q := strings.ToLower(strings.TrimSpace(query))

	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := make([]domain.Word, 0)
	for _, w := range s.words {
		if strings.Contains(strings.ToLower(w.Word), q) ||
			strings.Contains(strings.ToLower(w.Translation), q) {
			matches = append(matches, w)
		}
	}
	return matches
}

// All returns a copy of the full collection in order.
func (s *WordService) All() []domain.Word {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Word, len(s.words))
	copy(out, s.words)
	return out
}

// Count returns the collection size.
func (s *WordService) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.words)
}

func (s *WordService) persistLocked() error {
	if err := s.repo.Save(s.words); err != nil {
		return fmt.Errorf("%w: %v", ErrNotSaved, err)
	}
	return nil
}
