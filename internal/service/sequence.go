package service

import (
	"fmt"
	"math/rand"
	"sync"

	"wordlearner/internal/domain"
)

const (
	// defaultAntiRepeatWindow is how many recently shown words random mode
	// avoids unless SetAntiRepeatWindow overrides it.
	defaultAntiRepeatWindow = 1

	// historyLimit caps the browse history length.
	historyLimit = 100
)

// SequenceService owns the current-position state over the word collection
// and picks the next word to show. It holds keys only, never record content,
// so edits in the collection show through immediately. A position whose word
// was deleted is repaired on the next read; callers never see a gone word.
type SequenceService struct {
	words *WordService

	mu         sync.Mutex
	mode       domain.Mode
	window     int
	currentKey string
	lastIndex  int
	recent     []string

	history []string
	histPos int
}

// NewSequenceService creates a selector over the given collection.
func NewSequenceService(words *WordService, mode domain.Mode) *SequenceService {
	if !mode.Valid() {
		mode = domain.ModeRandom
	}
	return &SequenceService{
		words:   words,
		mode:    mode,
		window:  defaultAntiRepeatWindow,
		histPos: -1,
	}
}

// Mode returns the active display mode.
func (s *SequenceService) Mode() domain.Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// SetMode switches the display mode. The anti-repeat window is reset; the
// current position is kept if its word still exists. No advance happens.
func (s *SequenceService) SetMode(mode domain.Mode) error {
	if !mode.Valid() {
		return fmt.Errorf("unknown display mode %q", mode)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.mode = mode
	s.recent = nil
	return nil
}

// SetAntiRepeatWindow sets how many recently shown words random picks avoid.
// Values below 1 are clamped to 1.
func (s *SequenceService) SetAntiRepeatWindow(n int) {
	if n < 1 {
		n = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.window = n
	if len(s.recent) > n {
		s.recent = s.recent[len(s.recent)-n:]
	}
}

// Current returns the word at the current position, or nil when the
// collection is empty. On the first call it picks an initial position; when
// the positioned word was deleted it advances past the gap.
func (s *SequenceService) Current() *domain.Word {
	s.mu.Lock()
	defer s.mu.Unlock()

	words := s.words.All()
	if len(words) == 0 {
		s.resetPositionLocked()
		return nil
	}
	return s.resolveLocked(words)
}

// Advance moves to the next word per the active mode and returns it, or nil
// when the collection is empty. When the current position is dangling the
// repair pick counts as the advance.
func (s *SequenceService) Advance() *domain.Word {
	s.mu.Lock()
	defer s.mu.Unlock()

	words := s.words.All()
	if len(words) == 0 {
		s.resetPositionLocked()
		return nil
	}

	cur := indexOf(words, s.currentKey)
	if s.currentKey == "" || cur < 0 {
		return s.resolveLocked(words)
	}

	var next int
	switch s.mode {
	case domain.ModeSequential:
		next = (cur + 1) % len(words)
	default:
		next = s.pickRandomLocked(words)
	}

	s.positionLocked(words, next, true)
	return &words[next]
}

// Next walks forward through the browse history first and advances to a new
// word only from the history's end. This is what a "next" action should call.
func (s *SequenceService) Next() *domain.Word {
	if w := s.ForwardInHistory(); w != nil {
		return w
	}
	return s.Advance()
}

// Previous steps back through the browse history, skipping words that no
// longer exist. Returns nil when nothing earlier can be shown.
func (s *SequenceService) Previous() *domain.Word {
	s.mu.Lock()
	defer s.mu.Unlock()

	words := s.words.All()
	if len(words) == 0 {
		s.resetPositionLocked()
		return nil
	}

	for i := s.histPos - 1; i >= 0; i-- {
		if idx := indexOf(words, s.history[i]); idx >= 0 {
			s.histPos = i
			s.positionLocked(words, idx, false)
			return &words[idx]
		}
	}
	return nil
}

// ForwardInHistory steps forward through the browse history, skipping words
// that no longer exist. Returns nil at the history's end.
func (s *SequenceService) ForwardInHistory() *domain.Word {
	s.mu.Lock()
	defer s.mu.Unlock()

	words := s.words.All()
	if len(words) == 0 {
		s.resetPositionLocked()
		return nil
	}

	for i := s.histPos + 1; i < len(s.history); i++ {
		if idx := indexOf(words, s.history[i]); idx >= 0 {
			s.histPos = i
			s.positionLocked(words, idx, false)
			return &words[idx]
		}
	}
	return nil
}

// HasPrevious reports whether Previous would show something.
func (s *SequenceService) HasPrevious() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	words := s.words.All()
	for i := s.histPos - 1; i >= 0; i-- {
		if indexOf(words, s.history[i]) >= 0 {
			return true
		}
	}
	return false
}

// HasNextInHistory reports whether ForwardInHistory would show something.
func (s *SequenceService) HasNextInHistory() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	words := s.words.All()
	for i := s.histPos + 1; i < len(s.history); i++ {
		if indexOf(words, s.history[i]) >= 0 {
			return true
		}
	}
	return false
}

// AtHistoryEnd reports whether the position is at the newest history entry.
func (s *SequenceService) AtHistoryEnd() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.histPos >= len(s.history)-1
}

// History returns the recorded browse history resolved against the live
// collection, oldest first. Deleted words are skipped.
func (s *SequenceService) History() []domain.Word {
	s.mu.Lock()
	defer s.mu.Unlock()

	words := s.words.All()
	out := make([]domain.Word, 0, len(s.history))
	for _, key := range s.history {
		if idx := indexOf(words, key); idx >= 0 {
			out = append(out, words[idx])
		}
	}
	return out
}

// HistoryInfo summarizes the browse history. Position is 1-based.
func (s *SequenceService) HistoryInfo() domain.HistoryInfo {
	s.mu.Lock()
	defer s.mu.Unlock()

	unique := make(map[string]struct{}, len(s.history))
	for _, key := range s.history {
		unique[key] = struct{}{}
	}

	return domain.HistoryInfo{
		Total:       len(s.history),
		Position:    s.histPos + 1,
		UniqueWords: len(unique),
	}
}

// resolveLocked returns the current record, picking an initial position or
// repairing a dangling one first. words must be non-empty.
func (s *SequenceService) resolveLocked(words []domain.Word) *domain.Word {
	if s.currentKey != "" {
		if idx := indexOf(words, s.currentKey); idx >= 0 {
			s.lastIndex = idx
			return &words[idx]
		}
	}

	var idx int
	switch {
	case s.currentKey == "" && s.mode == domain.ModeSequential:
		idx = 0
	case s.currentKey == "":
		idx = rand.Intn(len(words))
	case s.mode == domain.ModeSequential:
		// The word that followed the deleted one now sits at its old index.
		idx = s.lastIndex
		if idx >= len(words) {
			idx = 0
		}
	default:
		idx = s.pickRandomLocked(words)
	}

	s.positionLocked(words, idx, true)
	return &words[idx]
}

// pickRandomLocked draws a uniform index excluding the anti-repeat window.
// The window shrinks so a pick is always possible, down to size 1.
func (s *SequenceService) pickRandomLocked(words []domain.Word) int {
	window := s.window
	if window > len(words)-1 {
		window = len(words) - 1
	}

	excluded := make(map[string]struct{}, window)
	for i := len(s.recent) - 1; i >= 0 && len(excluded) < window; i-- {
		if indexOf(words, s.recent[i]) >= 0 {
			excluded[s.recent[i]] = struct{}{}
		}
	}

	candidates := make([]int, 0, len(words))
	for i, w := range words {
		if _, ok := excluded[w.Word]; !ok {
			candidates = append(candidates, i)
		}
	}
	return candidates[rand.Intn(len(candidates))]
}

// positionLocked moves the position to words[idx]. When record is true the
// move also lands in the browse history; history navigation passes false.
func (s *SequenceService) positionLocked(words []domain.Word, idx int, record bool) {
	key := words[idx].Word
	s.currentKey = key
	s.lastIndex = idx

	s.recent = append(s.recent, key)
	if len(s.recent) > s.window {
		s.recent = s.recent[len(s.recent)-s.window:]
	}

	if record {
		s.recordHistoryLocked(key)
	}
}

// recordHistoryLocked appends a shown word, truncating any forward tail left
// by back-navigation and collapsing consecutive repeats.
func (s *SequenceService) recordHistoryLocked(key string) {
	if s.histPos < len(s.history)-1 {
		s.history = s.history[:s.histPos+1]
	}

	if n := len(s.history); n > 0 && s.history[n-1] == key {
		s.histPos = n - 1
		return
	}

	s.history = append(s.history, key)
	if len(s.history) > historyLimit {
		s.history = s.history[1:]
	}
	s.histPos = len(s.history) - 1
}

func (s *SequenceService) resetPositionLocked() {
	s.currentKey = ""
	s.lastIndex = 0
	s.recent = nil
}

func indexOf(words []domain.Word, key string) int {
	if key == "" {
		return -1
	}
	for i, w := range words {
		if w.Word == key {
			return i
		}
	}
	return -1
}
