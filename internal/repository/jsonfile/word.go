package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"wordlearner/internal/domain"
	"wordlearner/internal/repository"
)

// WordRepo implements repository.WordRepository on a single JSON file
// holding an array of word records.
type WordRepo struct {
	path string
}

// NewWordRepo creates a word repository backed by the file at path.
func NewWordRepo(path string) *WordRepo {
	return &WordRepo{path: path}
}

// Load reads the whole collection. A missing or empty file yields an empty
// collection; a file that cannot be decoded into valid records yields
// repository.ErrCorruptData.
func (r *WordRepo) Load() ([]domain.Word, error) {
	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return []domain.Word{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading words file: %w", err)
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return []domain.Word{}, nil
	}

	var words []domain.Word
	if err := json.Unmarshal(data, &words); err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrCorruptData, err)
	}

	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		if err := w.Validate(); err != nil {
			return nil, fmt.Errorf("%w: record without a word", repository.ErrCorruptData)
		}
		if _, ok := seen[w.Word]; ok {
			return nil, fmt.Errorf("%w: duplicate word %q", repository.ErrCorruptData, w.Word)
		}
		seen[w.Word] = struct{}{}
	}

	return words, nil
}

// Save replaces the stored collection. The new content is written to a
// temporary file in the same directory and moved into place, so a crash
// mid-write never leaves a half-written collection behind.
func (r *WordRepo) Save(words []domain.Word) error {
	if words == nil {
		words = []domain.Word{}
	}

	data, err := json.MarshalIndent(words, "", "    ")
	if err != nil {
		return fmt.Errorf("encoding words: %w", err)
	}

	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing words file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing words file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing words file: %w", err)
	}

	return nil
}
