package service

import "errors"

var (
	// ErrWordExists is returned when adding a word that is already in the
	// collection.
	ErrWordExists = errors.New("word already exists")

	// ErrWordNotFound is returned when the named word is not in the
	// collection.
	ErrWordNotFound = errors.New("word not found")

	// ErrNotSaved is returned when a change was applied in memory but could
	// not be written to the words file. The in-memory collection stays valid.
	ErrNotSaved = errors.New("changes not saved to file")
)
