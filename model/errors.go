package model

import (
	"errors"
	"io/fs"
)

var (
	// ErrNotFound is returned when the target file or the backup is absent.
	ErrNotFound = errors.New("not found")
	// ErrSameFile is returned when a copy would overwrite its own source.
	ErrSameFile = errors.New("source and destination are the same file")
	// ErrInvalidInput is returned for non-numeric menu input.
	ErrInvalidInput = errors.New("invalid input, please enter a number")
	// ErrInvalidChoice is returned for a number outside the menu.
	ErrInvalidChoice = errors.New("invalid choice")
)

// IsPermission reports whether err was caused by missing privileges.
func IsPermission(err error) bool {
	return errors.Is(err, fs.ErrPermission)
}

// IsNotFound reports whether err means "nothing there", either a missing
// target/backup or a missing path on disk.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, fs.ErrNotExist)
}
