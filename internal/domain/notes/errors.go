package notes

import "errors"

var (
	ErrNoteNotFound = errors.New("note not found")
	ErrInvalidInput = errors.New("invalid input")
)
