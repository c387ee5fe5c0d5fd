package registry

import "errors"

var (
	ErrItemNotFound = errors.New("registry item not found")
	ErrInvalidInput = errors.New("invalid input")
)
