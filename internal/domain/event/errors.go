package event

import "errors"

var (
	ErrEventNotFound = errors.New("event not found")
	ErrEventExists   = errors.New("event already exists for user")
	ErrInvalidInput  = errors.New("invalid input")
)
