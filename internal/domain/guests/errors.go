package guests

import "errors"

var (
	ErrGuestNotFound = errors.New("guest not found")
	ErrInvalidInput  = errors.New("invalid input")
)
