package planning

import "errors"

var (
	ErrSupplierNotFound = errors.New("supplier not found")
	ErrLocationNotFound = errors.New("location not found")
	ErrInvalidInput     = errors.New("invalid input")
)
