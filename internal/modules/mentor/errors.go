package mentor

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("mentor not found")
)
