package booking

import "errors"

var (
	ErrValidation     = errors.New("validation error")
	ErrNotFound       = errors.New("booking not found")
	ErrMentorNotFound = errors.New("mentor not found")
)
