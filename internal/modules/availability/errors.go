package availability

import "errors"

var (
	ErrValidation     = errors.New("validation error")
	ErrNotFound       = errors.New("availability rule not found")
	ErrMentorNotFound = errors.New("mentor not found")
)
