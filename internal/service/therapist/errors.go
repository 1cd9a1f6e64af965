package therapist

import "errors"

var (
	ErrTherapistNotFound = errors.New("therapist not found")
	ErrMissingName       = errors.New("therapist name is required")
)
