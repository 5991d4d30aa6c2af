package utils

import "errors"

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidDateRange = errors.New("end date must not be before start date")
	ErrInvalidDuration  = errors.New("duration must be at least 1 day")
	ErrMissingText      = errors.New("text field is required")
	ErrMissingUserID    = errors.New("user id is required")
	ErrDatabaseError    = errors.New("database error")
)
