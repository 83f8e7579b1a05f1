package models

import "errors"

// ErrSubtaskNotFound is returned when a subtask lookup by name fails.
var ErrSubtaskNotFound = errors.New("subtask not found")

// ErrInvalidNumber is returned when a numeric field is not a whole,
// non-negative number.
var ErrInvalidNumber = errors.New("invalid number")
