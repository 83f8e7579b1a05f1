package models

import (
	"fmt"
	"strconv"
)

// ParseCount parses a non-negative whole number such as a duration in days
// or a subtask count. field names the value in the error.
func ParseCount(field, tok string) (int, error) {
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%s %q is not a whole number: %w", field, tok, ErrInvalidNumber)
	}
	if n < 0 {
		return 0, fmt.Errorf("%s %d is negative: %w", field, n, ErrInvalidNumber)
	}
	return n, nil
}
