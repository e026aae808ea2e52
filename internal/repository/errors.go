package repository

import "errors"

var (
	// ErrNotFound is returned when no price record matches a filter.
	ErrNotFound = errors.New("not found")
)
