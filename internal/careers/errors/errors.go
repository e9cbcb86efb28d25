package errors

import "errors"

var (
	ErrNotFound = errors.New("career not found")

	ErrInvalidID = errors.New("invalid career ID format")

	ErrOrgNotFound = errors.New("organization not found")
)
