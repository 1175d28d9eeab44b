package model

import "github.com/pkg/errors"

var (
	// ErrOutOfRange is returned when a coordinate or crop origin lies
	// outside the current grid bounds.
	ErrOutOfRange = errors.New("coordinate out of range")

	// ErrInvalidSize is returned when a merge overlay would exceed the
	// destination bounds or a crop window is inverted.
	ErrInvalidSize = errors.New("invalid size")
)
