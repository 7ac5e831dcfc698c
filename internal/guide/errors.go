package guide

import "errors"

var (
	// ErrUnknownCategory is returned when a string does not name a category.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrInvalidName is returned for guide names that cannot be filename stems.
	ErrInvalidName = errors.New("invalid guide name")

	// ErrExists is returned when a scaffold target already exists on disk.
	// The tooling never overwrites authored content.
	ErrExists = errors.New("guide already exists")
)
