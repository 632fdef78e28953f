package animal

import "errors"

var (
	// ErrAnimalNotFound indicates the animal doesn't exist.
	ErrAnimalNotFound = errors.New("animal not found")
	// ErrInvalidInput indicates invalid animal input.
	ErrInvalidInput = errors.New("invalid animal input")
)
