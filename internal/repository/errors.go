package repository

import "errors"

var (
	// ErrNotFound is returned when a requested document or entity doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrDataLoad is returned when a persisted document exists but cannot be decoded
	ErrDataLoad = errors.New("data load failed")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)
