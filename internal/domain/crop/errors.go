package crop

import "errors"

var (
	// ErrCropNotFound indicates the crop doesn't exist.
	ErrCropNotFound = errors.New("crop not found")
	// ErrInvalidInput indicates invalid crop input.
	ErrInvalidInput = errors.New("invalid crop input")
)
