package animal

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidateInput validates fields required to store an animal record.
func ValidateInput(in Input) error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.Type) == "" {
		return fmt.Errorf("%w: type is required", ErrInvalidInput)
	}
	if in.Quantity < 0 {
		return fmt.Errorf("%w: quantity must not be negative", ErrInvalidInput)
	}
	return nil
}

// ParseQuantity converts user-entered text into a head count.
func ParseQuantity(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: quantity must be a whole number", ErrInvalidInput)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: quantity must not be negative", ErrInvalidInput)
	}
	return n, nil
}
