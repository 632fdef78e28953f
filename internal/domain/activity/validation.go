package activity

import (
	"fmt"
	"strings"
)

// ValidateInput validates fields required to store an activity.
func ValidateInput(in Input) error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.Type) == "" {
		return fmt.Errorf("%w: type is required", ErrInvalidInput)
	}
	return nil
}
