package user

import (
	"fmt"
	"strings"
)

// ParseType converts a role name. Empty means TypeUser.
func ParseType(s string) (Type, error) {
	switch Type(strings.ToLower(strings.TrimSpace(s))) {
	case "", TypeUser:
		return TypeUser, nil
	case TypeAdmin:
		return TypeAdmin, nil
	default:
		return "", fmt.Errorf("%w: unknown user type %q", ErrInvalidInput, s)
	}
}

func validateCredentials(username, password string) error {
	if strings.TrimSpace(username) == "" {
		return fmt.Errorf("%w: username is required", ErrInvalidInput)
	}
	if password == "" {
		return fmt.Errorf("%w: password is required", ErrInvalidInput)
	}
	return nil
}
