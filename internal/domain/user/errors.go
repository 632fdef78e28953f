package user

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateUsername indicates the username is already registered.
	ErrDuplicateUsername = errors.New("username already exists")
	// ErrAuthenticationFailed indicates a wrong username or password. It never
	// says which.
	ErrAuthenticationFailed = errors.New("invalid username or password")
	// ErrCurrentPasswordMismatch is returned by ChangePassword; it is also an
	// ErrAuthenticationFailed.
	ErrCurrentPasswordMismatch = fmt.Errorf("current password does not match: %w", ErrAuthenticationFailed)
	// ErrInvalidInput indicates an empty or malformed field.
	ErrInvalidInput = errors.New("invalid user input")
)

// Messages shown to the person at the keyboard.
const (
	MsgRegistered      = "Đăng ký thành công"
	MsgLoggedIn        = "Đăng nhập thành công"
	MsgPasswordChanged = "Đổi mật khẩu thành công"
)

// Message returns the user-facing text for an error returned by Service.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrDuplicateUsername):
		return "Tên đăng nhập đã tồn tại"
	case errors.Is(err, ErrCurrentPasswordMismatch):
		return "Mật khẩu hiện tại không đúng"
	case errors.Is(err, ErrAuthenticationFailed):
		return "Tên đăng nhập hoặc mật khẩu không đúng"
	case errors.Is(err, ErrInvalidInput):
		return "Tên đăng nhập và mật khẩu không được để trống"
	default:
		return err.Error()
	}
}
