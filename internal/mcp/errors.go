package mcp

import (
	"errors"
	"fmt"

	"github.com/rpggio/farmrec/internal/app"
	"github.com/rpggio/farmrec/internal/domain/activity"
	"github.com/rpggio/farmrec/internal/domain/animal"
	"github.com/rpggio/farmrec/internal/domain/crop"
	"github.com/rpggio/farmrec/internal/domain/user"
	"github.com/rpggio/farmrec/internal/report"
	"github.com/rpggio/farmrec/internal/repository"
)

// APIError represents an MCP tool error.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
	Err          error  `json:"-"`
}

func (e *APIError) Error() string {
	if e.RecoveryHint != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.RecoveryHint)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *APIError) Unwrap() error { return e.Err }

// MapError maps domain errors to MCP error codes.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, crop.ErrCropNotFound),
		errors.Is(err, animal.ErrAnimalNotFound),
		errors.Is(err, activity.ErrActivityNotFound):
		return &APIError{Code: "NOT_FOUND", Message: err.Error(), RecoveryHint: "List the collection to find a valid id", Err: err}
	case errors.Is(err, crop.ErrInvalidInput),
		errors.Is(err, animal.ErrInvalidInput),
		errors.Is(err, activity.ErrInvalidInput),
		errors.Is(err, user.ErrInvalidInput):
		return &APIError{Code: "INVALID_INPUT", Message: err.Error(), RecoveryHint: "Name and type must not be empty", Err: err}
	case errors.Is(err, report.ErrInvalidFilename):
		return &APIError{Code: "INVALID_INPUT", Message: err.Error(), RecoveryHint: "Give a file name such as monthly.xlsx, or omit it", Err: err}
	case errors.Is(err, app.ErrForbidden):
		return &APIError{Code: "FORBIDDEN", Message: "Chỉ quản trị viên mới có quyền xuất báo cáo", RecoveryHint: "Start the server as an admin account", Err: err}
	case errors.Is(err, report.ErrUnknownKind):
		return &APIError{Code: "UNKNOWN_REPORT_KIND", Message: err.Error(), RecoveryHint: "Use crops, animals or activities", Err: err}
	case errors.Is(err, repository.ErrDataLoad):
		return &APIError{Code: "DATA_LOAD", Message: err.Error(), Err: err}
	default:
		return nil
	}
}

func toolError(err error) error {
	if apiErr := MapError(err); apiErr != nil {
		return apiErr
	}
	return err
}
