package errors

import (
	"fmt"
)

type AppError struct {
	Code       string                 `json:"code"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
	StatusCode int                    `json:"-"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func New(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

// Is matches by code, so a details-carrying copy still compares equal
// to its sentinel under errors.Is.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && t.Code == e.Code
}

// WithDetails returns a copy carrying extra context, so the package
// level sentinels stay immutable.
func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

// WithReason is WithDetails for the common single-message case.
func (e *AppError) WithReason(reason string) *AppError {
	return e.WithDetails(map[string]interface{}{"reason": reason})
}

// IsInfrastructure reports whether the error is a retryable
// infrastructure failure (store or cache), as opposed to a not-found
// outcome. Callers map these to a generic server error page, never to
// a not-found page.
func IsInfrastructure(err error) bool {
	appErr, ok := err.(*AppError)
	return ok && appErr.StatusCode >= 500
}
