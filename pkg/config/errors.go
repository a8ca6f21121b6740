package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	errorCodeNotFound   = "config.not_found"
	errorCodeParse      = "config.parse"
	errorCodeEmpty      = "config.empty"
	errorCodeValidation = "config.validation"
)

// Error is a configuration error with a stable error code.
type Error struct {
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(code, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     cause,
	}
}

func hasCode(err error, code string) bool {
	var cfgErr *Error
	if errors.As(err, &cfgErr) {
		return cfgErr.Code == code
	}
	return false
}

// IsNotFound reports whether err means the configuration document is absent.
func IsNotFound(err error) bool {
	return hasCode(err, errorCodeNotFound)
}

// IsParse reports whether err means the document is malformed YAML.
func IsParse(err error) bool {
	return hasCode(err, errorCodeParse)
}

// IsEmptyDocument reports whether err means the document parsed to nothing.
func IsEmptyDocument(err error) bool {
	return hasCode(err, errorCodeEmpty)
}

// ValidationError carries the full ordered list of rule violations from a
// failed validation. It is returned by MustValidate-style callers, never by
// Validate itself.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", errorCodeValidation, strings.Join(e.Errors, "; "))
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}
