package apperror

import (
	"errors"
	"strings"
)

type Code string

const (
	CodeValidation Code = "validation"
	CodeNotFound   Code = "not_found"
	CodeConflict   Code = "conflict"
	CodeInternal   Code = "internal"
)

type Error struct {
	Code    Code
	Message string
	Fields  []string
}

func (e *Error) Error() string {
	return e.Message
}

func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// MissingFields builds a validation error naming every absent required field.
func MissingFields(fields []string) *Error {
	message := "Missing required fields"
	if len(fields) > 0 {
		message += ": " + strings.Join(fields, ", ")
	}
	return &Error{
		Code:    CodeValidation,
		Message: message,
		Fields:  fields,
	}
}

func GetCode(err error) Code {
	if err == nil {
		return ""
	}

	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}

	return CodeInternal
}
