package goerror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrNotFound indicates that the requested record could not be found.
//
// Outbound stores return it as a sentinel; usecases translate it into a
// localizable Error via NewNotFound.
var ErrNotFound = errors.New("record not found")

// Type classifies errors into high-level buckets used by the application.
type Type int

const (
	// TypeServer represents server-side failures.
	TypeServer Type = iota
	// TypeBusiness represents business rule violations.
	TypeBusiness
	// TypeValidation represents input validation failures.
	TypeValidation
)

// String returns the string representation of the error type.
func (t Type) String() string {
	switch t {
	case TypeValidation:
		return "ERROR_TYPE_VALIDATION"
	case TypeBusiness:
		return "ERROR_TYPE_BUSINESS"
	case TypeServer:
		return "ERROR_TYPE_SERVER"
	default:
		return "ERROR_TYPE_UNKNOWN"
	}
}

// Code is a stable identifier used for mapping errors to HTTP status codes.
type Code int

const (
	// CodeInternal represents an internal or unspecified error.
	CodeInternal Code = iota
	// CodeInvalidFormat indicates an unreadable request body.
	CodeInvalidFormat
	// CodeNotFound indicates a missing record.
	CodeNotFound
)

// String returns the string representation of the error code.
func (c Code) String() string {
	switch c {
	case CodeInvalidFormat:
		return "ERROR_CODE_INVALID_FORMAT"
	case CodeNotFound:
		return "ERROR_CODE_NOT_FOUND"
	case CodeInternal:
		return "ERROR_CODE_INTERNAL"
	default:
		return "ERROR_CODE_INTERNAL"
	}
}

// Error is a structured error used across the application.
//
// It can wrap an underlying error while also carrying a message catalog id
// plus positional arguments, so the HTTP layer can render localized text
// without the domain layer knowing about locales.
type Error struct {
	err     error
	msgID   string
	args    []string
	errType Type
	code    Code
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.err != nil {
		return e.err.Error()
	}

	if e.msgID != "" {
		if len(e.args) > 0 {
			return e.msgID + " [" + strings.Join(e.args, ", ") + "]"
		}
		return e.msgID
	}

	return "unknown error"
}

// String returns a verbose representation of the error for debugging/logging.
func (e *Error) String() string {
	return fmt.Sprintf(
		"Error Type: %s, Code: %s, MessageID: %s, Args: %v, Underlying Error: %v",
		e.errType.String(),
		e.code.String(),
		e.msgID,
		e.args,
		e.err,
	)
}

// MessageID returns the message catalog id carried by the error, if any.
func (e *Error) MessageID() string {
	return e.msgID
}

// Args returns the positional arguments for the message template.
func (e *Error) Args() []string {
	return e.args
}

// Type returns the high-level error type.
func (e *Error) Type() Type {
	return e.errType
}

// Code returns the stable error code.
func (e *Error) Code() Code {
	return e.code
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.err
}

// StatusCode maps the error code to an HTTP status code.
func (e *Error) StatusCode() int {
	switch e.code {
	case CodeInvalidFormat:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// NewServer creates a server-type error wrapping the provided error.
func NewServer(err error) error {
	return &Error{err: err, errType: TypeServer, code: CodeInternal}
}

// NewNotFound creates a business-type error carrying the message catalog id
// of the not-found text and the lookup key(s) that failed as template args.
func NewNotFound(msgID string, args ...string) error {
	return &Error{msgID: msgID, args: args, errType: TypeBusiness, code: CodeNotFound}
}

// NewInvalidFormat creates a validation-type error for a request body that
// could not be decoded. msgID references the message catalog.
func NewInvalidFormat(msgID string) error {
	return &Error{msgID: msgID, errType: TypeValidation, code: CodeInvalidFormat}
}
