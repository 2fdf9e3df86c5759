// Package errors defines the coded errors quicktest reports to the CLI and
// the HTTP API.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ScaffoldError is implemented by every error quicktest raises itself
type ScaffoldError interface {
	error
	ErrorCode() ErrorCode
	Location() SourceLocation
	Context() map[string]any
	Suggestions() []string
	Unwrap() error
}

type ErrorCode int

const (
	UnknownErrorCode ErrorCode = iota

	// caller mistakes
	PreconditionErrorCode
	ConfigurationErrorCode
	ValidationErrorCode

	// failures while producing a scaffold
	GenerationErrorCode
	TemplateErrorCode
	FileSystemErrorCode
)

var codeNames = [...]string{
	UnknownErrorCode:       "UnknownError",
	PreconditionErrorCode:  "PreconditionError",
	ConfigurationErrorCode: "ConfigurationError",
	ValidationErrorCode:    "ValidationError",
	GenerationErrorCode:    "GenerationError",
	TemplateErrorCode:      "TemplateError",
	FileSystemErrorCode:    "FileSystemError",
}

func (e ErrorCode) String() string {
	if e < 0 || int(e) >= len(codeNames) {
		return codeNames[UnknownErrorCode]
	}
	return codeNames[e]
}

// SourceLocation points at the file an error concerns. Line is 1-based and
// zero when unknown.
type SourceLocation struct {
	File string
	Line int
}

func (s SourceLocation) String() string {
	switch {
	case s.File == "":
		return "unknown location"
	case s.Line == 0:
		return s.File
	default:
		return fmt.Sprintf("%s:%d", s.File, s.Line)
	}
}

func (s SourceLocation) IsEmpty() bool {
	return s.File == ""
}

// BaseError is the builder-style ScaffoldError used throughout quicktest
type BaseError struct {
	code        ErrorCode
	message     string
	location    SourceLocation
	cause       error
	context     map[string]any
	suggestions []string
}

func (e *BaseError) Error() string {
	msg := e.message
	if e.cause != nil {
		msg += ": " + e.cause.Error()
	}
	if e.location.IsEmpty() {
		return msg
	}
	return e.location.String() + ": " + msg
}

func (e *BaseError) ErrorCode() ErrorCode     { return e.code }
func (e *BaseError) Location() SourceLocation { return e.location }
func (e *BaseError) Suggestions() []string    { return e.suggestions }
func (e *BaseError) Unwrap() error            { return e.cause }

// Context never returns nil
func (e *BaseError) Context() map[string]any {
	if e.context == nil {
		return map[string]any{}
	}
	return e.context
}

func (e *BaseError) WithLocation(loc SourceLocation) *BaseError {
	e.location = loc
	return e
}

func (e *BaseError) WithCause(cause error) *BaseError {
	e.cause = cause
	return e
}

func (e *BaseError) WithContext(key string, value any) *BaseError {
	if e.context == nil {
		e.context = make(map[string]any)
	}
	e.context[key] = value
	return e
}

func (e *BaseError) WithSuggestion(suggestion string) *BaseError {
	e.suggestions = append(e.suggestions, suggestion)
	return e
}

func New(code ErrorCode, message string) *BaseError {
	return &BaseError{code: code, message: message}
}

func Newf(code ErrorCode, format string, args ...any) *BaseError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap attaches cause to a new coded error; the cause text is appended to
// the message.
func Wrap(code ErrorCode, message string, cause error) *BaseError {
	return New(code, message).WithCause(cause)
}

// CodeOf returns the code of the first ScaffoldError in err's chain
func CodeOf(err error) ErrorCode {
	var scaffoldErr ScaffoldError
	if stderrors.As(err, &scaffoldErr) {
		return scaffoldErr.ErrorCode()
	}
	return UnknownErrorCode
}

func HasCode(err error, code ErrorCode) bool {
	return err != nil && CodeOf(err) == code
}
