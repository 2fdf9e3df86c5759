package errors

import (
	"fmt"
	"strings"
)

// MultipleErrors collects failures that do not stop the surrounding work,
// such as invalid config fields or files that failed during a batch.
type MultipleErrors struct {
	Errors []ScaffoldError
}

func (e *MultipleErrors) Error() string {
	switch len(e.Errors) {
	case 0:
		return "no errors"
	case 1:
		return e.Errors[0].Error()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "multiple errors (%d total):", len(e.Errors))
	for i, err := range e.Errors {
		fmt.Fprintf(&b, "\n  %d. %s", i+1, err.Error())
	}
	return b.String()
}

// ErrorCode is the code of the first collected error
func (e *MultipleErrors) ErrorCode() ErrorCode {
	if len(e.Errors) == 0 {
		return UnknownErrorCode
	}
	return e.Errors[0].ErrorCode()
}

// Unwrap exposes every collected error to errors.Is and errors.As
func (e *MultipleErrors) Unwrap() []error {
	errs := make([]error, 0, len(e.Errors))
	for _, err := range e.Errors {
		errs = append(errs, err)
	}
	return errs
}

func (e *MultipleErrors) Add(err ScaffoldError) {
	e.Errors = append(e.Errors, err)
}

func (e *MultipleErrors) Count() int {
	return len(e.Errors)
}

// ErrorOrNil is nil for a nil or empty collection
func (e *MultipleErrors) ErrorOrNil() error {
	if e == nil || len(e.Errors) == 0 {
		return nil
	}
	return e
}

// AddToMultiple appends err, allocating the collection on first use
func AddToMultiple(multiple **MultipleErrors, err ScaffoldError) {
	if *multiple == nil {
		*multiple = &MultipleErrors{}
	}
	(*multiple).Add(err)
}
