package utils

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ValidationError names the offending field and what is wrong with it
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return "validation error: " + e.Message
	}
	return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
}

func invalid(field string, value any, format string, args ...any) ValidationError {
	return ValidationError{Field: field, Value: value, Message: fmt.Sprintf(format, args...)}
}

// Validator checks a single value
type Validator[T any] func(T) error

// ValidatorChain runs validators in order and reports the first failure
type ValidatorChain[T any] struct {
	validators []Validator[T]
}

func NewValidatorChain[T any](validators ...Validator[T]) *ValidatorChain[T] {
	return &ValidatorChain[T]{validators: validators}
}

func (vc *ValidatorChain[T]) Add(validator Validator[T]) *ValidatorChain[T] {
	vc.validators = append(vc.validators, validator)
	return vc
}

func (vc *ValidatorChain[T]) Validate(value T) error {
	for _, check := range vc.validators {
		if err := check(value); err != nil {
			return err
		}
	}
	return nil
}

// NotEmpty rejects blank and whitespace-only strings
func NotEmpty(field string) Validator[string] {
	return func(value string) error {
		if strings.TrimSpace(value) == "" {
			return invalid(field, value, "cannot be empty")
		}
		return nil
	}
}

// HasPrefix is used for file extensions, which must start with a dot
func HasPrefix(field, prefix string) Validator[string] {
	return func(value string) error {
		if !strings.HasPrefix(value, prefix) {
			return invalid(field, value, "must start with '%s'", prefix)
		}
		return nil
	}
}

// IsValidGlob accepts patterns that filepath.Match can compile, such as
// project and solution markers.
func IsValidGlob(field string) Validator[string] {
	return func(value string) error {
		if _, err := filepath.Match(value, ""); err != nil {
			return invalid(field, value, "invalid glob pattern: %v", err)
		}
		return nil
	}
}

func Positive(field string) Validator[int] {
	return func(value int) error {
		if value < 1 {
			return invalid(field, value, "must be greater than zero")
		}
		return nil
	}
}

func SliceNotEmpty[T any](field string) Validator[[]T] {
	return func(values []T) error {
		if len(values) == 0 {
			return invalid(field, values, "cannot be empty")
		}
		return nil
	}
}

// ValidateEach applies item to every element. The reported field carries the
// failing index, for example "project_markers[1]".
func ValidateEach[T any](field string, item Validator[T]) Validator[[]T] {
	return func(values []T) error {
		for i, v := range values {
			if err := item(v); err != nil {
				return invalid(fmt.Sprintf("%s[%d]", field, i), v, "%s", err.Error())
			}
		}
		return nil
	}
}
