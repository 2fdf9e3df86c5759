package errors

import (
	"fmt"
	"strings"
)

// PreconditionError reports a missing or empty required argument
func PreconditionError(argument string) *BaseError {
	return Newf(PreconditionErrorCode, "required argument '%s' is missing", argument).
		WithContext("argument", argument)
}

// UnknownKindError reports a scaffold kind outside the supported set
func UnknownKindError(kind string, supported []string) *BaseError {
	return Newf(ConfigurationErrorCode, "unknown scaffold kind '%s'", kind).
		WithContext("kind", kind).
		WithSuggestion(fmt.Sprintf("use one of: %s", strings.Join(supported, ", ")))
}

// ConfigurationError creates a configuration error
func ConfigurationError(configType, message string) *BaseError {
	fullMessage := fmt.Sprintf("configuration error in '%s': %s", configType, message)
	return New(ConfigurationErrorCode, fullMessage).
		WithContext("config_type", configType)
}

// WrapConfigurationError wraps configuration-related errors
func WrapConfigurationError(configType, operation string, cause error) *BaseError {
	message := fmt.Sprintf("failed to %s configuration '%s'", operation, configType)
	return Wrap(ConfigurationErrorCode, message, cause).
		WithContext("config_type", configType).
		WithContext("operation", operation)
}

// TemplateNotFoundError reports a template resource that cannot be located
func TemplateNotFoundError(templateName string) *BaseError {
	return Newf(TemplateErrorCode, "template '%s' not found", templateName).
		WithContext("template", templateName).
		WithSuggestion("check the templates directory configured in quicktest.yaml")
}

// WrapTemplateError wraps template loading errors
func WrapTemplateError(templateName, operation string, cause error) *BaseError {
	message := fmt.Sprintf("failed to %s template '%s'", operation, templateName)
	return Wrap(TemplateErrorCode, message, cause).
		WithContext("template", templateName).
		WithContext("operation", operation)
}

// WrapFileSystemError wraps file system related errors
func WrapFileSystemError(operation, path string, cause error) *BaseError {
	message := fmt.Sprintf("failed to %s file '%s'", operation, path)
	return Wrap(FileSystemErrorCode, message, cause).
		WithLocation(SourceLocation{File: path}).
		WithContext("operation", operation)
}

// WrapGenerateError wraps a failed scaffold request for one file
func WrapGenerateError(kind, path string, cause error) *BaseError {
	message := fmt.Sprintf("failed to generate %s scaffold", kind)
	return Wrap(GenerationErrorCode, message, cause).
		WithLocation(SourceLocation{File: path}).
		WithContext("kind", kind)
}
