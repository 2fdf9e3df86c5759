package server

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	qterrors "github.com/toyz/quicktest/internal/errors"
)

// HttpError is the JSON body returned for every failed request
type HttpError struct {
	StatusCode  int      `json:"status_code"`
	Code        string   `json:"code,omitempty"`
	Message     string   `json:"message"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// Error implements the error interface
func (e *HttpError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// NewHttpError creates a new HttpError with the given status code and message
func NewHttpError(statusCode int, message string) *HttpError {
	return &HttpError{
		StatusCode: statusCode,
		Message:    message,
	}
}

// ErrBadRequest creates a 400 Bad Request error
func ErrBadRequest(message string) *HttpError {
	return NewHttpError(http.StatusBadRequest, message)
}

// ErrNotFound creates a 404 Not Found error
func ErrNotFound(message string) *HttpError {
	return NewHttpError(http.StatusNotFound, message)
}

// StatusFor maps an error code onto an HTTP status
func StatusFor(code qterrors.ErrorCode) int {
	switch code {
	case qterrors.PreconditionErrorCode, qterrors.ValidationErrorCode:
		return http.StatusBadRequest
	case qterrors.ConfigurationErrorCode:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// toHttpError converts handler errors into the response body
func toHttpError(err error) *HttpError {
	var httpErr *HttpError
	if stderrors.As(err, &httpErr) {
		return httpErr
	}

	var echoErr *echo.HTTPError
	if stderrors.As(err, &echoErr) {
		return NewHttpError(echoErr.Code, fmt.Sprint(echoErr.Message))
	}

	var scaffoldErr qterrors.ScaffoldError
	if stderrors.As(err, &scaffoldErr) {
		return &HttpError{
			StatusCode:  StatusFor(scaffoldErr.ErrorCode()),
			Code:        scaffoldErr.ErrorCode().String(),
			Message:     scaffoldErr.Error(),
			Suggestions: scaffoldErr.Suggestions(),
		}
	}

	return NewHttpError(http.StatusInternalServerError, err.Error())
}

func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	httpErr := toHttpError(err)
	if httpErr.StatusCode >= http.StatusInternalServerError {
		s.diagnostics.Error("%s %s: %v", c.Request().Method, c.Request().URL.Path, err)
	}

	if writeErr := c.JSON(httpErr.StatusCode, httpErr); writeErr != nil {
		s.diagnostics.Error("Failed to write error response: %v", writeErr)
	}
}
