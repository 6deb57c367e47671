package server

import (
	"fmt"
	"maps"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// IAPIError defines the interface for API errors with structured information.
type IAPIError interface {
	ErrorCode() string
	Message() string
	HTTPStatus() int
	Details() map[string]any
}

// APIResponse represents the standardized API response format.
type APIResponse struct {
	Data  any               `json:"data,omitempty"`
	Error *APIErrorResponse `json:"error,omitempty"`
	Meta  map[string]any    `json:"meta"`
}

// APIErrorResponse represents the error portion of an API response.
type APIErrorResponse struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// BaseAPIError provides a basic implementation of IAPIError.
type BaseAPIError struct {
	code       string
	message    string
	httpStatus int
	details    map[string]any
}

// NewBaseAPIError creates a new base API error.
func NewBaseAPIError(code, message string, httpStatus int) *BaseAPIError {
	return &BaseAPIError{
		code:       code,
		message:    message,
		httpStatus: httpStatus,
		details:    make(map[string]any),
	}
}

// ErrorCode returns the error code.
func (e *BaseAPIError) ErrorCode() string {
	return e.code
}

// Message returns the error message.
func (e *BaseAPIError) Message() string {
	return e.message
}

// HTTPStatus returns the HTTP status code.
func (e *BaseAPIError) HTTPStatus() int {
	return e.httpStatus
}

// Details returns additional error details.
func (e *BaseAPIError) Details() map[string]any {
	if len(e.details) == 0 {
		return nil
	}
	cp := make(map[string]any, len(e.details))
	maps.Copy(cp, e.details)
	return cp
}

// WithDetails adds details to the error.
func (e *BaseAPIError) WithDetails(key string, value any) *BaseAPIError {
	e.details[key] = value
	return e
}

// Error implements the error interface for BaseAPIError.
func (e *BaseAPIError) Error() string {
	if e == nil {
		return ""
	}
	if e.code == "" {
		return e.message
	}
	return e.code + ": " + e.message
}

// NotFoundError represents resource not found errors.
type NotFoundError struct {
	*BaseAPIError
}

// NewNotFoundError creates a new not found error.
func NewNotFoundError(resource string) *NotFoundError {
	return &NotFoundError{
		BaseAPIError: NewBaseAPIError("NOT_FOUND", fmt.Sprintf("%s not found", resource), http.StatusNotFound),
	}
}

// BadRequestError represents bad request errors.
type BadRequestError struct {
	*BaseAPIError
}

// NewBadRequestError creates a new bad request error.
func NewBadRequestError(message string) *BadRequestError {
	return &BadRequestError{
		BaseAPIError: NewBaseAPIError("BAD_REQUEST", message, http.StatusBadRequest),
	}
}

// NewUnsupportedAdapterError creates the bad request answered for an adapter
// name that is not registered.
func NewUnsupportedAdapterError(err error, name string) *BadRequestError {
	e := &BadRequestError{
		BaseAPIError: NewBaseAPIError("UNSUPPORTED_ADAPTER", err.Error(), http.StatusBadRequest),
	}
	e.WithDetails("adapter", name)
	return e
}

// TooManyRequestsError represents rate limiting errors.
type TooManyRequestsError struct {
	*BaseAPIError
}

// NewTooManyRequestsError creates a new too many requests error.
func NewTooManyRequestsError(message string) *TooManyRequestsError {
	if message == "" {
		message = "Rate limit exceeded"
	}
	return &TooManyRequestsError{
		BaseAPIError: NewBaseAPIError("TOO_MANY_REQUESTS", message, http.StatusTooManyRequests),
	}
}

// InternalServerError represents internal server errors.
type InternalServerError struct {
	*BaseAPIError
}

// NewInternalServerError creates a new internal server error.
func NewInternalServerError(message string) *InternalServerError {
	if message == "" {
		message = "An internal error occurred"
	}
	return &InternalServerError{
		BaseAPIError: NewBaseAPIError("INTERNAL_ERROR", message, http.StatusInternalServerError),
	}
}

var _ IAPIError = (*BaseAPIError)(nil)

func statusToErrorCode(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "BAD_REQUEST"
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case http.StatusTooManyRequests:
		return "TOO_MANY_REQUESTS"
	case http.StatusServiceUnavailable:
		return "SERVICE_UNAVAILABLE"
	default:
		return "INTERNAL_ERROR"
	}
}

func responseMeta(c echo.Context) map[string]any {
	return map[string]any{
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"traceId":   getTraceID(c),
	}
}

// formatSuccessResponse wraps data in the standard envelope.
func formatSuccessResponse(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, APIResponse{Data: data, Meta: responseMeta(c)})
}

// formatErrorResponse formats an error response with standardized structure.
// Details are only included outside production.
func formatErrorResponse(c echo.Context, apiErr IAPIError, showDetails bool) error {
	errorResp := &APIErrorResponse{
		Code:    apiErr.ErrorCode(),
		Message: apiErr.Message(),
	}
	if showDetails {
		errorResp.Details = apiErr.Details()
	}

	return c.JSON(apiErr.HTTPStatus(), APIResponse{Error: errorResp, Meta: responseMeta(c)})
}

// getTraceID returns the request ID set upstream or by the request ID
// middleware, generating one when neither is present.
func getTraceID(c echo.Context) string {
	if requestID := c.Request().Header.Get(echo.HeaderXRequestID); requestID != "" {
		return requestID
	}
	if requestID := c.Response().Header().Get(echo.HeaderXRequestID); requestID != "" {
		return requestID
	}
	newID := uuid.New().String()
	c.Response().Header().Set(echo.HeaderXRequestID, newID)
	return newID
}
