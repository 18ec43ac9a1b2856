package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"kitchen-service/internal/domain"
)

// Error codes carried in the "error" field of every error response.
const (
	CodeInvalidRequest    = "InvalidRequest"
	CodeValidation        = "ValidationError"
	CodeUnauthorized      = "Unauthorized"
	CodeForbidden         = "Forbidden"
	CodeNotFound          = "NotFound"
	CodeConflict          = "Conflict"
	CodeInsufficientStock = "InsufficientStock"
	CodeInvalidState      = "InvalidState"
	CodeConcurrentUpdate  = "ConcurrentUpdate"
	CodeInternal          = "InternalError"
)

// StandardError represents a standardized error response
type StandardError struct {
	Code    string                 `json:"error"`   // Error code/type (e.g., "ValidationError", "NotFound")
	Message string                 `json:"message"` // Human-readable error message
	Details string                 `json:"details"` // Additional details (field name, ids, ...)
	Meta    map[string]interface{} `json:"meta,omitempty"`
}

// Error implements the error interface
func (e *StandardError) Error() string {
	return e.Message
}

// HTTPStatus returns the appropriate HTTP status code for the error
func (e *StandardError) HTTPStatus() int {
	switch e.Code {
	case CodeInvalidRequest, CodeValidation, CodeInsufficientStock, CodeInvalidState:
		return http.StatusBadRequest
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict, CodeConcurrentUpdate:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// NewStandardError creates a new StandardError
func NewStandardError(errorCode, message, details string) *StandardError {
	return &StandardError{
		Code:    errorCode,
		Message: message,
		Details: details,
	}
}

func NewInvalidRequest(message, details string) *StandardError {
	return NewStandardError(CodeInvalidRequest, message, details)
}

func NewValidationError(message, field string) *StandardError {
	return NewStandardError(CodeValidation, message, fmt.Sprintf("Field: %s", field))
}

func NewUnauthorized(message, details string) *StandardError {
	return NewStandardError(CodeUnauthorized, message, details)
}

func NewForbidden(role string) *StandardError {
	return NewStandardError(CodeForbidden, "insufficient permissions", fmt.Sprintf("Role: %s", role))
}

func NewNotFound(resource, id string) *StandardError {
	return NewStandardError(CodeNotFound, resource+" not found", fmt.Sprintf("ID: %s", id))
}

func NewInternalError(message string, err error) *StandardError {
	details := ""
	if err != nil {
		details = err.Error()
	}
	return NewStandardError(CodeInternal, message, details)
}

// FromError translates a service error into its wire form. Errors that are
// not part of the domain taxonomy become InternalError without leaking details.
func FromError(err error) *StandardError {
	var (
		std   *StandardError
		valid *domain.ValidationError
		nf    *domain.NotFoundError
		cf    *domain.ConflictError
		stock *domain.InsufficientStockError
		state *domain.InvalidStateError
	)
	switch {
	case stderrors.As(err, &std):
		return std
	case stderrors.As(err, &stock):
		return &StandardError{
			Code:    CodeInsufficientStock,
			Message: "insufficient stock available",
			Details: stock.Error(),
			Meta: map[string]interface{}{
				"itemId":    stock.ItemID.String(),
				"itemName":  stock.ItemName,
				"required":  stock.Required.String(),
				"available": stock.Available.String(),
				"unit":      string(stock.Unit),
			},
		}
	case stderrors.As(err, &valid):
		return NewValidationError(valid.Message, valid.Field)
	case stderrors.As(err, &nf):
		return NewNotFound(nf.Resource, nf.ID)
	case stderrors.As(err, &cf):
		return NewStandardError(CodeConflict, cf.Error(), fmt.Sprintf("Field: %s", cf.Field))
	case stderrors.As(err, &state):
		return NewStandardError(CodeInvalidState, state.Error(), fmt.Sprintf("Status: %s", state.State))
	case stderrors.Is(err, domain.ErrConcurrentUpdate):
		return NewStandardError(CodeConcurrentUpdate, "record was modified concurrently", "retry the request")
	default:
		return NewInternalError("internal server error", nil)
	}
}
