package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ValidationError reports missing or malformed input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NotFoundError reports a dangling reference to an order, item, recipe or product.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ConflictError reports a duplicate unique value.
type ConflictError struct {
	Resource string
	Field    string
	Value    string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s with %s %q already exists", e.Resource, e.Field, e.Value)
}

// InsufficientStockError is raised when a demand exceeds the stock on hand.
type InsufficientStockError struct {
	ItemID    uuid.UUID
	ItemName  string
	Required  decimal.Decimal
	Available decimal.Decimal
	Unit      Unit
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: required %s %s, available %s %s",
		e.ItemName, e.Required.String(), e.Unit, e.Available.String(), e.Unit)
}

// InvalidStateError reports a mutation that the current status does not allow.
type InvalidStateError struct {
	Resource  string
	ID        string
	State     string
	Operation string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("cannot %s %s %s in status %s", e.Operation, e.Resource, e.ID, e.State)
}

func newValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// ErrInvalidQuantity is returned for non-positive quantities on ledger writes.
var ErrInvalidQuantity = &ValidationError{Field: "quantity", Message: "quantity must be greater than zero"}

// ErrConcurrentUpdate reports that a record changed between read and write.
var ErrConcurrentUpdate = errors.New("record was modified concurrently, retry the request")
