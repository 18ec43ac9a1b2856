package commands

import (
	"kitchen-service/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateItemCommand represents a command to create a new inventory item
type CreateItemCommand struct {
	Name           string
	Unit           domain.Unit
	OpeningStock   decimal.Decimal
	ThresholdValue decimal.Decimal
}

// UpdateItemCommand represents a command to update scalar fields of an item.
// Nil fields are left untouched.
type UpdateItemCommand struct {
	ID             uuid.UUID
	Name           *string
	Unit           *domain.Unit
	ThresholdValue *decimal.Decimal
	CurrentStock   *decimal.Decimal
}

// RecordPurchaseCommand represents a command to book purchased stock
type RecordPurchaseCommand struct {
	ID       uuid.UUID
	Quantity decimal.Decimal
	Cost     decimal.Decimal
	Vendor   string
}

// DeleteItemCommand represents a command to delete an inventory item
type DeleteItemCommand struct {
	ID uuid.UUID
}
