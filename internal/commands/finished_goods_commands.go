package commands

import (
	"kitchen-service/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateFinishedGoodsCommand struct {
	Name     string
	RecipeID uuid.UUID
	Unit     domain.Unit
}

// UpdateFinishedGoodsCommand covers name, recipe and unit only.
type UpdateFinishedGoodsCommand struct {
	ID       uuid.UUID
	Name     *string
	RecipeID *uuid.UUID
	Unit     *domain.Unit
}

// RecordTransactionCommand books a manual finished-goods movement.
type RecordTransactionCommand struct {
	ID              uuid.UUID
	TransactionType domain.TransactionType
	Quantity        decimal.Decimal
	Notes           string
	OrderID         *uuid.UUID
}
