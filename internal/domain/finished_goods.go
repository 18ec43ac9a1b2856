package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionProduced TransactionType = "Produced"
	TransactionSold     TransactionType = "Sold"
	TransactionAdjusted TransactionType = "Adjusted"
	TransactionWasted   TransactionType = "Wasted"
)

// ParseTransactionType matches case-insensitively.
func ParseTransactionType(s string) (TransactionType, error) {
	for _, t := range []TransactionType{TransactionProduced, TransactionSold, TransactionAdjusted, TransactionWasted} {
		if strings.EqualFold(strings.TrimSpace(s), string(t)) {
			return t, nil
		}
	}
	return "", &ValidationError{Field: "transactionType", Message: fmt.Sprintf("invalid transaction type %q", s)}
}

// Decreases reports whether the transaction takes units out of stock.
func (t TransactionType) Decreases() bool {
	return t == TransactionSold || t == TransactionWasted
}

// StockTransaction is one append-only finished-goods history entry.
// Quantity is signed: Sold and Wasted are stored as negative deltas.
type StockTransaction struct {
	TransactionType TransactionType `json:"transactionType"`
	Quantity        decimal.Decimal `json:"quantity"`
	Date            time.Time       `json:"date"`
	OrderID         *uuid.UUID      `json:"orderId,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	Actor           string          `json:"actor"`
}

// FinishedGoods is completed, sellable stock derived from a recipe.
type FinishedGoods struct {
	ID               uuid.UUID          `json:"id"`
	Name             string             `json:"name"`
	RecipeID         uuid.UUID          `json:"recipe"`
	Unit             Unit               `json:"unit"`
	CurrentStock     decimal.Decimal    `json:"currentStock"`
	StockHistory     []StockTransaction `json:"stockHistory"`
	LastProducedDate *time.Time         `json:"lastProducedDate,omitempty"`
	UpdatedAt        time.Time          `json:"updatedAt"`
	Version          int                `json:"-"`
}

func NewFinishedGoods(name string, recipeID uuid.UUID, unit Unit, at time.Time) (*FinishedGoods, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, newValidationError("name", "name is required")
	}
	if recipeID == uuid.Nil {
		return nil, newValidationError("recipe", "recipe is required")
	}
	if !unit.Valid() {
		return nil, newValidationError("unit", "unknown unit")
	}
	return &FinishedGoods{
		ID:           uuid.New(),
		Name:         name,
		RecipeID:     recipeID,
		Unit:         unit,
		CurrentStock: decimal.Zero,
		StockHistory: []StockTransaction{},
		UpdatedAt:    at,
		Version:      1,
	}, nil
}

// Apply records a transaction given with a positive quantity. The signed
// delta is derived from the transaction type and the stock never goes
// below zero.
func (f *FinishedGoods) Apply(txType TransactionType, quantity decimal.Decimal, orderID *uuid.UUID, notes, actor string, at time.Time) (StockTransaction, error) {
	if !quantity.IsPositive() {
		return StockTransaction{}, ErrInvalidQuantity
	}
	delta := quantity
	if txType.Decreases() {
		if quantity.GreaterThan(f.CurrentStock) {
			return StockTransaction{}, &InsufficientStockError{
				ItemID:    f.ID,
				ItemName:  f.Name,
				Required:  quantity,
				Available: f.CurrentStock,
				Unit:      f.Unit,
			}
		}
		delta = quantity.Neg()
	}

	entry := StockTransaction{
		TransactionType: txType,
		Quantity:        delta,
		Date:            at,
		OrderID:         orderID,
		Notes:           notes,
		Actor:           actor,
	}
	f.CurrentStock = f.CurrentStock.Add(delta)
	f.StockHistory = append(f.StockHistory, entry)
	if txType == TransactionProduced {
		produced := at
		f.LastProducedDate = &produced
	}
	f.UpdatedAt = at
	f.Version++
	return entry, nil
}

func (f *FinishedGoods) Clone() *FinishedGoods {
	c := *f
	c.StockHistory = append([]StockTransaction(nil), f.StockHistory...)
	if f.LastProducedDate != nil {
		d := *f.LastProducedDate
		c.LastProducedDate = &d
	}
	return &c
}
