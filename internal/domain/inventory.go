package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InventoryItem is a raw material tracked by the inventory ledger.
type InventoryItem struct {
	ID               uuid.UUID       `json:"id"`
	Name             string          `json:"name"`
	Unit             Unit            `json:"unit"`
	CurrentStock     decimal.Decimal `json:"currentStock"`
	ThresholdValue   decimal.Decimal `json:"thresholdValue"`
	OpeningStock     decimal.Decimal `json:"openingStock"`
	OpeningStockDate time.Time       `json:"openingStockDate"`
	PurchaseHistory  []PurchaseEntry `json:"purchaseHistory"`
	LastUpdated      time.Time       `json:"lastUpdated"`
	UpdatedBy        string          `json:"updatedBy"`
	Version          int             `json:"-"` // For optimistic locking
}

// PurchaseEntry is one append-only record of stock bought in.
type PurchaseEntry struct {
	Quantity decimal.Decimal `json:"quantity"`
	Cost     decimal.Decimal `json:"cost"`
	Vendor   string          `json:"vendor,omitempty"`
	Date     time.Time       `json:"date"`
	Actor    string          `json:"actor"`
}

// NewInventoryItem validates the catalog entry and opens the stock at openingStock.
func NewInventoryItem(name string, unit Unit, openingStock, threshold decimal.Decimal, actor string, at time.Time) (*InventoryItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, newValidationError("name", "name is required")
	}
	if !unit.Valid() {
		return nil, newValidationError("unit", "unknown unit")
	}
	if openingStock.IsNegative() {
		return nil, newValidationError("openingStock", "opening stock cannot be negative")
	}
	if threshold.IsNegative() {
		return nil, newValidationError("thresholdValue", "threshold cannot be negative")
	}

	return &InventoryItem{
		ID:               uuid.New(),
		Name:             name,
		Unit:             unit,
		CurrentStock:     openingStock,
		ThresholdValue:   threshold,
		OpeningStock:     openingStock,
		OpeningStockDate: at,
		PurchaseHistory:  []PurchaseEntry{},
		LastUpdated:      at,
		UpdatedBy:        actor,
		Version:          1,
	}, nil
}

// IsLowStock reports currentStock <= thresholdValue.
func (i *InventoryItem) IsLowStock() bool {
	return i.CurrentStock.LessThanOrEqual(i.ThresholdValue)
}

// AdjustStock applies a signed delta. The stock never goes below zero.
func (i *InventoryItem) AdjustStock(delta decimal.Decimal, actor string, at time.Time) error {
	newStock := i.CurrentStock.Add(delta)
	if newStock.IsNegative() {
		return &InsufficientStockError{
			ItemID:    i.ID,
			ItemName:  i.Name,
			Required:  delta.Neg(),
			Available: i.CurrentStock,
			Unit:      i.Unit,
		}
	}
	i.CurrentStock = newStock
	i.LastUpdated = at
	i.UpdatedBy = actor
	i.Version++
	return nil
}

// RecordPurchase appends to the purchase log and increases the stock.
func (i *InventoryItem) RecordPurchase(entry PurchaseEntry) error {
	if !entry.Quantity.IsPositive() {
		return ErrInvalidQuantity
	}
	if entry.Cost.IsNegative() {
		return newValidationError("cost", "cost cannot be negative")
	}
	i.PurchaseHistory = append(i.PurchaseHistory, entry)
	i.CurrentStock = i.CurrentStock.Add(entry.Quantity)
	i.LastUpdated = entry.Date
	i.UpdatedBy = entry.Actor
	i.Version++
	return nil
}

// Clone returns a deep copy so stored items are never shared with callers.
func (i *InventoryItem) Clone() *InventoryItem {
	c := *i
	c.PurchaseHistory = append([]PurchaseEntry(nil), i.PurchaseHistory...)
	return &c
}
