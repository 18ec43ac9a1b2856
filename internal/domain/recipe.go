package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Recipe is a bill of materials for one finished product, expressed for
// StandardQuantity units of yield.
type Recipe struct {
	ID               uuid.UUID          `json:"id"`
	Name             string             `json:"name"`
	Description      string             `json:"description,omitempty"`
	Ingredients      []RecipeIngredient `json:"ingredients"`
	StandardUnit     Unit               `json:"standardUnit"`
	StandardQuantity decimal.Decimal    `json:"standardQuantity"`
	UnitPrice        decimal.Decimal    `json:"unitPrice"`
	CreatedBy        string             `json:"createdBy"`
	CreatedAt        time.Time          `json:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt"`
}

type RecipeIngredient struct {
	InventoryItemID uuid.UUID       `json:"inventoryItem"`
	Quantity        decimal.Decimal `json:"quantity"`
	Unit            Unit            `json:"unit"`
}

// Validate checks the recipe invariants. Existence of the referenced
// inventory items is checked by the catalog.
func (r *Recipe) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return newValidationError("name", "name is required")
	}
	if len(r.Ingredients) == 0 {
		return newValidationError("ingredients", "at least one ingredient is required")
	}
	for _, ing := range r.Ingredients {
		if ing.InventoryItemID == uuid.Nil {
			return newValidationError("ingredients.inventoryItem", "inventory item is required")
		}
		if !ing.Quantity.IsPositive() {
			return newValidationError("ingredients.quantity", "ingredient quantity must be greater than zero")
		}
		if !ing.Unit.Valid() {
			return newValidationError("ingredients.unit", "unknown unit")
		}
	}
	if !r.StandardUnit.Valid() {
		return newValidationError("standardUnit", "unknown unit")
	}
	if r.StandardQuantity.LessThan(decimal.NewFromInt(1)) {
		return newValidationError("standardQuantity", "standard quantity must be at least 1")
	}
	if r.UnitPrice.IsNegative() {
		return newValidationError("unitPrice", "unit price cannot be negative")
	}
	return nil
}

// Yield is the standard quantity guarded against zero or negative values,
// which count as a yield of one.
func (r *Recipe) Yield() decimal.Decimal {
	if !r.StandardQuantity.IsPositive() {
		return decimal.NewFromInt(1)
	}
	return r.StandardQuantity
}

// Scale returns how much of the ingredient an order of quantity units
// consumes: ingredient.quantity / yield * quantity. The multiplication runs
// first so exact inputs stay exact.
func (r *Recipe) Scale(ing RecipeIngredient, quantity decimal.Decimal) decimal.Decimal {
	return ing.Quantity.Mul(quantity).Div(r.Yield())
}

func (r *Recipe) Clone() *Recipe {
	c := *r
	c.Ingredients = append([]RecipeIngredient(nil), r.Ingredients...)
	return &c
}
