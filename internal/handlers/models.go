package handlers

import (
	"time"

	"kitchen-service/internal/commands"
	"kitchen-service/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Quantities, prices and costs accept JSON numbers or decimal strings.

// SuccessResponse represents a success response
type SuccessResponse struct {
	Message string `json:"message" example:"order deleted successfully"`
}

// CustomerRequest is the embedded customer of an order
type CustomerRequest struct {
	Name        string `json:"name" example:"Ada Lovelace"`
	PhoneNumber string `json:"phoneNumber" example:"+44 20 7946 0000"`
	Address     string `json:"address,omitempty" example:"12 St James's Square"`
	Email       string `json:"email,omitempty" example:"ada@example.com"`
}

func (r CustomerRequest) toDomain() domain.Customer {
	return domain.Customer{Name: r.Name, PhoneNumber: r.PhoneNumber, Address: r.Address, Email: r.Email}
}

// OrderLineRequest is one recipe and quantity of an order
type OrderLineRequest struct {
	Recipe   string          `json:"recipe" example:"550e8400-e29b-41d4-a716-446655440000"`
	Quantity decimal.Decimal `json:"quantity" swaggertype:"number" example:"2"`
}

// CreateOrderRequest represents the request body for placing an order
type CreateOrderRequest struct {
	Customer     CustomerRequest    `json:"customer"`
	Items        []OrderLineRequest `json:"items"`
	DeliveryDate *time.Time         `json:"deliveryDate,omitempty" example:"2026-03-12T18:00:00Z"`
	Notes        string             `json:"notes,omitempty" example:"extra basil"`
}

// UpdateOrderRequest changes a Draft order. Omitted fields are left untouched.
type UpdateOrderRequest struct {
	Customer     *CustomerRequest   `json:"customer,omitempty"`
	Items        []OrderLineRequest `json:"items,omitempty"`
	DeliveryDate *time.Time         `json:"deliveryDate,omitempty"`
	Notes        *string            `json:"notes,omitempty"`
}

// UpdateOrderStatusRequest moves an order through its lifecycle
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required" example:"Ingredients Allocated"`
	Notes  string `json:"notes,omitempty" example:"flour checked"`
}

func parseLines(lines []OrderLineRequest) ([]commands.OrderLine, error) {
	if lines == nil {
		return nil, nil
	}
	result := make([]commands.OrderLine, len(lines))
	for i, l := range lines {
		id, err := parseUUID("items.recipe", l.Recipe)
		if err != nil {
			return nil, err
		}
		result[i] = commands.OrderLine{RecipeID: id, Quantity: l.Quantity}
	}
	return result, nil
}

// CreateItemRequest represents the request body for creating an inventory item
type CreateItemRequest struct {
	Name           string          `json:"name" binding:"required" example:"Flour"`
	Unit           string          `json:"unit" binding:"required" example:"kg"`
	OpeningStock   decimal.Decimal `json:"openingStock" swaggertype:"number" example:"25"`
	ThresholdValue decimal.Decimal `json:"thresholdValue" swaggertype:"number" example:"5"`
}

// UpdateItemRequest edits scalar fields of an inventory item
type UpdateItemRequest struct {
	Name           *string          `json:"name,omitempty" example:"Flour 00"`
	Unit           *string          `json:"unit,omitempty" example:"kg"`
	ThresholdValue *decimal.Decimal `json:"thresholdValue,omitempty" swaggertype:"number" example:"4"`
	CurrentStock   *decimal.Decimal `json:"currentStock,omitempty" swaggertype:"number" example:"20"`
}

// PurchaseRequest books purchased stock
type PurchaseRequest struct {
	Quantity decimal.Decimal `json:"quantity" swaggertype:"number" example:"10"`
	Cost     decimal.Decimal `json:"cost" swaggertype:"number" example:"12.40"`
	Vendor   string          `json:"vendor,omitempty" example:"Mill & Co"`
}

// IngredientRequest is one bill-of-materials line of a recipe
type IngredientRequest struct {
	InventoryItem string          `json:"inventoryItem" example:"550e8400-e29b-41d4-a716-446655440000"`
	Quantity      decimal.Decimal `json:"quantity" swaggertype:"number" example:"0.35"`
	Unit          string          `json:"unit" example:"kg"`
}

// CreateRecipeRequest represents the request body for creating a recipe
type CreateRecipeRequest struct {
	Name             string              `json:"name" binding:"required" example:"Margherita"`
	Description      string              `json:"description,omitempty" example:"Tomato, mozzarella, basil"`
	Ingredients      []IngredientRequest `json:"ingredients"`
	StandardUnit     string              `json:"standardUnit" binding:"required" example:"pcs"`
	StandardQuantity decimal.Decimal     `json:"standardQuantity" swaggertype:"number" example:"1"`
	UnitPrice        decimal.Decimal     `json:"unitPrice" swaggertype:"number" example:"8.50"`
}

// UpdateRecipeRequest replaces the given recipe fields
type UpdateRecipeRequest struct {
	Name             *string             `json:"name,omitempty"`
	Description      *string             `json:"description,omitempty"`
	Ingredients      []IngredientRequest `json:"ingredients,omitempty"`
	StandardUnit     *string             `json:"standardUnit,omitempty"`
	StandardQuantity *decimal.Decimal    `json:"standardQuantity,omitempty" swaggertype:"number"`
	UnitPrice        *decimal.Decimal    `json:"unitPrice,omitempty" swaggertype:"number"`
}

func parseIngredients(reqs []IngredientRequest) ([]domain.RecipeIngredient, error) {
	if reqs == nil {
		return nil, nil
	}
	result := make([]domain.RecipeIngredient, len(reqs))
	for i, r := range reqs {
		id, err := parseUUID("ingredients.inventoryItem", r.InventoryItem)
		if err != nil {
			return nil, err
		}
		unit, err := domain.ParseUnit(r.Unit)
		if err != nil {
			return nil, err
		}
		result[i] = domain.RecipeIngredient{InventoryItemID: id, Quantity: r.Quantity, Unit: unit}
	}
	return result, nil
}

// CreateFinishedGoodsRequest represents the request body for a finished product
type CreateFinishedGoodsRequest struct {
	Name   string `json:"name" binding:"required" example:"Margherita (boxed)"`
	Recipe string `json:"recipe" binding:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	Unit   string `json:"unit" binding:"required" example:"pcs"`
}

// UpdateFinishedGoodsRequest changes name, recipe or unit
type UpdateFinishedGoodsRequest struct {
	Name   *string `json:"name,omitempty"`
	Recipe *string `json:"recipe,omitempty"`
	Unit   *string `json:"unit,omitempty"`
}

// TransactionRequest books a manual finished-goods movement
type TransactionRequest struct {
	TransactionType string          `json:"transactionType" binding:"required" example:"Wasted"`
	Quantity        decimal.Decimal `json:"quantity" swaggertype:"number" example:"2"`
	Notes           string          `json:"notes,omitempty" example:"dropped tray"`
	OrderID         *string         `json:"orderId,omitempty"`
}

func parseUUID(field, value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, &domain.ValidationError{Field: field, Message: "invalid id"}
	}
	return id, nil
}

func parseOptionalUnit(value *string) (*domain.Unit, error) {
	if value == nil {
		return nil, nil
	}
	unit, err := domain.ParseUnit(*value)
	if err != nil {
		return nil, err
	}
	return &unit, nil
}
