package commands

import (
	"time"

	"kitchen-service/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderLine is one recipe and ordered quantity.
type OrderLine struct {
	RecipeID uuid.UUID
	Quantity decimal.Decimal
}

// CreateOrderCommand represents a command to place a new order
type CreateOrderCommand struct {
	Customer     domain.Customer
	Items        []OrderLine
	DeliveryDate *time.Time
	Notes        string
}

// UpdateOrderCommand changes a Draft order. Nil fields are left untouched.
type UpdateOrderCommand struct {
	ID           uuid.UUID
	Customer     *domain.Customer
	Items        []OrderLine
	DeliveryDate *time.Time
	Notes        *string
}

// UpdateOrderStatusCommand represents a command to move an order through its lifecycle
type UpdateOrderStatusCommand struct {
	ID     uuid.UUID
	Status domain.OrderStatus
	Notes  string
}

// DeleteOrderCommand represents a command to delete an order
type DeleteOrderCommand struct {
	ID uuid.UUID
}
