package events

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EventPublisher is the push-notification sink for domain events.
type EventPublisher interface {
	Publish(ctx context.Context, event interface{}) error
}

// Order domain events
type OrderCreatedEvent struct {
	OrderID     uuid.UUID       `json:"orderId"`
	OrderNumber string          `json:"orderNumber"`
	Status      string          `json:"status"`
	ItemsTotal  decimal.Decimal `json:"itemsTotal"`
	CreatedBy   string          `json:"createdBy"`
	OccurredAt  time.Time       `json:"occurredAt"`
}

type OrderUpdatedEvent struct {
	OrderID     uuid.UUID       `json:"orderId"`
	OrderNumber string          `json:"orderNumber"`
	ItemsTotal  decimal.Decimal `json:"itemsTotal"`
	OccurredAt  time.Time       `json:"occurredAt"`
}

type OrderDeletedEvent struct {
	OrderID     uuid.UUID `json:"orderId"`
	OrderNumber string    `json:"orderNumber"`
	OccurredAt  time.Time `json:"occurredAt"`
}

type OrderStatusChangedEvent struct {
	OrderID     uuid.UUID `json:"orderId"`
	OrderNumber string    `json:"orderNumber"`
	From        string    `json:"from"`
	To          string    `json:"to"`
	Actor       string    `json:"actor"`
	Warnings    int       `json:"warnings,omitempty"`
	OccurredAt  time.Time `json:"occurredAt"`
}

// Stock change reasons
const (
	ReasonCreated    = "created"
	ReasonPurchase   = "purchase"
	ReasonAllocation = "allocation"
	ReasonRestore    = "restore"
	ReasonEdit       = "edit"
	ReasonDeleted    = "deleted"
)

// Stock domain events
type InventoryStockChangedEvent struct {
	ItemID     uuid.UUID       `json:"itemId"`
	Name       string          `json:"name"`
	Delta      decimal.Decimal `json:"delta"`
	NewStock   decimal.Decimal `json:"newStock"`
	Reason     string          `json:"reason"`
	OrderID    *uuid.UUID      `json:"orderId,omitempty"`
	Actor      string          `json:"actor"`
	OccurredAt time.Time       `json:"occurredAt"`
}

type LowStockDetectedEvent struct {
	ItemID         uuid.UUID       `json:"itemId"`
	Name           string          `json:"name"`
	CurrentStock   decimal.Decimal `json:"currentStock"`
	ThresholdValue decimal.Decimal `json:"thresholdValue"`
	Unit           string          `json:"unit"`
	OccurredAt     time.Time       `json:"occurredAt"`
}

type FinishedGoodsStockChangedEvent struct {
	FinishedGoodsID uuid.UUID       `json:"finishedGoodsId"`
	Name            string          `json:"name"`
	TransactionType string          `json:"transactionType"`
	Quantity        decimal.Decimal `json:"quantity"`
	NewStock        decimal.Decimal `json:"newStock"`
	OrderID         *uuid.UUID      `json:"orderId,omitempty"`
	OccurredAt      time.Time       `json:"occurredAt"`
}

// Event type names carried in the event-type header.
const (
	TypeOrderCreated              = "OrderCreated"
	TypeOrderUpdated              = "OrderUpdated"
	TypeOrderDeleted              = "OrderDeleted"
	TypeOrderStatusChanged        = "OrderStatusChanged"
	TypeInventoryStockChanged     = "InventoryStockChanged"
	TypeLowStockDetected          = "LowStockDetected"
	TypeFinishedGoodsStockChanged = "FinishedGoodsStockChanged"
)

// EventType returns the event type as string
func EventType(event interface{}) string {
	switch event.(type) {
	case OrderCreatedEvent:
		return TypeOrderCreated
	case OrderUpdatedEvent:
		return TypeOrderUpdated
	case OrderDeletedEvent:
		return TypeOrderDeleted
	case OrderStatusChangedEvent:
		return TypeOrderStatusChanged
	case InventoryStockChangedEvent:
		return TypeInventoryStockChanged
	case LowStockDetectedEvent:
		return TypeLowStockDetected
	case FinishedGoodsStockChangedEvent:
		return TypeFinishedGoodsStockChanged
	default:
		return "Unknown"
	}
}

// PartitionKey keys order events by order and stock events by item.
func PartitionKey(event interface{}) string {
	switch e := event.(type) {
	case OrderCreatedEvent:
		return e.OrderID.String()
	case OrderUpdatedEvent:
		return e.OrderID.String()
	case OrderDeletedEvent:
		return e.OrderID.String()
	case OrderStatusChangedEvent:
		return e.OrderID.String()
	case InventoryStockChangedEvent:
		return e.ItemID.String()
	case LowStockDetectedEvent:
		return e.ItemID.String()
	case FinishedGoodsStockChangedEvent:
		return e.FinishedGoodsID.String()
	}
	return ""
}

// IsOrderEvent reports whether the event belongs on the orders topic.
func IsOrderEvent(event interface{}) bool {
	switch event.(type) {
	case OrderCreatedEvent, OrderUpdatedEvent, OrderDeletedEvent, OrderStatusChangedEvent:
		return true
	}
	return false
}
