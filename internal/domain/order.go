package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the closed set of order lifecycle states.
type OrderStatus int

const (
	StatusDraft OrderStatus = iota + 1
	StatusIngredientsAllocated
	StatusInProduction
	StatusReadyForDispatch
	StatusDispatched
	StatusDelivered
	StatusCancelled
)

var statusLabels = map[OrderStatus]string{
	StatusDraft:                "Draft",
	StatusIngredientsAllocated: "Ingredients Allocated",
	StatusInProduction:         "In Production",
	StatusReadyForDispatch:     "Ready for Dispatch",
	StatusDispatched:           "Dispatched",
	StatusDelivered:            "Delivered",
	StatusCancelled:            "Cancelled",
}

// AllStatuses lists the states in lifecycle order.
var AllStatuses = []OrderStatus{
	StatusDraft,
	StatusIngredientsAllocated,
	StatusInProduction,
	StatusReadyForDispatch,
	StatusDispatched,
	StatusDelivered,
	StatusCancelled,
}

func (s OrderStatus) String() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return fmt.Sprintf("OrderStatus(%d)", int(s))
}

func (s OrderStatus) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

// IsTerminal reports Delivered and Cancelled.
func (s OrderStatus) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// ParseOrderStatus matches the wire labels case-insensitively. Separators
// are ignored, so "ready_for_dispatch" and "ReadyForDispatch" also match.
func ParseOrderStatus(s string) (OrderStatus, error) {
	key := normalizeStatus(s)
	for status, label := range statusLabels {
		if normalizeStatus(label) == key {
			return status, nil
		}
	}
	return 0, &ValidationError{Field: "status", Message: fmt.Sprintf("invalid status %q", s)}
}

func normalizeStatus(s string) string {
	r := strings.NewReplacer(" ", "", "_", "", "-", "")
	return strings.ToLower(r.Replace(strings.TrimSpace(s)))
}

func (s OrderStatus) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid order status %d", int(s))
	}
	return []byte(s.String()), nil
}

func (s *OrderStatus) UnmarshalText(text []byte) error {
	parsed, err := ParseOrderStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

var forwardTransitions = map[OrderStatus]OrderStatus{
	StatusDraft:                StatusIngredientsAllocated,
	StatusIngredientsAllocated: StatusInProduction,
	StatusInProduction:         StatusReadyForDispatch,
	StatusReadyForDispatch:     StatusDispatched,
	StatusDispatched:           StatusDelivered,
}

// CanTransitionTo is the strict reachability table: one step forward,
// Cancelled from any non-terminal state, or a resubmission of the same status.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s == next {
		return true
	}
	if s.IsTerminal() {
		return false
	}
	if next == StatusCancelled {
		return true
	}
	return forwardTransitions[s] == next
}

type Customer struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address,omitempty"`
	Email       string `json:"email,omitempty"`
}

func (c *Customer) Validate() error {
	c.Name = strings.TrimSpace(c.Name)
	c.PhoneNumber = strings.TrimSpace(c.PhoneNumber)
	if c.Name == "" {
		return newValidationError("customer.name", "customer name is required")
	}
	if c.PhoneNumber == "" {
		return newValidationError("customer.phoneNumber", "customer phone number is required")
	}
	return nil
}

type OrderItem struct {
	RecipeID  uuid.UUID       `json:"recipe"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}

// IngredientRequirement is one entry of an aggregated ingredient demand.
type IngredientRequirement struct {
	InventoryItemID uuid.UUID       `json:"inventoryItem"`
	Quantity        decimal.Decimal `json:"quantity"`
	Unit            Unit            `json:"unit"`
}

type StatusEntry struct {
	Status    OrderStatus `json:"status"`
	Timestamp time.Time   `json:"timestamp"`
	Actor     string      `json:"actor"`
	Notes     string      `json:"notes,omitempty"`
}

// Order owns a snapshot of its aggregated ingredient demand so that later
// recipe edits do not change historical orders.
type Order struct {
	ID               uuid.UUID               `json:"id"`
	OrderNumber      string                  `json:"orderNumber"`
	Customer         Customer                `json:"customer"`
	Items            []OrderItem             `json:"items"`
	TotalIngredients []IngredientRequirement `json:"totalIngredients"`
	Status           OrderStatus             `json:"status"`
	StatusHistory    []StatusEntry           `json:"statusHistory"`
	OrderDate        time.Time               `json:"orderDate"`
	DeliveryDate     *time.Time              `json:"deliveryDate,omitempty"`
	Notes            string                  `json:"notes,omitempty"`
	CreatedBy        string                  `json:"createdBy"`
	ItemsTotal       decimal.Decimal         `json:"itemsTotal"`
	UpdatedAt        time.Time               `json:"updatedAt"`
	Version          int                     `json:"-"`
}

// NewOrderNumber builds ORD-YYYYMMDD-XXXXXX.
func NewOrderNumber(at time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:6]
	return fmt.Sprintf("ORD-%s-%s", at.Format("20060102"), suffix)
}

// RecordStatus appends a history entry and moves the order to status.
// Prior entries are never touched.
func (o *Order) RecordStatus(status OrderStatus, actor, notes string, at time.Time) {
	o.StatusHistory = append(o.StatusHistory, StatusEntry{
		Status:    status,
		Timestamp: at,
		Actor:     actor,
		Notes:     notes,
	})
	o.Status = status
	o.UpdatedAt = at
}

// RecomputeTotals refreshes line totals and the order total.
func (o *Order) RecomputeTotals() {
	total := decimal.Zero
	for i := range o.Items {
		o.Items[i].LineTotal = o.Items[i].UnitPrice.Mul(o.Items[i].Quantity)
		total = total.Add(o.Items[i].LineTotal)
	}
	o.ItemsTotal = total
}

func (o *Order) IsEditable() bool {
	return o.Status == StatusDraft
}

func (o *Order) IsDeletable() bool {
	return o.Status == StatusDraft || o.Status == StatusCancelled
}

func (o *Order) Clone() *Order {
	c := *o
	c.Items = append([]OrderItem(nil), o.Items...)
	c.TotalIngredients = append([]IngredientRequirement(nil), o.TotalIngredients...)
	c.StatusHistory = append([]StatusEntry(nil), o.StatusHistory...)
	if o.DeliveryDate != nil {
		d := *o.DeliveryDate
		c.DeliveryDate = &d
	}
	return &c
}
