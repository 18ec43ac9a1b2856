package repository

import (
	"context"
	"fmt"
	"time"

	"kitchen-service/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrOptimisticLockFailed is returned when a versioned write loses a race.
var ErrOptimisticLockFailed = fmt.Errorf("optimistic lock failed - version mismatch: %w", domain.ErrConcurrentUpdate)

// InventoryFilter narrows List results.
type InventoryFilter struct {
	LowStockOnly bool
}

// OrderFilter narrows List results. Zero values match everything.
type OrderFilter struct {
	Status *domain.OrderStatus
	From   *time.Time
	To     *time.Time
}

// Matches reports whether o passes the filter.
func (f OrderFilter) Matches(o *domain.Order) bool {
	if f.Status != nil && o.Status != *f.Status {
		return false
	}
	if f.From != nil && o.OrderDate.Before(*f.From) {
		return false
	}
	if f.To != nil && o.OrderDate.After(*f.To) {
		return false
	}
	return true
}

// InventoryRepository persists raw-material stock items.
// Update expects item.Version to be the version that was read and bumps it on success.
// AdjustStock applies a signed delta only if the result stays non-negative.
type InventoryRepository interface {
	Create(ctx context.Context, item *domain.InventoryItem) error
	Update(ctx context.Context, item *domain.InventoryItem) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.InventoryItem, error)
	List(ctx context.Context, filter InventoryFilter) ([]*domain.InventoryItem, error)
	AdjustStock(ctx context.Context, id uuid.UUID, delta decimal.Decimal, actor string, at time.Time) (*domain.InventoryItem, error)
	AppendPurchase(ctx context.Context, id uuid.UUID, entry domain.PurchaseEntry) (*domain.InventoryItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// RecipeRepository persists the recipe catalog.
type RecipeRepository interface {
	Create(ctx context.Context, recipe *domain.Recipe) error
	Update(ctx context.Context, recipe *domain.Recipe) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Recipe, error)
	List(ctx context.Context) ([]*domain.Recipe, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// OrderRepository persists orders. List returns newest first.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	Update(ctx context.Context, order *domain.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	List(ctx context.Context, filter OrderFilter) ([]*domain.Order, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// FinishedGoodsRepository persists finished-goods stock.
// ApplyTransaction is the conditional stock write for this ledger.
type FinishedGoodsRepository interface {
	Create(ctx context.Context, fg *domain.FinishedGoods) error
	Update(ctx context.Context, fg *domain.FinishedGoods) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.FinishedGoods, error)
	FindByRecipeID(ctx context.Context, recipeID uuid.UUID) (*domain.FinishedGoods, error)
	List(ctx context.Context) ([]*domain.FinishedGoods, error)
	ApplyTransaction(ctx context.Context, id uuid.UUID, tx TransactionInput) (*domain.FinishedGoods, domain.StockTransaction, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// TransactionInput carries the arguments of FinishedGoods.Apply.
type TransactionInput struct {
	Type     domain.TransactionType
	Quantity decimal.Decimal
	OrderID  *uuid.UUID
	Notes    string
	Actor    string
	At       time.Time
}

func notFound(resource string, id uuid.UUID) error {
	return &domain.NotFoundError{Resource: resource, ID: id.String()}
}

func conflict(resource, field, value string) error {
	return &domain.ConflictError{Resource: resource, Field: field, Value: value}
}
