package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"kitchen-service/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InMemoryInventoryRepository keeps items in a map guarded by a mutex.
// Stored values are cloned on the way in and out.
type InMemoryInventoryRepository struct {
	mu    sync.RWMutex
	items map[uuid.UUID]*domain.InventoryItem
}

func NewInMemoryInventoryRepository() *InMemoryInventoryRepository {
	return &InMemoryInventoryRepository{
		items: make(map[uuid.UUID]*domain.InventoryItem),
	}
}

func (r *InMemoryInventoryRepository) Create(ctx context.Context, item *domain.InventoryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ID]; exists {
		return conflict("inventory item", "id", item.ID.String())
	}
	if r.nameTaken(item.Name, item.ID) {
		return conflict("inventory item", "name", item.Name)
	}
	r.items[item.ID] = item.Clone()
	return nil
}

func (r *InMemoryInventoryRepository) nameTaken(name string, except uuid.UUID) bool {
	for id, existing := range r.items {
		if id != except && strings.EqualFold(existing.Name, name) {
			return true
		}
	}
	return false
}

func (r *InMemoryInventoryRepository) Update(ctx context.Context, item *domain.InventoryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, exists := r.items[item.ID]
	if !exists {
		return notFound("inventory item", item.ID)
	}
	if stored.Version != item.Version {
		return ErrOptimisticLockFailed
	}
	if r.nameTaken(item.Name, item.ID) {
		return conflict("inventory item", "name", item.Name)
	}
	item.Version++
	r.items[item.ID] = item.Clone()
	return nil
}

func (r *InMemoryInventoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, exists := r.items[id]
	if !exists {
		return nil, notFound("inventory item", id)
	}
	return item.Clone(), nil
}

func (r *InMemoryInventoryRepository) List(ctx context.Context, filter InventoryFilter) ([]*domain.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.InventoryItem, 0, len(r.items))
	for _, item := range r.items {
		if filter.LowStockOnly && !item.IsLowStock() {
			continue
		}
		result = append(result, item.Clone())
	}
	sort.Slice(result, func(i, j int) bool {
		return strings.ToLower(result[i].Name) < strings.ToLower(result[j].Name)
	})
	return result, nil
}

func (r *InMemoryInventoryRepository) AdjustStock(ctx context.Context, id uuid.UUID, delta decimal.Decimal, actor string, at time.Time) (*domain.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, exists := r.items[id]
	if !exists {
		return nil, notFound("inventory item", id)
	}
	updated := stored.Clone()
	if err := updated.AdjustStock(delta, actor, at); err != nil {
		return nil, err
	}
	r.items[id] = updated
	return updated.Clone(), nil
}

func (r *InMemoryInventoryRepository) AppendPurchase(ctx context.Context, id uuid.UUID, entry domain.PurchaseEntry) (*domain.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, exists := r.items[id]
	if !exists {
		return nil, notFound("inventory item", id)
	}
	updated := stored.Clone()
	if err := updated.RecordPurchase(entry); err != nil {
		return nil, err
	}
	r.items[id] = updated
	return updated.Clone(), nil
}

func (r *InMemoryInventoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[id]; !exists {
		return notFound("inventory item", id)
	}
	delete(r.items, id)
	return nil
}

type InMemoryRecipeRepository struct {
	mu      sync.RWMutex
	recipes map[uuid.UUID]*domain.Recipe
}

func NewInMemoryRecipeRepository() *InMemoryRecipeRepository {
	return &InMemoryRecipeRepository{
		recipes: make(map[uuid.UUID]*domain.Recipe),
	}
}

func (r *InMemoryRecipeRepository) nameTaken(name string, except uuid.UUID) bool {
	for id, existing := range r.recipes {
		if id != except && strings.EqualFold(existing.Name, name) {
			return true
		}
	}
	return false
}

func (r *InMemoryRecipeRepository) Create(ctx context.Context, recipe *domain.Recipe) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.nameTaken(recipe.Name, recipe.ID) {
		return conflict("recipe", "name", recipe.Name)
	}
	r.recipes[recipe.ID] = recipe.Clone()
	return nil
}

func (r *InMemoryRecipeRepository) Update(ctx context.Context, recipe *domain.Recipe) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.recipes[recipe.ID]; !exists {
		return notFound("recipe", recipe.ID)
	}
	if r.nameTaken(recipe.Name, recipe.ID) {
		return conflict("recipe", "name", recipe.Name)
	}
	r.recipes[recipe.ID] = recipe.Clone()
	return nil
}

func (r *InMemoryRecipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Recipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	recipe, exists := r.recipes[id]
	if !exists {
		return nil, notFound("recipe", id)
	}
	return recipe.Clone(), nil
}

func (r *InMemoryRecipeRepository) List(ctx context.Context) ([]*domain.Recipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Recipe, 0, len(r.recipes))
	for _, recipe := range r.recipes {
		result = append(result, recipe.Clone())
	}
	sort.Slice(result, func(i, j int) bool {
		return strings.ToLower(result[i].Name) < strings.ToLower(result[j].Name)
	})
	return result, nil
}

func (r *InMemoryRecipeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.recipes[id]; !exists {
		return notFound("recipe", id)
	}
	delete(r.recipes, id)
	return nil
}

type InMemoryOrderRepository struct {
	mu     sync.RWMutex
	orders map[uuid.UUID]*domain.Order
}

func NewInMemoryOrderRepository() *InMemoryOrderRepository {
	return &InMemoryOrderRepository{
		orders: make(map[uuid.UUID]*domain.Order),
	}
}

func (r *InMemoryOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.orders {
		if existing.OrderNumber == order.OrderNumber {
			return conflict("order", "orderNumber", order.OrderNumber)
		}
	}
	r.orders[order.ID] = order.Clone()
	return nil
}

func (r *InMemoryOrderRepository) Update(ctx context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, exists := r.orders[order.ID]
	if !exists {
		return notFound("order", order.ID)
	}
	if stored.Version != order.Version {
		return ErrOptimisticLockFailed
	}
	order.Version++
	r.orders[order.ID] = order.Clone()
	return nil
}

func (r *InMemoryOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, exists := r.orders[id]
	if !exists {
		return nil, notFound("order", id)
	}
	return order.Clone(), nil
}

func (r *InMemoryOrderRepository) List(ctx context.Context, filter OrderFilter) ([]*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Order, 0, len(r.orders))
	for _, order := range r.orders {
		if filter.Matches(order) {
			result = append(result, order.Clone())
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].OrderDate.After(result[j].OrderDate)
	})
	return result, nil
}

func (r *InMemoryOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.orders[id]; !exists {
		return notFound("order", id)
	}
	delete(r.orders, id)
	return nil
}

type InMemoryFinishedGoodsRepository struct {
	mu    sync.RWMutex
	goods map[uuid.UUID]*domain.FinishedGoods
}

func NewInMemoryFinishedGoodsRepository() *InMemoryFinishedGoodsRepository {
	return &InMemoryFinishedGoodsRepository{
		goods: make(map[uuid.UUID]*domain.FinishedGoods),
	}
}

func (r *InMemoryFinishedGoodsRepository) nameTaken(name string, except uuid.UUID) bool {
	for id, existing := range r.goods {
		if id != except && strings.EqualFold(existing.Name, name) {
			return true
		}
	}
	return false
}

func (r *InMemoryFinishedGoodsRepository) Create(ctx context.Context, fg *domain.FinishedGoods) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.nameTaken(fg.Name, fg.ID) {
		return conflict("finished goods", "name", fg.Name)
	}
	r.goods[fg.ID] = fg.Clone()
	return nil
}

func (r *InMemoryFinishedGoodsRepository) Update(ctx context.Context, fg *domain.FinishedGoods) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, exists := r.goods[fg.ID]
	if !exists {
		return notFound("finished goods", fg.ID)
	}
	if stored.Version != fg.Version {
		return ErrOptimisticLockFailed
	}
	if r.nameTaken(fg.Name, fg.ID) {
		return conflict("finished goods", "name", fg.Name)
	}
	fg.Version++
	r.goods[fg.ID] = fg.Clone()
	return nil
}

func (r *InMemoryFinishedGoodsRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.FinishedGoods, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fg, exists := r.goods[id]
	if !exists {
		return nil, notFound("finished goods", id)
	}
	return fg.Clone(), nil
}

// FindByRecipeID returns the first record for the recipe by name, so
// repeated lookups resolve to the same product.
func (r *InMemoryFinishedGoodsRepository) FindByRecipeID(ctx context.Context, recipeID uuid.UUID) (*domain.FinishedGoods, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var found *domain.FinishedGoods
	for _, fg := range r.goods {
		if fg.RecipeID != recipeID {
			continue
		}
		if found == nil || strings.ToLower(fg.Name) < strings.ToLower(found.Name) {
			found = fg
		}
	}
	if found == nil {
		return nil, notFound("finished goods for recipe", recipeID)
	}
	return found.Clone(), nil
}

func (r *InMemoryFinishedGoodsRepository) List(ctx context.Context) ([]*domain.FinishedGoods, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.FinishedGoods, 0, len(r.goods))
	for _, fg := range r.goods {
		result = append(result, fg.Clone())
	}
	sort.Slice(result, func(i, j int) bool {
		return strings.ToLower(result[i].Name) < strings.ToLower(result[j].Name)
	})
	return result, nil
}

func (r *InMemoryFinishedGoodsRepository) ApplyTransaction(ctx context.Context, id uuid.UUID, in TransactionInput) (*domain.FinishedGoods, domain.StockTransaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, exists := r.goods[id]
	if !exists {
		return nil, domain.StockTransaction{}, notFound("finished goods", id)
	}
	updated := stored.Clone()
	entry, err := updated.Apply(in.Type, in.Quantity, in.OrderID, in.Notes, in.Actor, in.At)
	if err != nil {
		return nil, domain.StockTransaction{}, err
	}
	r.goods[id] = updated
	return updated.Clone(), entry, nil
}

func (r *InMemoryFinishedGoodsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.goods[id]; !exists {
		return notFound("finished goods", id)
	}
	delete(r.goods, id)
	return nil
}
