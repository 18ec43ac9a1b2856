package services

import (
	"context"
	"testing"
	"time"

	"kitchen-service/internal/cache"
	"kitchen-service/internal/commands"
	"kitchen-service/internal/domain"
	"kitchen-service/internal/events"
	"kitchen-service/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var fixedNow = time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func staffCtx() context.Context {
	return WithActor(context.Background(), "staff")
}

type testEnv struct {
	inventory *repository.InMemoryInventoryRepository
	recipes   *repository.InMemoryRecipeRepository
	orders    *repository.InMemoryOrderRepository
	goods     *repository.InMemoryFinishedGoodsRepository
	cache     *cache.InMemoryCache
	bus       *events.InMemoryEventPublisher

	orderSvc     *OrderService
	inventorySvc *InventoryService
	recipeSvc    *RecipeService
	goodsSvc     *FinishedGoodsService
	dashboardSvc *DashboardService
}

func clock() time.Time { return fixedNow }

func newTestEnv(t *testing.T, opts ...OrderOption) *testEnv {
	t.Helper()
	logger := zap.NewNop()
	env := &testEnv{
		inventory: repository.NewInMemoryInventoryRepository(),
		recipes:   repository.NewInMemoryRecipeRepository(),
		orders:    repository.NewInMemoryOrderRepository(),
		goods:     repository.NewInMemoryFinishedGoodsRepository(),
		cache:     cache.NewInMemoryCache(logger),
		bus:       events.NewInMemoryEventPublisher(logger),
	}
	env.wire(logger, env.inventory, env.orders, opts...)
	return env
}

// wire builds the services over the given inventory and order repositories so
// tests can swap in failing wrappers.
func (e *testEnv) wire(logger *zap.Logger, inventory repository.InventoryRepository, orders repository.OrderRepository, opts ...OrderOption) {
	opts = append([]OrderOption{WithClock(clock)}, opts...)
	e.orderSvc = NewOrderService(orders, e.recipes, inventory, e.goods, e.bus, logger, opts...)
	e.inventorySvc = NewInventoryService(inventory, e.cache, time.Minute, e.bus, logger)
	e.inventorySvc.now = clock
	e.recipeSvc = NewRecipeService(e.recipes, inventory, logger)
	e.recipeSvc.now = clock
	e.goodsSvc = NewFinishedGoodsService(e.goods, e.recipes, e.bus, logger)
	e.goodsSvc.now = clock
	e.dashboardSvc = NewDashboardService(orders, inventory, e.goods, e.cache, time.Minute, logger)
	e.dashboardSvc.now = clock
}

func (e *testEnv) addItem(t *testing.T, name, stock, threshold string) *domain.InventoryItem {
	t.Helper()
	item, err := domain.NewInventoryItem(name, domain.UnitKilogram, d(stock), d(threshold), "admin", fixedNow)
	require.NoError(t, err)
	require.NoError(t, e.inventory.Create(context.Background(), item))
	return item
}

func ingredient(item *domain.InventoryItem, qty string) domain.RecipeIngredient {
	return domain.RecipeIngredient{InventoryItemID: item.ID, Quantity: d(qty), Unit: item.Unit}
}

// addRecipe stores the recipe directly so tests can use yields the catalog
// would reject.
func (e *testEnv) addRecipe(t *testing.T, name, yield, price string, ings ...domain.RecipeIngredient) *domain.Recipe {
	t.Helper()
	recipe := &domain.Recipe{
		ID:               uuid.New(),
		Name:             name,
		Ingredients:      ings,
		StandardUnit:     domain.UnitPiece,
		StandardQuantity: d(yield),
		UnitPrice:        d(price),
		CreatedBy:        "admin",
		CreatedAt:        fixedNow,
		UpdatedAt:        fixedNow,
	}
	require.NoError(t, e.recipes.Create(context.Background(), recipe))
	return recipe
}

func (e *testEnv) addFinishedGoods(t *testing.T, recipe *domain.Recipe, stock string) *domain.FinishedGoods {
	t.Helper()
	fg, err := domain.NewFinishedGoods(recipe.Name+" (boxed)", recipe.ID, domain.UnitPiece, fixedNow)
	require.NoError(t, err)
	require.NoError(t, e.goods.Create(context.Background(), fg))
	if s := d(stock); s.IsPositive() {
		_, _, err := e.goods.ApplyTransaction(context.Background(), fg.ID, repository.TransactionInput{
			Type: domain.TransactionAdjusted, Quantity: s, Actor: "admin", At: fixedNow,
		})
		require.NoError(t, err)
	}
	return fg
}

func (e *testEnv) stockOf(t *testing.T, id uuid.UUID) decimal.Decimal {
	t.Helper()
	item, err := e.inventory.FindByID(context.Background(), id)
	require.NoError(t, err)
	return item.CurrentStock
}

func (e *testEnv) goodsStockOf(t *testing.T, id uuid.UUID) decimal.Decimal {
	t.Helper()
	fg, err := e.goods.FindByID(context.Background(), id)
	require.NoError(t, err)
	return fg.CurrentStock
}

func customer() domain.Customer {
	return domain.Customer{Name: "Ada", PhoneNumber: "+44 20 7946 0000"}
}

func line(recipe *domain.Recipe, qty string) commands.OrderLine {
	return commands.OrderLine{RecipeID: recipe.ID, Quantity: d(qty)}
}

func (e *testEnv) createOrder(t *testing.T, lines ...commands.OrderLine) *domain.Order {
	t.Helper()
	order, err := e.orderSvc.CreateOrder(staffCtx(), commands.CreateOrderCommand{Customer: customer(), Items: lines})
	require.NoError(t, err)
	return order
}

func (e *testEnv) setStatus(t *testing.T, id uuid.UUID, status domain.OrderStatus) *StatusUpdateResult {
	t.Helper()
	result, err := e.orderSvc.UpdateOrderStatus(staffCtx(), commands.UpdateOrderStatusCommand{ID: id, Status: status})
	require.NoError(t, err)
	return result
}
