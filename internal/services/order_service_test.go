package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"kitchen-service/internal/commands"
	"kitchen-service/internal/domain"
	"kitchen-service/internal/events"
	"kitchen-service/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCreateOrder_ComputesIngredientsAndPrices(t *testing.T) {
	env := newTestEnv(t)
	flour := env.addItem(t, "Flour", "1", "0.1")
	margherita := env.addRecipe(t, "Margherita", "1", "8.50", ingredient(flour, "0.35"))

	order := env.createOrder(t, line(margherita, "2"))

	assert.Equal(t, domain.StatusDraft, order.Status)
	assert.Regexp(t, `^ORD-20260310-[0-9A-F]{6}$`, order.OrderNumber)
	assert.Equal(t, "staff", order.CreatedBy)
	require.Len(t, order.TotalIngredients, 1)
	assert.True(t, order.TotalIngredients[0].Quantity.Equal(d("0.7")))
	assert.True(t, order.Items[0].UnitPrice.Equal(d("8.5")))
	assert.True(t, order.Items[0].LineTotal.Equal(d("17")))
	assert.True(t, order.ItemsTotal.Equal(d("17")))
	require.Len(t, order.StatusHistory, 1)
	assert.Equal(t, domain.StatusDraft, order.StatusHistory[0].Status)

	// creation does not touch stock
	assert.True(t, env.stockOf(t, flour.ID).Equal(d("1")))
	assert.Len(t, env.bus.EventsOfType(events.TypeOrderCreated), 1)
}

func TestCreateOrder_Validation(t *testing.T) {
	env := newTestEnv(t)
	flour := env.addItem(t, "Flour", "1", "0")
	margherita := env.addRecipe(t, "Margherita", "1", "8", ingredient(flour, "0.35"))

	cases := []struct {
		name  string
		cmd   commands.CreateOrderCommand
		field string
	}{
		{"no customer name", commands.CreateOrderCommand{Customer: domain.Customer{PhoneNumber: "1"}, Items: []commands.OrderLine{line(margherita, "1")}}, "customer.name"},
		{"no phone", commands.CreateOrderCommand{Customer: domain.Customer{Name: "Ada"}, Items: []commands.OrderLine{line(margherita, "1")}}, "customer.phoneNumber"},
		{"no items", commands.CreateOrderCommand{Customer: customer()}, "items"},
		{"zero quantity", commands.CreateOrderCommand{Customer: customer(), Items: []commands.OrderLine{line(margherita, "0")}}, "items.quantity"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := env.orderSvc.CreateOrder(staffCtx(), tc.cmd)
			var vErr *domain.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tc.field, vErr.Field)
		})
	}

	orders, err := env.orders.List(context.Background(), repository.OrderFilter{})
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestCreateOrder_UnknownRecipe(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.orderSvc.CreateOrder(staffCtx(), commands.CreateOrderCommand{
		Customer: customer(),
		Items:    []commands.OrderLine{{RecipeID: uuid.New(), Quantity: d("1")}},
	})
	var nf *domain.NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestCreateOrder_InsufficientStockRejected(t *testing.T) {
	env := newTestEnv(t)
	flour := env.addItem(t, "Flour", "1", "0")
	cheese := env.addItem(t, "Cheese", "0.1", "0")
	margherita := env.addRecipe(t, "Margherita", "1", "8", ingredient(flour, "0.35"), ingredient(cheese, "0.2"))

	_, err := env.orderSvc.CreateOrder(staffCtx(), commands.CreateOrderCommand{
		Customer: customer(),
		Items:    []commands.OrderLine{line(margherita, "2")},
	})

	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "Cheese", stockErr.ItemName)
	assert.True(t, stockErr.Required.Equal(d("0.4")))
	assert.True(t, stockErr.Available.Equal(d("0.1")))
	assert.Equal(t, domain.UnitKilogram, stockErr.Unit)

	orders, err := env.orders.List(context.Background(), repository.OrderFilter{})
	require.NoError(t, err)
	assert.Empty(t, orders)
	assert.True(t, env.stockOf(t, flour.ID).Equal(d("1")))
	assert.True(t, env.stockOf(t, cheese.ID).Equal(d("0.1")))
}

func TestUpdateOrderStatus_MargheritaScenario(t *testing.T) {
	env := newTestEnv(t)
	flour := env.addItem(t, "Flour", "1", "0.1")
	margherita := env.addRecipe(t, "Margherita", "1", "8", ingredient(flour, "0.35"))

	first := env.createOrder(t, line(margherita, "2"))
	second := env.createOrder(t, line(margherita, "2"))

	env.setStatus(t, first.ID, domain.StatusIngredientsAllocated)
	assert.True(t, env.stockOf(t, flour.ID).Equal(d("0.3")), env.stockOf(t, flour.ID).String())

	_, err := env.orderSvc.UpdateOrderStatus(staffCtx(), commands.UpdateOrderStatusCommand{
		ID: second.ID, Status: domain.StatusIngredientsAllocated,
	})
	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.True(t, stockErr.Required.Equal(d("0.7")))
	assert.True(t, stockErr.Available.Equal(d("0.3")))

	// the failed allocation changed nothing
	assert.True(t, env.stockOf(t, flour.ID).Equal(d("0.3")))
	stored, err := env.orders.FindByID(context.Background(), second.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDraft, stored.Status)
	assert.Len(t, stored.StatusHistory, 1)
}

func TestUpdateOrderStatus_AllocateThenCancelRestores(t *testing.T) {
	env := newTestEnv(t)
	flour := env.addItem(t, "Flour", "5", "0")
	cheese := env.addItem(t, "Cheese", "3", "0")
	margherita := env.addRecipe(t, "Margherita", "1", "8", ingredient(flour, "0.35"), ingredient(cheese, "0.2"))
	calzone := env.addRecipe(t, "Calzone", "2", "11", ingredient(flour, "0.9"), ingredient(cheese, "0.5"))

	order := env.createOrder(t, line(margherita, "3"), line(calzone, "1"))

	env.setStatus(t, order.ID, domain.StatusIngredientsAllocated)
	// flour 1.05 + 0.45, cheese 0.6 + 0.25
	assert.True(t, env.stockOf(t, flour.ID).Equal(d("3.5")), env.stockOf(t, flour.ID).String())
	assert.True(t, env.stockOf(t, cheese.ID).Equal(d("2.15")), env.stockOf(t, cheese.ID).String())

	env.setStatus(t, order.ID, domain.StatusCancelled)
	assert.True(t, env.stockOf(t, flour.ID).Equal(d("5")))
	assert.True(t, env.stockOf(t, cheese.ID).Equal(d("3")))

	stockEvents := env.bus.EventsOfType(events.TypeInventoryStockChanged)
	require.Len(t, stockEvents, 4)
	assert.Equal(t, events.ReasonAllocation, stockEvents[0].(events.InventoryStockChangedEvent).Reason)
	assert.Equal(t, events.ReasonRestore, stockEvents[3].(events.InventoryStockChangedEvent).Reason)
}

func TestUpdateOrderStatus_CancelFromDraftLeavesStock(t *testing.T) {
	env := newTestEnv(t)
	flour := env.addItem(t, "Flour", "1", "0")
	margherita := env.addRecipe(t, "Margherita", "1", "8", ingredient(flour, "0.35"))
	order := env.createOrder(t, line(margherita, "1"))

	env.setStatus(t, order.ID, domain.StatusCancelled)
	assert.True(t, env.stockOf(t, flour.ID).Equal(d("1")))
}

func TestUpdateOrderStatus_HistoryIsAppendOnly(t *testing.T) {
	env := newTestEnv(t)
	flour := env.addItem(t, "Flour", "10", "0")
	margherita := env.addRecipe(t, "Margherita", "1", "8", ingredient(flour, "0.35"))
	order := env.createOrder(t, line(margherita, "1"))

	previous := append([]domain.StatusEntry(nil), order.StatusHistory...)
	for i, status := range []domain.OrderStatus{
		domain.StatusIngredientsAllocated,
		domain.StatusInProduction,
		domain.StatusInProduction,
		domain.StatusReadyForDispatch,
	} {
		result, err := env.orderSvc.UpdateOrderStatus(staffCtx(), commands.UpdateOrderStatusCommand{
			ID: order.ID, Status: status, Notes: "step",
		})
		require.NoError(t, err)
		history := result.Order.StatusHistory
		require.Len(t, history, len(previous)+1, "step %d", i)
		assert.Equal(t, previous, history[:len(previous)])
		last := history[len(history)-1]
		assert.Equal(t, status, last.Status)
		assert.Equal(t, "staff", last.Actor)
		assert.Equal(t, "step", last.Notes)
		assert.True(t, last.Timestamp.Equal(fixedNow))
		previous = history
	}
}

func TestUpdateOrderStatus_ReadyForDispatchProducesOnce(t *testing.T) {
	env := newTestEnv(t)
	flour := env.addItem(t, "Flour", "10", "0")
	margherita := env.addRecipe(t, "Margherita", "1", "8", ingredient(flour, "0.35"))
	tiramisu := env.addRecipe(t, "Tiramisu", "6", "5", ingredient(flour, "0.1"))
	fg := env.addFinishedGoods(t, margherita, "1")

	order := env.createOrder(t, line(margherita, "2"), line(tiramisu, "1"))
	env.setStatus(t, order.ID, domain.StatusInProduction)
	env.setStatus(t, order.ID, domain.StatusReadyForDispatch)

	assert.True(t, env.goodsStockOf(t, fg.ID).Equal(d("3")))
	stored, err := env.goods.FindByID(context.Background(), fg.ID)
	require.NoError(t, err)
	last := stored.StockHistory[len(stored.StockHistory)-1]
	assert.Equal(t, domain.TransactionProduced, last.TransactionType)
	assert.True(t, last.Quantity.Equal(d("2")))
	require.NotNil(t, last.OrderID)
	assert.Equal(t, order.ID, *last.OrderID)
	require.NotNil(t, stored.LastProducedDate)
	assert.True(t, stored.LastProducedDate.Equal(fixedNow))

	// resubmitting the same status does not produce again
	env.setStatus(t, order.ID, domain.StatusReadyForDispatch)
	assert.True(t, env.goodsStockOf(t, fg.ID).Equal(d("3")))
}

func TestUpdateOrderStatus_DeliveredConsumesAndWarns(t *testing.T) {
	env := newTestEnv(t)
	flour := env.addItem(t, "Flour", "10", "0")
	margherita := env.addRecipe(t, "Margherita", "1", "8", ingredient(flour, "0.35"))
	calzone := env.addRecipe(t, "Calzone", "1", "11", ingredient(flour, "0.5"))
	pizzaStock := env.addFinishedGoods(t, margherita, "5")
	calzoneStock := env.addFinishedGoods(t, calzone, "1")

	order := env.createOrder(t, line(margherita, "2"), line(calzone, "3"))
	result := env.setStatus(t, order.ID, domain.StatusDelivered)

	assert.True(t, env.goodsStockOf(t, pizzaStock.ID).Equal(d("3")))
	assert.True(t, env.goodsStockOf(t, calzoneStock.ID).Equal(d("1")))
	assert.Equal(t, domain.StatusDelivered, result.Order.Status)

	require.Len(t, result.Warnings, 1)
	w := result.Warnings[0]
	assert.Equal(t, calzone.ID, w.RecipeID)
	assert.Equal(t, calzoneStock.ID, w.FinishedGoodsID)
	assert.True(t, w.Required.Equal(d("3")))
	assert.True(t, w.Available.Equal(d("1")))

	stored, err := env.goods.FindByID(context.Background(), pizzaStock.ID)
	require.NoError(t, err)
	last := stored.StockHistory[len(stored.StockHistory)-1]
	assert.Equal(t, domain.TransactionSold, last.TransactionType)
	assert.True(t, last.Quantity.Equal(d("-2")))

	// no double consumption on resubmission
	again := env.setStatus(t, order.ID, domain.StatusDelivered)
	assert.Empty(t, again.Warnings)
	assert.True(t, env.goodsStockOf(t, pizzaStock.ID).Equal(d("3")))
}

func TestUpdateOrderStatus_Errors(t *testing.T) {
	env := newTestEnv(t)
	flour := env.addItem(t, "Flour", "10", "0")
	margherita := env.addRecipe(t, "Margherita", "1", "8", ingredient(flour, "0.35"))
	order := env.createOrder(t, line(margherita, "1"))

	_, err := env.orderSvc.UpdateOrderStatus(staffCtx(), commands.UpdateOrderStatusCommand{ID: order.ID, Status: domain.OrderStatus(99)})
	var vErr *domain.ValidationError
	assert.ErrorAs(t, err, &vErr)

	_, err = env.orderSvc.UpdateOrderStatus(staffCtx(), commands.UpdateOrderStatusCommand{ID: uuid.New(), Status: domain.StatusDelivered})
	var nf *domain.NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestUpdateOrderStatus_ArbitraryJumpsByDefault(t *testing.T) {
	env := newTestEnv(t)
	flour := env.addItem(t, "Flour", "10", "0")
	margherita := env.addRecipe(t, "Margherita", "1", "8", ingredient(flour, "0.35"))
	order := env.createOrder(t, line(margherita, "1"))

	env.setStatus(t, order.ID, domain.StatusDelivered)
	result := env.setStatus(t, order.ID, domain.StatusDraft)
	assert.Equal(t, domain.StatusDraft, result.Order.Status)
}

func TestUpdateOrderStatus_StrictTransitions(t *testing.T) {
	env := newTestEnv(t, WithStrictTransitions(true))
	flour := env.addItem(t, "Flour", "10", "0")
	margherita := env.addRecipe(t, "Margherita", "1", "8", ingredient(flour, "0.35"))
	order := env.createOrder(t, line(margherita, "1"))

	_, err := env.orderSvc.UpdateOrderStatus(staffCtx(), commands.UpdateOrderStatusCommand{ID: order.ID, Status: domain.StatusDispatched})
	var stateErr *domain.InvalidStateError
	require.ErrorAs(t, err, &stateErr)

	env.setStatus(t, order.ID, domain.StatusIngredientsAllocated)
	env.setStatus(t, order.ID, domain.StatusCancelled)
	_, err = env.orderSvc.UpdateOrderStatus(staffCtx(), commands.UpdateOrderStatusCommand{ID: order.ID, Status: domain.StatusDraft})
	assert.ErrorAs(t, err, &stateErr)
	assert.True(t, env.stockOf(t, flour.ID).Equal(d("10")))
}

func TestUpdateOrder_DraftOnly(t *testing.T) {
	env := newTestEnv(t)
	flour := env.addItem(t, "Flour", "1", "0")
	margherita := env.addRecipe(t, "Margherita", "1", "8", ingredient(flour, "0.35"))
	order := env.createOrder(t, line(margherita, "1"))

	// items change recomputes the snapshot without re-checking stock
	updated, err := env.orderSvc.UpdateOrder(staffCtx(), commands.UpdateOrderCommand{
		ID:    order.ID,
		Items: []commands.OrderLine{line(margherita, "5")},
	})
	require.NoError(t, err)
	assert.True(t, updated.TotalIngredients[0].Quantity.Equal(d("1.75")))
	assert.True(t, updated.ItemsTotal.Equal(d("40")))

	notes := "ring the bell"
	updated, err = env.orderSvc.UpdateOrder(staffCtx(), commands.UpdateOrderCommand{ID: order.ID, Notes: &notes})
	require.NoError(t, err)
	assert.Equal(t, notes, updated.Notes)
	assert.True(t, updated.TotalIngredients[0].Quantity.Equal(d("1.75")))

	env.setStatus(t, order.ID, domain.StatusInProduction)
	_, err = env.orderSvc.UpdateOrder(staffCtx(), commands.UpdateOrderCommand{
		ID:    order.ID,
		Items: []commands.OrderLine{line(margherita, "1")},
	})
	var stateErr *domain.InvalidStateError
	require.ErrorAs(t, err, &stateErr)
	assert.Equal(t, "update", stateErr.Operation)
}

func TestDeleteOrder_DraftOrCancelledOnly(t *testing.T) {
	env := newTestEnv(t)
	flour := env.addItem(t, "Flour", "10", "0")
	margherita := env.addRecipe(t, "Margherita", "1", "8", ingredient(flour, "0.35"))

	draft := env.createOrder(t, line(margherita, "1"))
	require.NoError(t, env.orderSvc.DeleteOrder(staffCtx(), commands.DeleteOrderCommand{ID: draft.ID}))
	_, err := env.orders.FindByID(context.Background(), draft.ID)
	var nf *domain.NotFoundError
	assert.ErrorAs(t, err, &nf)

	cancelled := env.createOrder(t, line(margherita, "1"))
	env.setStatus(t, cancelled.ID, domain.StatusCancelled)
	require.NoError(t, env.orderSvc.DeleteOrder(staffCtx(), commands.DeleteOrderCommand{ID: cancelled.ID}))

	active := env.createOrder(t, line(margherita, "1"))
	env.setStatus(t, active.ID, domain.StatusIngredientsAllocated)
	err = env.orderSvc.DeleteOrder(staffCtx(), commands.DeleteOrderCommand{ID: active.ID})
	var stateErr *domain.InvalidStateError
	require.ErrorAs(t, err, &stateErr)
	assert.Equal(t, "delete", stateErr.Operation)
}

// flakyInventory fails AdjustStock for one item.
type flakyInventory struct {
	repository.InventoryRepository
	failOn uuid.UUID
}

func (f *flakyInventory) AdjustStock(ctx context.Context, id uuid.UUID, delta decimal.Decimal, actor string, at time.Time) (*domain.InventoryItem, error) {
	if id == f.failOn && delta.IsNegative() {
		return nil, errors.New("database is locked")
	}
	return f.InventoryRepository.AdjustStock(ctx, id, delta, actor, at)
}

func TestUpdateOrderStatus_MidLoopFailureIsCompensated(t *testing.T) {
	env := newTestEnv(t)
	flour := env.addItem(t, "Flour", "5", "0")
	cheese := env.addItem(t, "Cheese", "5", "0")
	basil := env.addItem(t, "Basil", "5", "0")
	margherita := env.addRecipe(t, "Margherita", "1", "8",
		ingredient(flour, "0.35"), ingredient(cheese, "0.2"), ingredient(basil, "0.01"))
	order := env.createOrder(t, line(margherita, "2"))

	env.wire(zap.NewNop(), &flakyInventory{InventoryRepository: env.inventory, failOn: basil.ID}, env.orders)

	_, err := env.orderSvc.UpdateOrderStatus(staffCtx(), commands.UpdateOrderStatusCommand{
		ID: order.ID, Status: domain.StatusIngredientsAllocated,
	})
	require.Error(t, err)

	assert.True(t, env.stockOf(t, flour.ID).Equal(d("5")))
	assert.True(t, env.stockOf(t, cheese.ID).Equal(d("5")))
	assert.True(t, env.stockOf(t, basil.ID).Equal(d("5")))

	stored, err := env.orders.FindByID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDraft, stored.Status)
}

// failingOrders rejects every Update.
type failingOrders struct {
	repository.OrderRepository
}

func (failingOrders) Update(ctx context.Context, order *domain.Order) error {
	return repository.ErrOptimisticLockFailed
}

func TestUpdateOrderStatus_OrderWriteFailureRestoresStock(t *testing.T) {
	env := newTestEnv(t)
	flour := env.addItem(t, "Flour", "1", "0")
	margherita := env.addRecipe(t, "Margherita", "1", "8", ingredient(flour, "0.35"))
	order := env.createOrder(t, line(margherita, "2"))

	env.wire(zap.NewNop(), env.inventory, failingOrders{OrderRepository: env.orders})

	_, err := env.orderSvc.UpdateOrderStatus(staffCtx(), commands.UpdateOrderStatusCommand{
		ID: order.ID, Status: domain.StatusIngredientsAllocated,
	})
	assert.ErrorIs(t, err, domain.ErrConcurrentUpdate)
	assert.True(t, env.stockOf(t, flour.ID).Equal(d("1")))
}

// flakyOrders rejects Update while fail is set.
type flakyOrders struct {
	repository.OrderRepository
	fail bool
}

func (f *flakyOrders) Update(ctx context.Context, order *domain.Order) error {
	if f.fail {
		return repository.ErrOptimisticLockFailed
	}
	return f.OrderRepository.Update(ctx, order)
}

func TestUpdateOrderStatus_OrderWriteFailureReversesFinishedGoods(t *testing.T) {
	tests := []struct {
		name       string
		status     domain.OrderStatus
		stock      string
		afterRetry string
	}{
		{name: "ready for dispatch produces once", status: domain.StatusReadyForDispatch, stock: "0", afterRetry: "3"},
		{name: "delivered consumes once", status: domain.StatusDelivered, stock: "5", afterRetry: "2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			flour := env.addItem(t, "Flour", "10", "0")
			margherita := env.addRecipe(t, "Margherita", "1", "8", ingredient(flour, "0.35"))
			boxed := env.addFinishedGoods(t, margherita, tt.stock)
			order := env.createOrder(t, line(margherita, "3"))

			orders := &flakyOrders{OrderRepository: env.orders, fail: true}
			env.wire(zap.NewNop(), env.inventory, orders)

			_, err := env.orderSvc.UpdateOrderStatus(staffCtx(), commands.UpdateOrderStatusCommand{
				ID: order.ID, Status: tt.status,
			})
			assert.ErrorIs(t, err, domain.ErrConcurrentUpdate)
			assert.True(t, env.goodsStockOf(t, boxed.ID).Equal(d(tt.stock)), env.goodsStockOf(t, boxed.ID).String())

			stored, err := env.orders.FindByID(context.Background(), order.ID)
			require.NoError(t, err)
			assert.Equal(t, domain.StatusDraft, stored.Status)
			assert.Empty(t, env.bus.EventsOfType(events.TypeFinishedGoodsStockChanged))

			orders.fail = false
			env.setStatus(t, order.ID, tt.status)
			assert.True(t, env.goodsStockOf(t, boxed.ID).Equal(d(tt.afterRetry)), env.goodsStockOf(t, boxed.ID).String())
		})
	}
}

// failingGoods rejects transactions on one finished-goods record.
type failingGoods struct {
	repository.FinishedGoodsRepository
	failOn uuid.UUID
}

func (f failingGoods) ApplyTransaction(ctx context.Context, id uuid.UUID, tx repository.TransactionInput) (*domain.FinishedGoods, domain.StockTransaction, error) {
	if id == f.failOn {
		return nil, domain.StockTransaction{}, errors.New("disk I/O error")
	}
	return f.FinishedGoodsRepository.ApplyTransaction(ctx, id, tx)
}

func TestUpdateOrderStatus_ProductionFailureMidOrderReversesEarlierLines(t *testing.T) {
	env := newTestEnv(t)
	flour := env.addItem(t, "Flour", "10", "0")
	margherita := env.addRecipe(t, "Margherita", "1", "8", ingredient(flour, "0.35"))
	marinara := env.addRecipe(t, "Marinara", "1", "7", ingredient(flour, "0.3"))
	boxedMargherita := env.addFinishedGoods(t, margherita, "0")
	boxedMarinara := env.addFinishedGoods(t, marinara, "0")
	order := env.createOrder(t, line(margherita, "2"), line(marinara, "1"))

	env.orderSvc = NewOrderService(env.orders, env.recipes, env.inventory,
		failingGoods{FinishedGoodsRepository: env.goods, failOn: boxedMarinara.ID},
		env.bus, zap.NewNop(), WithClock(clock))

	_, err := env.orderSvc.UpdateOrderStatus(staffCtx(), commands.UpdateOrderStatusCommand{
		ID: order.ID, Status: domain.StatusReadyForDispatch,
	})
	require.Error(t, err)

	assert.True(t, env.goodsStockOf(t, boxedMargherita.ID).Equal(decimal.Zero))
	assert.True(t, env.goodsStockOf(t, boxedMarinara.ID).Equal(decimal.Zero))

	fg, err := env.goods.FindByID(context.Background(), boxedMargherita.ID)
	require.NoError(t, err)
	require.Len(t, fg.StockHistory, 2)
	assert.Equal(t, domain.TransactionProduced, fg.StockHistory[0].TransactionType)
	assert.Equal(t, domain.TransactionWasted, fg.StockHistory[1].TransactionType)
	assert.Equal(t, order.ID, *fg.StockHistory[1].OrderID)

	stored, err := env.orders.FindByID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDraft, stored.Status)
}

func TestUpdateOrderStatus_ConcurrentAllocationsNeverOverdraw(t *testing.T) {
	env := newTestEnv(t)
	flour := env.addItem(t, "Flour", "1", "0")
	margherita := env.addRecipe(t, "Margherita", "1", "8", ingredient(flour, "0.35"))

	const n = 6
	orders := make([]*domain.Order, n)
	for i := range orders {
		orders[i] = env.createOrder(t, line(margherita, "1"))
	}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	for _, order := range orders {
		wg.Add(1)
		go func(id uuid.UUID) {
			defer wg.Done()
			_, err := env.orderSvc.UpdateOrderStatus(staffCtx(), commands.UpdateOrderStatusCommand{
				ID: id, Status: domain.StatusIngredientsAllocated,
			})
			if err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
				return
			}
			var stockErr *domain.InsufficientStockError
			assert.ErrorAs(t, err, &stockErr)
		}(order.ID)
	}
	wg.Wait()

	assert.Equal(t, 2, succeeded)
	assert.True(t, env.stockOf(t, flour.ID).Equal(d("0.3")), env.stockOf(t, flour.ID).String())
}

func TestUpdateOrderStatus_PublishesEvents(t *testing.T) {
	env := newTestEnv(t)
	flour := env.addItem(t, "Flour", "1", "0.5")
	margherita := env.addRecipe(t, "Margherita", "1", "8", ingredient(flour, "0.35"))
	order := env.createOrder(t, line(margherita, "2"))

	env.setStatus(t, order.ID, domain.StatusIngredientsAllocated)

	changed := env.bus.EventsOfType(events.TypeOrderStatusChanged)
	require.Len(t, changed, 1)
	event := changed[0].(events.OrderStatusChangedEvent)
	assert.Equal(t, "Draft", event.From)
	assert.Equal(t, "Ingredients Allocated", event.To)
	assert.Equal(t, "staff", event.Actor)

	low := env.bus.EventsOfType(events.TypeLowStockDetected)
	require.Len(t, low, 1)
	assert.Equal(t, flour.ID, low[0].(events.LowStockDetectedEvent).ItemID)
}

func TestGetOrder_ResolvesNames(t *testing.T) {
	env := newTestEnv(t)
	flour := env.addItem(t, "Flour", "10", "0")
	margherita := env.addRecipe(t, "Margherita", "1", "8", ingredient(flour, "0.35"))
	order := env.createOrder(t, line(margherita, "1"))

	details, err := env.orderSvc.GetOrder(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, "Margherita", details.Items[0].RecipeName)
	assert.Equal(t, "Flour", details.TotalIngredients[0].ItemName)

	// a deleted recipe leaves the name empty instead of failing
	require.NoError(t, env.recipes.Delete(context.Background(), margherita.ID))
	details, err = env.orderSvc.GetOrder(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Empty(t, details.Items[0].RecipeName)
}

func TestListOrders_FiltersByStatus(t *testing.T) {
	env := newTestEnv(t)
	flour := env.addItem(t, "Flour", "10", "0")
	margherita := env.addRecipe(t, "Margherita", "1", "8", ingredient(flour, "0.35"))
	env.createOrder(t, line(margherita, "1"))
	cancelled := env.createOrder(t, line(margherita, "1"))
	env.setStatus(t, cancelled.ID, domain.StatusCancelled)

	status := domain.StatusCancelled
	orders, err := env.orderSvc.ListOrders(context.Background(), repository.OrderFilter{Status: &status})
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, cancelled.ID, orders[0].ID)
}
