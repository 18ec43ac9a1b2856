package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"kitchen-service/internal/commands"
	"kitchen-service/internal/domain"
	"kitchen-service/internal/events"
	"kitchen-service/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const orderNumberAttempts = 3

// FulfillmentWarning reports an order line that a Delivered transition could
// not take out of finished-goods stock.
type FulfillmentWarning struct {
	RecipeID        uuid.UUID       `json:"recipe"`
	FinishedGoodsID uuid.UUID       `json:"finishedGoods"`
	Name            string          `json:"name"`
	Required        decimal.Decimal `json:"required"`
	Available       decimal.Decimal `json:"available"`
	Message         string          `json:"message"`
}

// StatusUpdateResult is the order after a status change plus any partial-success warnings.
type StatusUpdateResult struct {
	Order    *domain.Order        `json:"order"`
	Warnings []FulfillmentWarning `json:"warnings,omitempty"`
}

// OrderLineDetails is an order line joined with its recipe name.
type OrderLineDetails struct {
	domain.OrderItem
	RecipeName string `json:"recipeName"`
}

// IngredientDetails is an aggregated requirement joined with its item name.
type IngredientDetails struct {
	domain.IngredientRequirement
	ItemName string `json:"itemName"`
}

// OrderDetails is an order with its references resolved.
// Lines whose recipe or item has since been deleted keep an empty name.
type OrderDetails struct {
	*domain.Order
	Items            []OrderLineDetails  `json:"items"`
	TotalIngredients []IngredientDetails `json:"totalIngredients"`
}

// OrderService is the order lifecycle engine.
type OrderService struct {
	orders     repository.OrderRepository
	recipes    repository.RecipeRepository
	inventory  repository.InventoryRepository
	goods      repository.FinishedGoodsRepository
	aggregator *IngredientAggregator
	eventBus   events.EventPublisher
	logger     *zap.Logger
	now        Clock
	strict     bool
}

type OrderOption func(*OrderService)

// WithClock overrides the time source.
func WithClock(clock Clock) OrderOption {
	return func(s *OrderService) { s.now = clock }
}

// WithStrictTransitions rejects status changes the lifecycle table does not allow.
func WithStrictTransitions(strict bool) OrderOption {
	return func(s *OrderService) { s.strict = strict }
}

func NewOrderService(
	orders repository.OrderRepository,
	recipes repository.RecipeRepository,
	inventory repository.InventoryRepository,
	goods repository.FinishedGoodsRepository,
	eventBus events.EventPublisher,
	logger *zap.Logger,
	opts ...OrderOption,
) *OrderService {
	s := &OrderService{
		orders:     orders,
		recipes:    recipes,
		inventory:  inventory,
		goods:      goods,
		aggregator: NewIngredientAggregator(recipes),
		eventBus:   eventBus,
		logger:     logger,
		now:        utcNow,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func validateLines(lines []commands.OrderLine) error {
	if len(lines) == 0 {
		return &domain.ValidationError{Field: "items", Message: "at least one item is required"}
	}
	for _, line := range lines {
		if line.RecipeID == uuid.Nil {
			return &domain.ValidationError{Field: "items.recipe", Message: "recipe is required"}
		}
		if line.Quantity.LessThan(decimal.NewFromInt(1)) {
			return &domain.ValidationError{Field: "items.quantity", Message: "quantity must be at least 1"}
		}
	}
	return nil
}

// priceLines aggregates the ingredient demand and prices each line from its recipe.
func (s *OrderService) priceLines(ctx context.Context, lines []commands.OrderLine) ([]domain.OrderItem, []domain.IngredientRequirement, error) {
	items := make([]domain.OrderItem, len(lines))
	for i, line := range lines {
		items[i] = domain.OrderItem{RecipeID: line.RecipeID, Quantity: line.Quantity}
	}

	totals, recipes, err := s.aggregator.aggregate(ctx, items)
	if err != nil {
		return nil, nil, err
	}
	for i := range items {
		items[i].UnitPrice = recipes[items[i].RecipeID].UnitPrice
	}
	return items, totals, nil
}

// checkAvailability verifies every requirement before anything is written.
func (s *OrderService) checkAvailability(ctx context.Context, totals []domain.IngredientRequirement) error {
	for _, req := range totals {
		item, err := s.inventory.FindByID(ctx, req.InventoryItemID)
		if err != nil {
			return s.wrapLookup(err, "inventory item")
		}
		if item.CurrentStock.LessThan(req.Quantity) {
			return &domain.InsufficientStockError{
				ItemID:    item.ID,
				ItemName:  item.Name,
				Required:  req.Quantity,
				Available: item.CurrentStock,
				Unit:      item.Unit,
			}
		}
	}
	return nil
}

func (s *OrderService) wrapLookup(err error, resource string) error {
	var nf *domain.NotFoundError
	if errors.As(err, &nf) {
		return err
	}
	return fmt.Errorf("failed to load %s: %w", resource, err)
}

// CreateOrder validates the order, checks stock for the aggregated demand and
// persists it as Draft. Inventory is not touched.
func (s *OrderService) CreateOrder(ctx context.Context, cmd commands.CreateOrderCommand) (*domain.Order, error) {
	customer := cmd.Customer
	if err := customer.Validate(); err != nil {
		return nil, err
	}
	if err := validateLines(cmd.Items); err != nil {
		return nil, err
	}

	items, totals, err := s.priceLines(ctx, cmd.Items)
	if err != nil {
		return nil, err
	}
	if err := s.checkAvailability(ctx, totals); err != nil {
		return nil, err
	}

	actor := ActorFromContext(ctx)
	now := s.now()
	order := &domain.Order{
		ID:               uuid.New(),
		Customer:         customer,
		Items:            items,
		TotalIngredients: totals,
		StatusHistory:    []domain.StatusEntry{},
		OrderDate:        now,
		DeliveryDate:     cmd.DeliveryDate,
		Notes:            cmd.Notes,
		CreatedBy:        actor,
		Version:          1,
	}
	order.RecomputeTotals()
	order.RecordStatus(domain.StatusDraft, actor, "Order created", now)

	for attempt := 1; ; attempt++ {
		order.OrderNumber = domain.NewOrderNumber(now)
		err = s.orders.Create(ctx, order)
		var conflict *domain.ConflictError
		if err == nil || !errors.As(err, &conflict) || attempt == orderNumberAttempts {
			break
		}
		s.logger.Warn("Order number collision, retrying", zap.String("order_number", order.OrderNumber))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to save order: %w", err)
	}

	s.logger.Info("Order created",
		zap.String("order_id", order.ID.String()),
		zap.String("order_number", order.OrderNumber),
		zap.Int("lines", len(order.Items)),
	)
	publish(ctx, s.eventBus, s.logger, events.OrderCreatedEvent{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		Status:      order.Status.String(),
		ItemsTotal:  order.ItemsTotal,
		CreatedBy:   actor,
		OccurredAt:  now,
	})
	return order, nil
}

// UpdateOrder edits a Draft order. Changing the items recomputes prices and
// the ingredient snapshot; stock is not re-validated here.
func (s *OrderService) UpdateOrder(ctx context.Context, cmd commands.UpdateOrderCommand) (*domain.Order, error) {
	order, err := s.findOrder(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}
	if !order.IsEditable() {
		return nil, &domain.InvalidStateError{
			Resource:  "order",
			ID:        order.ID.String(),
			State:     order.Status.String(),
			Operation: "update",
		}
	}

	if cmd.Customer != nil {
		customer := *cmd.Customer
		if err := customer.Validate(); err != nil {
			return nil, err
		}
		order.Customer = customer
	}
	if cmd.Items != nil {
		if err := validateLines(cmd.Items); err != nil {
			return nil, err
		}
		items, totals, err := s.priceLines(ctx, cmd.Items)
		if err != nil {
			return nil, err
		}
		order.Items = items
		order.TotalIngredients = totals
		order.RecomputeTotals()
	}
	if cmd.DeliveryDate != nil {
		order.DeliveryDate = cmd.DeliveryDate
	}
	if cmd.Notes != nil {
		order.Notes = *cmd.Notes
	}
	order.UpdatedAt = s.now()

	if err := s.orders.Update(ctx, order); err != nil {
		return nil, s.wrapWrite(err, "order")
	}

	s.logger.Info("Order updated", zap.String("order_id", order.ID.String()))
	publish(ctx, s.eventBus, s.logger, events.OrderUpdatedEvent{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		ItemsTotal:  order.ItemsTotal,
		OccurredAt:  order.UpdatedAt,
	})
	return order, nil
}

// DeleteOrder removes a Draft or Cancelled order.
func (s *OrderService) DeleteOrder(ctx context.Context, cmd commands.DeleteOrderCommand) error {
	order, err := s.findOrder(ctx, cmd.ID)
	if err != nil {
		return err
	}
	if !order.IsDeletable() {
		return &domain.InvalidStateError{
			Resource:  "order",
			ID:        order.ID.String(),
			State:     order.Status.String(),
			Operation: "delete",
		}
	}
	if err := s.orders.Delete(ctx, order.ID); err != nil {
		return s.wrapWrite(err, "order")
	}

	s.logger.Info("Order deleted", zap.String("order_id", order.ID.String()))
	publish(ctx, s.eventBus, s.logger, events.OrderDeletedEvent{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		OccurredAt:  s.now(),
	})
	return nil
}

// UpdateOrderStatus moves the order to cmd.Status and applies the stock
// effect keyed on the (old, new) pair.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, cmd commands.UpdateOrderStatusCommand) (*StatusUpdateResult, error) {
	if !cmd.Status.Valid() {
		return nil, &domain.ValidationError{Field: "status", Message: "invalid status"}
	}
	order, err := s.findOrder(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	from, to := order.Status, cmd.Status
	if s.strict && !from.CanTransitionTo(to) {
		return nil, &domain.InvalidStateError{
			Resource:  "order",
			ID:        order.ID.String(),
			State:     from.String(),
			Operation: "transition to " + to.String(),
		}
	}

	actor := ActorFromContext(ctx)
	now := s.now()
	result := &StatusUpdateResult{Order: order}

	// Stock writes applied by this transition, undone if the order write fails.
	var (
		adjusted []stockAdjustment
		moved    []goodsMovement
	)

	switch {
	case from == domain.StatusDraft && to == domain.StatusIngredientsAllocated:
		if err := s.checkAvailability(ctx, order.TotalIngredients); err != nil {
			return nil, err
		}
		adjusted, err = s.adjustInventory(ctx, order, true, actor)
		if err != nil {
			return nil, err
		}
	case from == domain.StatusIngredientsAllocated && to == domain.StatusCancelled:
		adjusted, err = s.adjustInventory(ctx, order, false, actor)
		if err != nil {
			return nil, err
		}
	}

	if to == domain.StatusReadyForDispatch && from != domain.StatusReadyForDispatch {
		moved, err = s.produceFinishedGoods(ctx, order, actor, now)
		if err != nil {
			s.compensate(ctx, order.ID, adjusted, actor)
			return nil, err
		}
	}
	if to == domain.StatusDelivered && from != domain.StatusDelivered {
		var warnings []FulfillmentWarning
		moved, warnings, err = s.consumeFinishedGoods(ctx, order, actor, now)
		if err != nil {
			s.compensate(ctx, order.ID, adjusted, actor)
			return nil, err
		}
		result.Warnings = warnings
	}

	order.RecordStatus(to, actor, cmd.Notes, now)
	if err := s.orders.Update(ctx, order); err != nil {
		s.reverseGoods(ctx, order, moved, actor)
		s.compensate(ctx, order.ID, adjusted, actor)
		return nil, s.wrapWrite(err, "order")
	}

	for _, adj := range adjusted {
		publishStockChange(ctx, s.eventBus, s.logger, adj.item, adj.delta, adj.reason, &order.ID)
	}
	for _, mv := range moved {
		s.publishFinishedGoods(ctx, mv.goods, mv.entry)
	}

	s.logger.Info("Order status changed",
		zap.String("order_id", order.ID.String()),
		zap.String("from", from.String()),
		zap.String("to", to.String()),
		zap.String("actor", actor),
		zap.Int("warnings", len(result.Warnings)),
	)
	publish(ctx, s.eventBus, s.logger, events.OrderStatusChangedEvent{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		From:        from.String(),
		To:          to.String(),
		Actor:       actor,
		Warnings:    len(result.Warnings),
		OccurredAt:  now,
	})
	return result, nil
}

type stockAdjustment struct {
	item   *domain.InventoryItem
	delta  decimal.Decimal
	reason string
}

// adjustInventory applies the order's ingredient snapshot one item at a time,
// deducting when deduct is true and restoring otherwise. Each write is a
// conditional update; on the first failure the writes already applied are
// reversed and the original error is returned.
func (s *OrderService) adjustInventory(ctx context.Context, order *domain.Order, deduct bool, actor string) ([]stockAdjustment, error) {
	reason := events.ReasonRestore
	if deduct {
		reason = events.ReasonAllocation
	}

	applied := make([]stockAdjustment, 0, len(order.TotalIngredients))
	for _, req := range order.TotalIngredients {
		delta := req.Quantity
		if deduct {
			delta = delta.Neg()
		}
		item, err := s.inventory.AdjustStock(ctx, req.InventoryItemID, delta, actor, s.now())
		if err != nil {
			s.logger.Warn("Inventory adjustment failed mid-order",
				zap.String("order_id", order.ID.String()),
				zap.String("item_id", req.InventoryItemID.String()),
				zap.Int("applied", len(applied)),
				zap.Error(err),
			)
			s.compensate(ctx, order.ID, applied, actor)
			return nil, s.wrapStockWrite(err)
		}
		applied = append(applied, stockAdjustment{item: item, delta: delta, reason: reason})
	}
	return applied, nil
}

// compensate reverses applied adjustments in reverse order. It runs even when
// the request context is already cancelled.
func (s *OrderService) compensate(ctx context.Context, orderID uuid.UUID, applied []stockAdjustment, actor string) {
	ctx = context.WithoutCancel(ctx)
	for i := len(applied) - 1; i >= 0; i-- {
		adj := applied[i]
		if _, err := s.inventory.AdjustStock(ctx, adj.item.ID, adj.delta.Neg(), actor, s.now()); err != nil {
			s.logger.Error("Failed to compensate inventory adjustment",
				zap.String("order_id", orderID.String()),
				zap.String("item_id", adj.item.ID.String()),
				zap.String("delta", adj.delta.Neg().String()),
				zap.Error(err),
			)
		}
	}
}

type goodsMovement struct {
	goods *domain.FinishedGoods
	entry domain.StockTransaction
}

// reverseGoods undoes finished-goods movements in reverse order with an
// opposite entry tagged with the order: Wasted for a production, Adjusted for
// a sale.
func (s *OrderService) reverseGoods(ctx context.Context, order *domain.Order, moved []goodsMovement, actor string) {
	ctx = context.WithoutCancel(ctx)
	for i := len(moved) - 1; i >= 0; i-- {
		mv := moved[i]
		txType := domain.TransactionAdjusted
		if mv.entry.Quantity.IsPositive() {
			txType = domain.TransactionWasted
		}
		orderID := order.ID
		_, _, err := s.goods.ApplyTransaction(ctx, mv.goods.ID, repository.TransactionInput{
			Type:     txType,
			Quantity: mv.entry.Quantity.Abs(),
			OrderID:  &orderID,
			Notes:    fmt.Sprintf("Reversal of %s for order %s", mv.entry.TransactionType, order.OrderNumber),
			Actor:    actor,
			At:       s.now(),
		})
		if err != nil {
			s.logger.Error("Failed to reverse finished goods movement",
				zap.String("order_id", order.ID.String()),
				zap.String("finished_goods_id", mv.goods.ID.String()),
				zap.String("quantity", mv.entry.Quantity.String()),
				zap.Error(err),
			)
		}
	}
}

// produceFinishedGoods adds each line's quantity to its recipe's finished goods.
// Lines without a finished-goods record are skipped. On failure the lines
// already produced are reversed.
func (s *OrderService) produceFinishedGoods(ctx context.Context, order *domain.Order, actor string, now time.Time) ([]goodsMovement, error) {
	var moved []goodsMovement
	for _, line := range order.Items {
		fg, err := s.goods.FindByRecipeID(ctx, line.RecipeID)
		if err != nil {
			var nf *domain.NotFoundError
			if errors.As(err, &nf) {
				continue
			}
			s.reverseGoods(ctx, order, moved, actor)
			return nil, fmt.Errorf("failed to load finished goods: %w", err)
		}

		orderID := order.ID
		updated, entry, err := s.goods.ApplyTransaction(ctx, fg.ID, repository.TransactionInput{
			Type:     domain.TransactionProduced,
			Quantity: line.Quantity,
			OrderID:  &orderID,
			Notes:    "Produced for order " + order.OrderNumber,
			Actor:    actor,
			At:       now,
		})
		if err != nil {
			s.reverseGoods(ctx, order, moved, actor)
			return nil, s.wrapStockWrite(err)
		}
		moved = append(moved, goodsMovement{goods: updated, entry: entry})
	}
	return moved, nil
}

// consumeFinishedGoods takes each line out of finished-goods stock. A line with
// too little stock is skipped and reported as a warning instead of an error.
// On any other failure the lines already consumed are reversed.
func (s *OrderService) consumeFinishedGoods(ctx context.Context, order *domain.Order, actor string, now time.Time) ([]goodsMovement, []FulfillmentWarning, error) {
	var (
		moved    []goodsMovement
		warnings []FulfillmentWarning
	)
	for _, line := range order.Items {
		fg, err := s.goods.FindByRecipeID(ctx, line.RecipeID)
		if err != nil {
			var nf *domain.NotFoundError
			if errors.As(err, &nf) {
				continue
			}
			s.reverseGoods(ctx, order, moved, actor)
			return nil, nil, fmt.Errorf("failed to load finished goods: %w", err)
		}

		shortfall := func(available decimal.Decimal) {
			warnings = append(warnings, FulfillmentWarning{
				RecipeID:        line.RecipeID,
				FinishedGoodsID: fg.ID,
				Name:            fg.Name,
				Required:        line.Quantity,
				Available:       available,
				Message:         fmt.Sprintf("insufficient finished goods stock for %s: required %s, available %s", fg.Name, line.Quantity, available),
			})
		}
		if fg.CurrentStock.LessThan(line.Quantity) {
			shortfall(fg.CurrentStock)
			continue
		}

		orderID := order.ID
		updated, entry, err := s.goods.ApplyTransaction(ctx, fg.ID, repository.TransactionInput{
			Type:     domain.TransactionSold,
			Quantity: line.Quantity,
			OrderID:  &orderID,
			Notes:    "Delivered with order " + order.OrderNumber,
			Actor:    actor,
			At:       now,
		})
		if err != nil {
			var stockErr *domain.InsufficientStockError
			if errors.As(err, &stockErr) {
				shortfall(stockErr.Available)
				continue
			}
			s.reverseGoods(ctx, order, moved, actor)
			return nil, nil, s.wrapStockWrite(err)
		}
		moved = append(moved, goodsMovement{goods: updated, entry: entry})
	}

	for _, w := range warnings {
		s.logger.Warn("Delivered without finished goods stock",
			zap.String("order_id", order.ID.String()),
			zap.String("finished_goods_id", w.FinishedGoodsID.String()),
			zap.String("required", w.Required.String()),
			zap.String("available", w.Available.String()),
		)
	}
	return moved, warnings, nil
}

func (s *OrderService) publishFinishedGoods(ctx context.Context, fg *domain.FinishedGoods, entry domain.StockTransaction) {
	publish(ctx, s.eventBus, s.logger, events.FinishedGoodsStockChangedEvent{
		FinishedGoodsID: fg.ID,
		Name:            fg.Name,
		TransactionType: string(entry.TransactionType),
		Quantity:        entry.Quantity,
		NewStock:        fg.CurrentStock,
		OrderID:         entry.OrderID,
		OccurredAt:      entry.Date,
	})
}

// GetOrder returns the order with recipe and inventory item names resolved.
func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*OrderDetails, error) {
	order, err := s.findOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.Details(ctx, order)
}

// Details joins recipe and inventory item names onto an order already loaded.
func (s *OrderService) Details(ctx context.Context, order *domain.Order) (*OrderDetails, error) {
	details := &OrderDetails{
		Order:            order,
		Items:            make([]OrderLineDetails, len(order.Items)),
		TotalIngredients: make([]IngredientDetails, len(order.TotalIngredients)),
	}

	names := make(map[uuid.UUID]string)
	for i, line := range order.Items {
		name, ok := names[line.RecipeID]
		if !ok {
			recipe, err := s.recipes.FindByID(ctx, line.RecipeID)
			if err != nil && !isNotFound(err) {
				return nil, fmt.Errorf("failed to load recipe: %w", err)
			}
			if recipe != nil {
				name = recipe.Name
			}
			names[line.RecipeID] = name
		}
		details.Items[i] = OrderLineDetails{OrderItem: line, RecipeName: name}
	}
	for i, req := range order.TotalIngredients {
		item, err := s.inventory.FindByID(ctx, req.InventoryItemID)
		if err != nil && !isNotFound(err) {
			return nil, fmt.Errorf("failed to load inventory item: %w", err)
		}
		details.TotalIngredients[i] = IngredientDetails{IngredientRequirement: req}
		if item != nil {
			details.TotalIngredients[i].ItemName = item.Name
		}
	}
	return details, nil
}

// ListOrders returns matching orders, newest first.
func (s *OrderService) ListOrders(ctx context.Context, filter repository.OrderFilter) ([]*domain.Order, error) {
	orders, err := s.orders.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

func (s *OrderService) findOrder(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, s.wrapLookup(err, "order")
	}
	return order, nil
}

func (s *OrderService) wrapWrite(err error, resource string) error {
	return wrapWrite(err, resource)
}

func (s *OrderService) wrapStockWrite(err error) error {
	return wrapWrite(err, "stock")
}

// wrapWrite passes typed domain errors through and wraps everything else.
// A lost version race stays matchable as domain.ErrConcurrentUpdate.
func wrapWrite(err error, resource string) error {
	if isDomainError(err) {
		return err
	}
	return fmt.Errorf("failed to write %s: %w", resource, err)
}

func isDomainError(err error) bool {
	var (
		nf    *domain.NotFoundError
		cf    *domain.ConflictError
		valid *domain.ValidationError
		stock *domain.InsufficientStockError
		state *domain.InvalidStateError
	)
	return errors.As(err, &nf) || errors.As(err, &cf) || errors.As(err, &valid) ||
		errors.As(err, &stock) || errors.As(err, &state)
}

func isNotFound(err error) bool {
	var nf *domain.NotFoundError
	return errors.As(err, &nf)
}
