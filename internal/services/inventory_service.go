package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"kitchen-service/internal/cache"
	"kitchen-service/internal/commands"
	"kitchen-service/internal/domain"
	"kitchen-service/internal/events"
	"kitchen-service/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// InventoryService is the raw-material stock ledger.
type InventoryService struct {
	repository repository.InventoryRepository
	cache      cache.Cache
	cacheTTL   time.Duration
	eventBus   events.EventPublisher
	logger     *zap.Logger
	now        Clock
}

func NewInventoryService(repo repository.InventoryRepository, c cache.Cache, cacheTTL time.Duration, eventBus events.EventPublisher, logger *zap.Logger) *InventoryService {
	return &InventoryService{
		repository: repo,
		cache:      c,
		cacheTTL:   cacheTTL,
		eventBus:   eventBus,
		logger:     logger,
		now:        utcNow,
	}
}

func (s *InventoryService) CreateItem(ctx context.Context, cmd commands.CreateItemCommand) (*domain.InventoryItem, error) {
	actor := ActorFromContext(ctx)
	item, err := domain.NewInventoryItem(cmd.Name, cmd.Unit, cmd.OpeningStock, cmd.ThresholdValue, actor, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.repository.Create(ctx, item); err != nil {
		return nil, wrapWrite(err, "inventory item")
	}

	s.logger.Info("Inventory item created",
		zap.String("item_id", item.ID.String()),
		zap.String("name", item.Name),
		zap.String("opening_stock", item.OpeningStock.String()),
	)
	publishStockChange(ctx, s.eventBus, s.logger, item, item.OpeningStock, events.ReasonCreated, nil)
	return item, nil
}

// UpdateItem edits scalar fields. Every successful edit is published as a
// stock change so cached listings pick up the new values.
func (s *InventoryService) UpdateItem(ctx context.Context, cmd commands.UpdateItemCommand) (*domain.InventoryItem, error) {
	item, err := s.GetItem(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	previous := item.CurrentStock
	if cmd.Name != nil {
		item.Name = strings.TrimSpace(*cmd.Name)
	}
	if cmd.Unit != nil {
		item.Unit = *cmd.Unit
	}
	if cmd.ThresholdValue != nil {
		item.ThresholdValue = *cmd.ThresholdValue
	}
	if cmd.CurrentStock != nil {
		item.CurrentStock = *cmd.CurrentStock
	}
	if err := validateItemFields(item); err != nil {
		return nil, err
	}
	item.LastUpdated = s.now()
	item.UpdatedBy = ActorFromContext(ctx)

	if err := s.repository.Update(ctx, item); err != nil {
		return nil, wrapWrite(err, "inventory item")
	}

	s.logger.Info("Inventory item updated", zap.String("item_id", item.ID.String()))
	publishStockChange(ctx, s.eventBus, s.logger, item, item.CurrentStock.Sub(previous), events.ReasonEdit, nil)
	return item, nil
}

func validateItemFields(item *domain.InventoryItem) error {
	if item.Name == "" {
		return &domain.ValidationError{Field: "name", Message: "name is required"}
	}
	if !item.Unit.Valid() {
		return &domain.ValidationError{Field: "unit", Message: "unknown unit"}
	}
	if item.ThresholdValue.IsNegative() {
		return &domain.ValidationError{Field: "thresholdValue", Message: "threshold cannot be negative"}
	}
	if item.CurrentStock.IsNegative() {
		return &domain.ValidationError{Field: "currentStock", Message: "stock cannot be negative"}
	}
	return nil
}

func (s *InventoryService) GetItem(ctx context.Context, id uuid.UUID) (*domain.InventoryItem, error) {
	item, err := s.repository.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load inventory item: %w", err)
	}
	return item, nil
}

func (s *InventoryService) ListItems(ctx context.Context) ([]*domain.InventoryItem, error) {
	items, err := s.repository.List(ctx, repository.InventoryFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory items: %w", err)
	}
	return items, nil
}

// LowStockItems lists items with currentStock <= thresholdValue. The result
// is cached until a stock event invalidates it.
func (s *InventoryService) LowStockItems(ctx context.Context) ([]*domain.InventoryItem, error) {
	if s.cache != nil {
		var cached []*domain.InventoryItem
		if err := cache.GetJSON(ctx, s.cache, cache.LowStockKey, &cached); err == nil {
			return cached, nil
		} else if !errors.Is(err, cache.ErrCacheMiss) {
			s.logger.Warn("Low stock cache read failed", zap.Error(err))
		}
	}

	items, err := s.repository.List(ctx, repository.InventoryFilter{LowStockOnly: true})
	if err != nil {
		return nil, fmt.Errorf("failed to list low stock items: %w", err)
	}

	if s.cache != nil {
		if err := cache.SetJSON(ctx, s.cache, cache.LowStockKey, items, s.cacheTTL); err != nil {
			s.logger.Warn("Low stock cache write failed", zap.Error(err))
		}
	}
	return items, nil
}

// RecordPurchase appends to the purchase log and adds the quantity to stock.
func (s *InventoryService) RecordPurchase(ctx context.Context, cmd commands.RecordPurchaseCommand) (*domain.InventoryItem, error) {
	if !cmd.Quantity.IsPositive() {
		return nil, domain.ErrInvalidQuantity
	}
	entry := domain.PurchaseEntry{
		Quantity: cmd.Quantity,
		Cost:     cmd.Cost,
		Vendor:   cmd.Vendor,
		Date:     s.now(),
		Actor:    ActorFromContext(ctx),
	}
	item, err := s.repository.AppendPurchase(ctx, cmd.ID, entry)
	if err != nil {
		return nil, wrapWrite(err, "inventory item")
	}

	s.logger.Info("Purchase recorded",
		zap.String("item_id", item.ID.String()),
		zap.String("quantity", cmd.Quantity.String()),
		zap.String("new_stock", item.CurrentStock.String()),
	)
	publishStockChange(ctx, s.eventBus, s.logger, item, cmd.Quantity, events.ReasonPurchase, nil)
	return item, nil
}

// DeleteItem removes the item without checking recipe or order references.
func (s *InventoryService) DeleteItem(ctx context.Context, cmd commands.DeleteItemCommand) error {
	item, err := s.GetItem(ctx, cmd.ID)
	if err != nil {
		return err
	}
	if err := s.repository.Delete(ctx, cmd.ID); err != nil {
		return wrapWrite(err, "inventory item")
	}

	s.logger.Info("Inventory item deleted", zap.String("item_id", cmd.ID.String()))
	publish(ctx, s.eventBus, s.logger, events.InventoryStockChangedEvent{
		ItemID:     item.ID,
		Name:       item.Name,
		Delta:      item.CurrentStock.Neg(),
		NewStock:   decimal.Zero,
		Reason:     events.ReasonDeleted,
		Actor:      ActorFromContext(ctx),
		OccurredAt: s.now(),
	})
	return nil
}
