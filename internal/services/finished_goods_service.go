package services

import (
	"context"
	"fmt"

	"kitchen-service/internal/commands"
	"kitchen-service/internal/domain"
	"kitchen-service/internal/events"
	"kitchen-service/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FinishedGoodsService is the ledger for completed, sellable products.
type FinishedGoodsService struct {
	goods    repository.FinishedGoodsRepository
	recipes  repository.RecipeRepository
	eventBus events.EventPublisher
	logger   *zap.Logger
	now      Clock
}

func NewFinishedGoodsService(goods repository.FinishedGoodsRepository, recipes repository.RecipeRepository, eventBus events.EventPublisher, logger *zap.Logger) *FinishedGoodsService {
	return &FinishedGoodsService{
		goods:    goods,
		recipes:  recipes,
		eventBus: eventBus,
		logger:   logger,
		now:      utcNow,
	}
}

func (s *FinishedGoodsService) requireRecipe(ctx context.Context, id uuid.UUID) error {
	if _, err := s.recipes.FindByID(ctx, id); err != nil {
		if isNotFound(err) {
			return err
		}
		return fmt.Errorf("failed to load recipe: %w", err)
	}
	return nil
}

func (s *FinishedGoodsService) CreateFinishedGoods(ctx context.Context, cmd commands.CreateFinishedGoodsCommand) (*domain.FinishedGoods, error) {
	fg, err := domain.NewFinishedGoods(cmd.Name, cmd.RecipeID, cmd.Unit, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.requireRecipe(ctx, cmd.RecipeID); err != nil {
		return nil, err
	}
	if err := s.goods.Create(ctx, fg); err != nil {
		return nil, wrapWrite(err, "finished goods")
	}

	s.logger.Info("Finished goods created",
		zap.String("finished_goods_id", fg.ID.String()),
		zap.String("recipe_id", fg.RecipeID.String()),
	)
	return fg, nil
}

// UpdateFinishedGoods changes name, recipe or unit. Stock moves only through transactions.
func (s *FinishedGoodsService) UpdateFinishedGoods(ctx context.Context, cmd commands.UpdateFinishedGoodsCommand) (*domain.FinishedGoods, error) {
	fg, err := s.GetFinishedGoods(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	if cmd.Name != nil {
		if *cmd.Name == "" {
			return nil, &domain.ValidationError{Field: "name", Message: "name is required"}
		}
		fg.Name = *cmd.Name
	}
	if cmd.RecipeID != nil {
		if err := s.requireRecipe(ctx, *cmd.RecipeID); err != nil {
			return nil, err
		}
		fg.RecipeID = *cmd.RecipeID
	}
	if cmd.Unit != nil {
		if !cmd.Unit.Valid() {
			return nil, &domain.ValidationError{Field: "unit", Message: "unknown unit"}
		}
		fg.Unit = *cmd.Unit
	}
	fg.UpdatedAt = s.now()

	if err := s.goods.Update(ctx, fg); err != nil {
		return nil, wrapWrite(err, "finished goods")
	}
	s.logger.Info("Finished goods updated", zap.String("finished_goods_id", fg.ID.String()))
	return fg, nil
}

// RecordTransaction books a manual Produced, Sold, Adjusted or Wasted movement.
func (s *FinishedGoodsService) RecordTransaction(ctx context.Context, cmd commands.RecordTransactionCommand) (*domain.FinishedGoods, error) {
	txType, err := domain.ParseTransactionType(string(cmd.TransactionType))
	if err != nil {
		return nil, err
	}
	if !cmd.Quantity.IsPositive() {
		return nil, domain.ErrInvalidQuantity
	}

	fg, entry, err := s.goods.ApplyTransaction(ctx, cmd.ID, repository.TransactionInput{
		Type:     txType,
		Quantity: cmd.Quantity,
		OrderID:  cmd.OrderID,
		Notes:    cmd.Notes,
		Actor:    ActorFromContext(ctx),
		At:       s.now(),
	})
	if err != nil {
		return nil, wrapWrite(err, "finished goods")
	}

	s.logger.Info("Finished goods transaction recorded",
		zap.String("finished_goods_id", fg.ID.String()),
		zap.String("type", string(entry.TransactionType)),
		zap.String("quantity", entry.Quantity.String()),
		zap.String("new_stock", fg.CurrentStock.String()),
	)
	publish(ctx, s.eventBus, s.logger, events.FinishedGoodsStockChangedEvent{
		FinishedGoodsID: fg.ID,
		Name:            fg.Name,
		TransactionType: string(entry.TransactionType),
		Quantity:        entry.Quantity,
		NewStock:        fg.CurrentStock,
		OrderID:         entry.OrderID,
		OccurredAt:      entry.Date,
	})
	return fg, nil
}

func (s *FinishedGoodsService) GetFinishedGoods(ctx context.Context, id uuid.UUID) (*domain.FinishedGoods, error) {
	fg, err := s.goods.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load finished goods: %w", err)
	}
	return fg, nil
}

func (s *FinishedGoodsService) ListFinishedGoods(ctx context.Context) ([]*domain.FinishedGoods, error) {
	goods, err := s.goods.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list finished goods: %w", err)
	}
	return goods, nil
}

func (s *FinishedGoodsService) DeleteFinishedGoods(ctx context.Context, id uuid.UUID) error {
	if err := s.goods.Delete(ctx, id); err != nil {
		return wrapWrite(err, "finished goods")
	}
	s.logger.Info("Finished goods deleted", zap.String("finished_goods_id", id.String()))
	return nil
}
