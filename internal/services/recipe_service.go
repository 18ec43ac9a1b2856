package services

import (
	"context"
	"fmt"

	"kitchen-service/internal/commands"
	"kitchen-service/internal/domain"
	"kitchen-service/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RecipeService is the recipe catalog.
type RecipeService struct {
	recipes   repository.RecipeRepository
	inventory repository.InventoryRepository
	logger    *zap.Logger
	now       Clock
}

func NewRecipeService(recipes repository.RecipeRepository, inventory repository.InventoryRepository, logger *zap.Logger) *RecipeService {
	return &RecipeService{
		recipes:   recipes,
		inventory: inventory,
		logger:    logger,
		now:       utcNow,
	}
}

// checkIngredients requires every ingredient to reference an existing item.
func (s *RecipeService) checkIngredients(ctx context.Context, recipe *domain.Recipe) error {
	for _, ing := range recipe.Ingredients {
		if _, err := s.inventory.FindByID(ctx, ing.InventoryItemID); err != nil {
			if isNotFound(err) {
				return err
			}
			return fmt.Errorf("failed to load inventory item: %w", err)
		}
	}
	return nil
}

func (s *RecipeService) CreateRecipe(ctx context.Context, cmd commands.CreateRecipeCommand) (*domain.Recipe, error) {
	now := s.now()
	recipe := &domain.Recipe{
		ID:               uuid.New(),
		Name:             cmd.Name,
		Description:      cmd.Description,
		Ingredients:      cmd.Ingredients,
		StandardUnit:     cmd.StandardUnit,
		StandardQuantity: cmd.StandardQuantity,
		UnitPrice:        cmd.UnitPrice,
		CreatedBy:        ActorFromContext(ctx),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := recipe.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkIngredients(ctx, recipe); err != nil {
		return nil, err
	}
	if err := s.recipes.Create(ctx, recipe); err != nil {
		return nil, wrapWrite(err, "recipe")
	}

	s.logger.Info("Recipe created",
		zap.String("recipe_id", recipe.ID.String()),
		zap.String("name", recipe.Name),
		zap.Int("ingredients", len(recipe.Ingredients)),
	)
	return recipe, nil
}

// UpdateRecipe edits the recipe in place. Existing orders keep their own snapshot.
func (s *RecipeService) UpdateRecipe(ctx context.Context, cmd commands.UpdateRecipeCommand) (*domain.Recipe, error) {
	recipe, err := s.GetRecipe(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	if cmd.Name != nil {
		recipe.Name = *cmd.Name
	}
	if cmd.Description != nil {
		recipe.Description = *cmd.Description
	}
	if cmd.Ingredients != nil {
		recipe.Ingredients = cmd.Ingredients
	}
	if cmd.StandardUnit != nil {
		recipe.StandardUnit = *cmd.StandardUnit
	}
	if cmd.StandardQuantity != nil {
		recipe.StandardQuantity = *cmd.StandardQuantity
	}
	if cmd.UnitPrice != nil {
		recipe.UnitPrice = *cmd.UnitPrice
	}
	if err := recipe.Validate(); err != nil {
		return nil, err
	}
	if cmd.Ingredients != nil {
		if err := s.checkIngredients(ctx, recipe); err != nil {
			return nil, err
		}
	}
	recipe.UpdatedAt = s.now()

	if err := s.recipes.Update(ctx, recipe); err != nil {
		return nil, wrapWrite(err, "recipe")
	}
	s.logger.Info("Recipe updated", zap.String("recipe_id", recipe.ID.String()))
	return recipe, nil
}

func (s *RecipeService) GetRecipe(ctx context.Context, id uuid.UUID) (*domain.Recipe, error) {
	recipe, err := s.recipes.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load recipe: %w", err)
	}
	return recipe, nil
}

func (s *RecipeService) ListRecipes(ctx context.Context) ([]*domain.Recipe, error) {
	recipes, err := s.recipes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	return recipes, nil
}

func (s *RecipeService) DeleteRecipe(ctx context.Context, id uuid.UUID) error {
	if err := s.recipes.Delete(ctx, id); err != nil {
		return wrapWrite(err, "recipe")
	}
	s.logger.Info("Recipe deleted", zap.String("recipe_id", id.String()))
	return nil
}
