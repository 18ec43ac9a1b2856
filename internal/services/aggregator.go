package services

import (
	"context"
	"errors"
	"fmt"

	"kitchen-service/internal/domain"
	"kitchen-service/internal/repository"

	"github.com/google/uuid"
)

// IngredientAggregator turns order lines into the total raw-material demand.
// It only reads the recipe catalog.
type IngredientAggregator struct {
	recipes repository.RecipeRepository
}

func NewIngredientAggregator(recipes repository.RecipeRepository) *IngredientAggregator {
	return &IngredientAggregator{recipes: recipes}
}

// ComputeTotalIngredients scales each line's recipe to the ordered quantity
// and sums contributions per inventory item, in order of first encounter.
func (a *IngredientAggregator) ComputeTotalIngredients(ctx context.Context, items []domain.OrderItem) ([]domain.IngredientRequirement, error) {
	totals, _, err := a.aggregate(ctx, items)
	return totals, err
}

// aggregate also returns the recipes it loaded, keyed by id, for pricing.
func (a *IngredientAggregator) aggregate(ctx context.Context, items []domain.OrderItem) ([]domain.IngredientRequirement, map[uuid.UUID]*domain.Recipe, error) {
	recipes := make(map[uuid.UUID]*domain.Recipe, len(items))
	index := make(map[uuid.UUID]int)
	totals := make([]domain.IngredientRequirement, 0)

	for _, line := range items {
		recipe, ok := recipes[line.RecipeID]
		if !ok {
			found, err := a.recipes.FindByID(ctx, line.RecipeID)
			if err != nil {
				var nf *domain.NotFoundError
				if errors.As(err, &nf) {
					return nil, nil, err
				}
				return nil, nil, fmt.Errorf("failed to load recipe %s: %w", line.RecipeID, err)
			}
			recipe = found
			recipes[line.RecipeID] = recipe
		}

		for _, ing := range recipe.Ingredients {
			contribution := recipe.Scale(ing, line.Quantity)
			if i, seen := index[ing.InventoryItemID]; seen {
				totals[i].Quantity = totals[i].Quantity.Add(contribution)
				continue
			}
			index[ing.InventoryItemID] = len(totals)
			totals = append(totals, domain.IngredientRequirement{
				InventoryItemID: ing.InventoryItemID,
				Quantity:        contribution,
				Unit:            ing.Unit,
			})
		}
	}
	return totals, recipes, nil
}
