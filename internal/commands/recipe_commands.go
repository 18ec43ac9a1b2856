package commands

import (
	"kitchen-service/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateRecipeCommand struct {
	Name             string
	Description      string
	Ingredients      []domain.RecipeIngredient
	StandardUnit     domain.Unit
	StandardQuantity decimal.Decimal
	UnitPrice        decimal.Decimal
}

// UpdateRecipeCommand replaces the given fields. A nil Ingredients keeps the list.
type UpdateRecipeCommand struct {
	ID               uuid.UUID
	Name             *string
	Description      *string
	Ingredients      []domain.RecipeIngredient
	StandardUnit     *domain.Unit
	StandardQuantity *decimal.Decimal
	UnitPrice        *decimal.Decimal
}
