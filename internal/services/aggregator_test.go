package services

import (
	"context"
	"testing"

	"kitchen-service/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregator_ScalesByStandardYield(t *testing.T) {
	env := newTestEnv(t)
	x := env.addItem(t, "Sugar", "100", "0")
	cake := env.addRecipe(t, "Cake", "2", "10", ingredient(x, "10"))
	agg := NewIngredientAggregator(env.recipes)

	for qty, want := range map[int64]string{1: "5", 3: "15"} {
		totals, err := agg.ComputeTotalIngredients(context.Background(), []domain.OrderItem{
			{RecipeID: cake.ID, Quantity: decimal.NewFromInt(qty)},
		})
		require.NoError(t, err)
		require.Len(t, totals, 1)
		assert.Equal(t, x.ID, totals[0].InventoryItemID)
		assert.True(t, totals[0].Quantity.Equal(d(want)), "qty %d: got %s", qty, totals[0].Quantity)
		assert.Equal(t, domain.UnitKilogram, totals[0].Unit)
	}
}

func TestAggregator_SumsSharedIngredientsAcrossRecipes(t *testing.T) {
	env := newTestEnv(t)
	flour := env.addItem(t, "Flour", "10", "0")
	cheese := env.addItem(t, "Cheese", "10", "0")
	basil := env.addItem(t, "Basil", "10", "0")
	margherita := env.addRecipe(t, "Margherita", "1", "9", ingredient(flour, "0.35"), ingredient(cheese, "0.2"))
	focaccia := env.addRecipe(t, "Focaccia", "4", "6", ingredient(flour, "1"), ingredient(basil, "0.04"))

	totals, err := NewIngredientAggregator(env.recipes).ComputeTotalIngredients(context.Background(), []domain.OrderItem{
		{RecipeID: margherita.ID, Quantity: d("2")},
		{RecipeID: focaccia.ID, Quantity: d("2")},
	})
	require.NoError(t, err)
	require.Len(t, totals, 3)

	// insertion order of first encounter
	assert.Equal(t, flour.ID, totals[0].InventoryItemID)
	assert.Equal(t, cheese.ID, totals[1].InventoryItemID)
	assert.Equal(t, basil.ID, totals[2].InventoryItemID)

	assert.True(t, totals[0].Quantity.Equal(d("1.2")), totals[0].Quantity.String()) // 0.70 + 0.50
	assert.True(t, totals[1].Quantity.Equal(d("0.4")))
	assert.True(t, totals[2].Quantity.Equal(d("0.02")))
}

func TestAggregator_SameRecipeOnTwoLines(t *testing.T) {
	env := newTestEnv(t)
	flour := env.addItem(t, "Flour", "10", "0")
	margherita := env.addRecipe(t, "Margherita", "1", "9", ingredient(flour, "0.35"))

	totals, err := NewIngredientAggregator(env.recipes).ComputeTotalIngredients(context.Background(), []domain.OrderItem{
		{RecipeID: margherita.ID, Quantity: d("1")},
		{RecipeID: margherita.ID, Quantity: d("3")},
	})
	require.NoError(t, err)
	require.Len(t, totals, 1)
	assert.True(t, totals[0].Quantity.Equal(d("1.4")))
}

func TestAggregator_NonPositiveYieldCountsAsOne(t *testing.T) {
	env := newTestEnv(t)
	flour := env.addItem(t, "Flour", "10", "0")
	zero := env.addRecipe(t, "Zero", "0", "1", ingredient(flour, "2"))
	negative := env.addRecipe(t, "Negative", "-4", "1", ingredient(flour, "3"))
	agg := NewIngredientAggregator(env.recipes)

	totals, err := agg.ComputeTotalIngredients(context.Background(), []domain.OrderItem{{RecipeID: zero.ID, Quantity: d("2")}})
	require.NoError(t, err)
	assert.True(t, totals[0].Quantity.Equal(d("4")))

	totals, err = agg.ComputeTotalIngredients(context.Background(), []domain.OrderItem{{RecipeID: negative.ID, Quantity: d("2")}})
	require.NoError(t, err)
	assert.True(t, totals[0].Quantity.Equal(d("6")))
}

func TestAggregator_RecipeNotFound(t *testing.T) {
	env := newTestEnv(t)
	_, err := NewIngredientAggregator(env.recipes).ComputeTotalIngredients(context.Background(), []domain.OrderItem{
		{RecipeID: uuid.New(), Quantity: d("1")},
	})

	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "recipe", nf.Resource)
}
