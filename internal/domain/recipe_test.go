package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func margherita() *Recipe {
	return &Recipe{
		ID:   uuid.New(),
		Name: "Margherita",
		Ingredients: []RecipeIngredient{
			{InventoryItemID: uuid.New(), Quantity: dec("0.35"), Unit: UnitKilogram},
		},
		StandardUnit:     UnitPiece,
		StandardQuantity: dec("1"),
		UnitPrice:        dec("9.5"),
	}
}

func TestRecipeValidate(t *testing.T) {
	assert.NoError(t, margherita().Validate())

	r := margherita()
	r.Ingredients = nil
	var vErr *ValidationError
	assert.ErrorAs(t, r.Validate(), &vErr)
	assert.Equal(t, "ingredients", vErr.Field)

	r = margherita()
	r.Ingredients[0].Quantity = dec("0")
	assert.ErrorAs(t, r.Validate(), &vErr)

	r = margherita()
	r.StandardQuantity = dec("0.5")
	assert.ErrorAs(t, r.Validate(), &vErr)
	assert.Equal(t, "standardQuantity", vErr.Field)

	r = margherita()
	r.Name = "   "
	assert.ErrorAs(t, r.Validate(), &vErr)
}

func TestRecipeScale(t *testing.T) {
	r := margherita()
	assert.True(t, r.Scale(r.Ingredients[0], dec("2")).Equal(dec("0.70")))

	r.StandardQuantity = dec("4")
	r.Ingredients[0].Quantity = dec("1")
	assert.True(t, r.Scale(r.Ingredients[0], dec("2")).Equal(dec("0.5")))
}

func TestRecipeYield_GuardsNonPositive(t *testing.T) {
	r := margherita()
	r.StandardQuantity = dec("0")
	assert.True(t, r.Yield().Equal(dec("1")))
}
