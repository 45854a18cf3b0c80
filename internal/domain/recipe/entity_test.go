package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testRecipe() Recipe {
	return Recipe{
		Name:     "Shakshuka",
		Servings: 2,
		Ingredients: []IngredientLine{
			{IngredientName: "Eggs", Quantity: 4, Unit: "piece(s)"},
			{IngredientName: "Tomato", Quantity: 3, Unit: "piece(s)"},
			{IngredientName: "Olive Oil", Quantity: 2, Unit: "tbsp."},
		},
	}
}

func TestRecipeValidate(t *testing.T) {
	t.Run("valid recipe", func(t *testing.T) {
		assert.NoError(t, testRecipe().Validate())
	})

	t.Run("missing name", func(t *testing.T) {
		r := testRecipe()
		r.Name = "  "
		assert.ErrorIs(t, r.Validate(), ErrNameRequired)
	})

	t.Run("negative prep time", func(t *testing.T) {
		r := testRecipe()
		neg := -5
		r.PrepTime = &neg
		assert.ErrorIs(t, r.Validate(), ErrNegativeTime)
	})

	t.Run("zero servings", func(t *testing.T) {
		r := testRecipe()
		r.Servings = 0
		assert.ErrorIs(t, r.Validate(), ErrInvalidServings)
	})

	t.Run("invalid line fails the recipe", func(t *testing.T) {
		r := testRecipe()
		r.Ingredients[1].Quantity = 0
		assert.ErrorIs(t, r.Validate(), ErrNonPositiveQuantity)
	})
}

func TestHasAllIngredients(t *testing.T) {
	r := testRecipe()

	t.Run("subset matches", func(t *testing.T) {
		assert.True(t, r.HasAllIngredients([]string{"eggs", "tomato"}))
	})

	t.Run("matching is case-insensitive", func(t *testing.T) {
		assert.True(t, r.HasAllIngredients([]string{"EGGS", "Olive oil"}))
	})

	t.Run("missing ingredient fails", func(t *testing.T) {
		assert.False(t, r.HasAllIngredients([]string{"eggs", "feta"}))
	})

	t.Run("empty request matches", func(t *testing.T) {
		assert.True(t, r.HasAllIngredients(nil))
	})
}

func TestUsesOnly(t *testing.T) {
	r := testRecipe()

	t.Run("full cover", func(t *testing.T) {
		available := map[string]struct{}{
			"eggs": {}, "tomato": {}, "olive oil": {}, "flour": {},
		}
		assert.True(t, r.UsesOnly(available))
	})

	t.Run("missing one line fails", func(t *testing.T) {
		available := map[string]struct{}{"eggs": {}, "tomato": {}}
		assert.False(t, r.UsesOnly(available))
	})
}

func TestFilterCriteriaEmpty(t *testing.T) {
	assert.True(t, FilterCriteria{}.Empty())

	min := 10
	assert.False(t, FilterCriteria{PrepTimeMin: &min}.Empty())
	assert.False(t, FilterCriteria{IngredientsAvailable: true}.Empty())
	assert.False(t, FilterCriteria{Ingredients: []string{"eggs"}}.Empty())
}
