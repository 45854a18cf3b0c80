package generation

import (
	"strings"
	"testing"

	"github.com/pantryloom/v1/internal/ports/inbound"
	"github.com/stretchr/testify/assert"
)

func TestBuildSystemPrompt(t *testing.T) {
	prompt := BuildSystemPrompt(PromptContext{
		IngredientNames: []string{"flour", "milk"},
		UnitNames:       []string{"g", "ml", "piece(s)"},
		RecipeNames:     []string{"pancakes"},
	})

	assert.Contains(t, prompt, "flour, milk")
	assert.Contains(t, prompt, "g, ml, piece(s)")
	assert.Contains(t, prompt, "NOT included in this list: pancakes")
	assert.Contains(t, prompt, `default to using "piece(s)"`)
}

func TestBuildUserPrompt(t *testing.T) {
	stock := []inbound.PantryStock{
		{IngredientName: "flour", Quantity: 1000, Unit: "g"},
		{IngredientName: "milk", Quantity: 750, Unit: "ml"},
	}

	t.Run("with style preference", func(t *testing.T) {
		prompt := BuildUserPrompt("rustic Italian", nil, stock)
		assert.True(t, strings.HasPrefix(prompt, "Please make the recipe in this style: rustic Italian\n"))
		assert.Contains(t, prompt, "Here is a summary of the ingredients in my pantry:\n")
		assert.Contains(t, prompt, "flour: 1000 g total in pantry\n")
		assert.Contains(t, prompt, "milk: 750 ml total in pantry\n")
	})

	t.Run("without preference", func(t *testing.T) {
		prompt := BuildUserPrompt("", nil, stock)
		assert.True(t, strings.HasPrefix(prompt, "Here is a summary"))
	})

	t.Run("requested ingredients come before the pantry", func(t *testing.T) {
		prompt := BuildUserPrompt("", []string{"egg", "milk"}, stock)
		assert.True(t, strings.HasPrefix(prompt, "Please build the recipe around these ingredients: egg, milk\n"))
		assert.Contains(t, prompt, "Here is a summary of the ingredients in my pantry:\n")
	})
}

func TestFormatPantrySummary(t *testing.T) {
	summary := FormatPantrySummary([]inbound.PantryStock{
		{IngredientName: "egg", Quantity: 6, Unit: "piece(s)"},
		{IngredientName: "milk", Quantity: 2.5, Unit: "L"},
	})

	assert.Equal(t, "egg: 6 piece(s) total in pantry\nmilk: 2.5 L total in pantry\n", summary)
}
