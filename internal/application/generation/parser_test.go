package generation

import (
	"testing"

	apperrors "github.com/pantryloom/v1/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fencedReply = "Here you go!\n```json\n" + `{
    "title": "Pantry Pancakes",
    "ingredients": [
        ["flour", 200, "g"],
        ["milk", "300", "ml"],
        ["egg", 2]
    ],
    "instructions": [
        "Mix the batter.",
        "Fry until golden."
    ],
    "meal_type": "breakfast",
    "prep_time": "10 minutes",
    "cook_time": 15
}` + "\n```\nEnjoy!"

func TestParseRecipe_FencedJSON(t *testing.T) {
	cmd, err := ParseRecipe(fencedReply)
	require.NoError(t, err)

	assert.Equal(t, "Pantry Pancakes", cmd.Name)
	assert.Equal(t, "Mix the batter.\nFry until golden.", cmd.Instructions)
	require.NotNil(t, cmd.MealType)
	assert.Equal(t, "breakfast", *cmd.MealType)
	require.NotNil(t, cmd.PrepTime)
	assert.Equal(t, 10, *cmd.PrepTime)
	require.NotNil(t, cmd.CookTime)
	assert.Equal(t, 15, *cmd.CookTime)
	assert.Equal(t, 1, cmd.Servings)

	require.Len(t, cmd.Ingredients, 3)
	assert.Equal(t, "flour", cmd.Ingredients[0].IngredientName)
	assert.Equal(t, 200.0, cmd.Ingredients[0].Quantity)
	assert.Equal(t, "g", cmd.Ingredients[0].Unit)

	// Numeric string quantity
	assert.Equal(t, 300.0, cmd.Ingredients[1].Quantity)

	// Two-element line defaults the unit
	assert.Equal(t, "piece(s)", cmd.Ingredients[2].Unit)
}

func TestParseRecipe_BareJSONFallback(t *testing.T) {
	reply := `Sure thing: {"title": "Toast", "ingredients": [["bread", 2, "piece(s)"]], "instructions": ["Toast it."]}`

	cmd, err := ParseRecipe(reply)
	require.NoError(t, err)
	assert.Equal(t, "Toast", cmd.Name)
	assert.Nil(t, cmd.MealType)
	assert.Nil(t, cmd.PrepTime)
	assert.Nil(t, cmd.CookTime)
}

func TestParseRecipe_MissingTitleGetsDefault(t *testing.T) {
	reply := `{"ingredients": [], "instructions": ["Improvise."]}`

	cmd, err := ParseRecipe(reply)
	require.NoError(t, err)
	assert.Equal(t, "Untitled Recipe", cmd.Name)
}

func TestParseRecipe_UnusableTimesAreUnknown(t *testing.T) {
	reply := `{"title": "Soup", "ingredients": [], "instructions": [],
		"prep_time": "a while", "cook_time": null}`

	cmd, err := ParseRecipe(reply)
	require.NoError(t, err)
	assert.Nil(t, cmd.PrepTime)
	assert.Nil(t, cmd.CookTime)
}

func TestParseRecipe_BadIngredientFailsParse(t *testing.T) {
	tests := []struct {
		name  string
		reply string
	}{
		{
			name:  "one element",
			reply: `{"title": "X", "ingredients": [["flour"]], "instructions": []}`,
		},
		{
			name:  "four elements",
			reply: `{"title": "X", "ingredients": [["flour", 1, "g", "extra"]], "instructions": []}`,
		},
		{
			name:  "non-numeric quantity",
			reply: `{"title": "X", "ingredients": [["flour", "some", "g"]], "instructions": []}`,
		},
		{
			name:  "not an array",
			reply: `{"title": "X", "ingredients": [{"name": "flour"}], "instructions": []}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRecipe(tt.reply)
			require.Error(t, err)
			assert.Equal(t, apperrors.CodeParseError, apperrors.GetCode(err))
		})
	}
}

func TestParseRecipe_NoJSON(t *testing.T) {
	_, err := ParseRecipe("I am sorry, I cannot help with that.")
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeParseError, apperrors.GetCode(err))
}

func TestParseRecipe_InvalidJSON(t *testing.T) {
	_, err := ParseRecipe("```json\n{\"title\": }\n```")
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeParseError, apperrors.GetCode(err))
}
