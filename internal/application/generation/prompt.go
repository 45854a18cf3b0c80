package generation

import (
	"fmt"
	"strings"

	"github.com/pantryloom/v1/internal/ports/inbound"
)

// PromptContext is everything the system prompt is built from: the
// catalogs the model must stay inside, and the names it must avoid.
type PromptContext struct {
	IngredientNames []string
	UnitNames       []string
	RecipeNames     []string
}

// BuildSystemPrompt instructs the model to cook strictly from the
// catalog, name ingredients letter for letter, and reply in the JSON
// shape the parser expects.
func BuildSystemPrompt(pctx PromptContext) string {
	ingredients := strings.Join(pctx.IngredientNames, ", ")
	units := strings.Join(pctx.UnitNames, ", ")
	recipes := strings.Join(pctx.RecipeNames, ", ")

	return strings.TrimSpace(fmt.Sprintf(`You are a helpful assistant that generates detailed recipes based on a provided list of ingredients.
Please adhere to the following guidelines:
1. Prioritise using mostly just the ingredients from the user's pantry.
   If needed, you can also use the following ingredients list: %s. USE NOTHING ELSE.
2. Include a list of the required ingredients for the recipe. You MUST use EXACTLY the SAME name and SAME spelling as provided.
3. Provide clear, step-by-step cooking instructions.
4. Estimate approximate cooking/preparation times.
5. Generate a recipe NOT included in this list: %s.

Combine them in a way that results in a balanced, flavorful dish, and detail the recipe thoroughly.

Finally, please return the recipe title, ingredients, and instructions in JSON format, with ABSOLUTELY NO backslashes or comments.

The JSON should look like this:
For ingredient, copy LETTER FOR LETTER from the following keys: %s.
For quantity, you MUST ONLY use an integer or decimal numbers, NO fractions, NO units and NO strings.
For unit, copy LETTER FOR LETTER one of the following keys: %s. If there is no appropriate unit, default to using "piece(s)".
{
    "title": "Recipe Title",
    "ingredients": [
        ["Ingredient 1", "quantity", "unit"],
        ["Ingredient 2", "quantity", "unit"],
        ...
    ],
    "instructions": [
        "Step 1",
        "Step 2",
        ...
    ],
    "meal_type": (breakfast, lunch, dinner or snack)
    "prep_time": "X minutes",
    "cook_time": "Y minutes"
}

Only include the ingredients under ONE LIST. Make sure any information about cooking time is included as a bullet point under instructions.
You MUST use the format provided above.`, ingredients, recipes, ingredients, units))
}

// BuildUserPrompt combines the user's style preference, the
// ingredients they asked to cook with, and a summary of what is
// actually in the pantry.
func BuildUserPrompt(preference string, ingredients []string, stock []inbound.PantryStock) string {
	var b strings.Builder

	if preference != "" {
		b.WriteString("Please make the recipe in this style: ")
		b.WriteString(preference)
		b.WriteString("\n")
	}

	if len(ingredients) > 0 {
		b.WriteString("Please build the recipe around these ingredients: ")
		b.WriteString(strings.Join(ingredients, ", "))
		b.WriteString("\n")
	}

	b.WriteString("Here is a summary of the ingredients in my pantry:\n")
	b.WriteString(FormatPantrySummary(stock))
	return b.String()
}

// FormatPantrySummary renders aggregated stock one ingredient per line
func FormatPantrySummary(stock []inbound.PantryStock) string {
	var b strings.Builder
	for _, item := range stock {
		fmt.Fprintf(&b, "%s: %g %s total in pantry\n",
			item.IngredientName, item.Quantity, item.Unit)
	}
	return b.String()
}
