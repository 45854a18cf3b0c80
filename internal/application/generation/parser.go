// Package generation provides the recipe generation pipeline: prompt
// construction, model invocation, response parsing, and persistence.
package generation

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/pantryloom/v1/internal/ports/inbound"
	"github.com/pantryloom/v1/pkg/errors"
)

// Models rarely return clean JSON. The fenced block is the documented
// format; the bare-brace fallback salvages replies that skip the fence.
var (
	fencedJSONPattern = regexp.MustCompile("(?s)```json\\s*(\\{.*?\\})\\s*```")
	bareJSONPattern   = regexp.MustCompile(`(?s)(\{.*?\})`)
)

// rawRecipe mirrors the JSON shape the model is instructed to produce
type rawRecipe struct {
	Title        string            `json:"title"`
	Ingredients  []json.RawMessage `json:"ingredients"`
	Instructions []string          `json:"instructions"`
	MealType     *string           `json:"meal_type"`
	PrepTime     json.RawMessage   `json:"prep_time"`
	CookTime     json.RawMessage   `json:"cook_time"`
}

// ParseRecipe extracts the recipe JSON from a model reply and maps it
// to an AddRecipeCommand. Any malformed ingredient fails the whole
// parse: a partially understood recipe must not be persisted.
func ParseRecipe(text string) (inbound.AddRecipeCommand, error) {
	var cmd inbound.AddRecipeCommand

	jsonStr, err := extractJSON(text)
	if err != nil {
		return cmd, err
	}

	var raw rawRecipe
	if err := json.Unmarshal([]byte(jsonStr), &raw); err != nil {
		return cmd, errors.NewParseError(fmt.Sprintf("invalid JSON: %v", err))
	}

	cmd.Name = raw.Title
	if strings.TrimSpace(cmd.Name) == "" {
		cmd.Name = "Untitled Recipe"
	}
	cmd.Instructions = strings.Join(raw.Instructions, "\n")
	cmd.MealType = raw.MealType
	cmd.PrepTime = parseTime(raw.PrepTime)
	cmd.CookTime = parseTime(raw.CookTime)
	cmd.Servings = 1

	for i, rawLine := range raw.Ingredients {
		line, err := parseIngredientLine(rawLine)
		if err != nil {
			return inbound.AddRecipeCommand{}, errors.NewParseError(
				fmt.Sprintf("ingredient %d: %v", i, err))
		}
		cmd.Ingredients = append(cmd.Ingredients, line)
	}

	return cmd, nil
}

// extractJSON pulls the first JSON object out of the reply text
func extractJSON(text string) (string, error) {
	if m := fencedJSONPattern.FindStringSubmatch(text); m != nil {
		return m[1], nil
	}
	if m := bareJSONPattern.FindStringSubmatch(text); m != nil {
		return m[1], nil
	}
	return "", errors.NewParseError("no JSON object found in model response")
}

var digitsPattern = regexp.MustCompile(`\d+`)

// parseTime accepts an integer or a string containing digits (such as
// "30 minutes"). Anything else means the model gave no usable time,
// which is stored as unknown rather than a sentinel.
func parseTime(raw json.RawMessage) *int {
	// Unmarshaling JSON null into an int succeeds without touching
	// it, so null has to be caught before the int attempt.
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	var asInt int
	if err := json.Unmarshal(raw, &asInt); err == nil {
		return &asInt
	}

	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		if m := digitsPattern.FindString(asString); m != "" {
			if v, err := strconv.Atoi(m); err == nil {
				return &v
			}
		}
	}

	return nil
}

// parseIngredientLine decodes one [name, quantity, unit] triple. A
// two-element form omits the unit and defaults to "piece(s)".
func parseIngredientLine(raw json.RawMessage) (inbound.RecipeLineCommand, error) {
	var cmd inbound.RecipeLineCommand

	var parts []json.RawMessage
	if err := json.Unmarshal(raw, &parts); err != nil {
		return cmd, fmt.Errorf("expected an array, got %s", string(raw))
	}
	if len(parts) != 2 && len(parts) != 3 {
		return cmd, fmt.Errorf("expected 2 or 3 elements, got %d", len(parts))
	}

	if err := json.Unmarshal(parts[0], &cmd.IngredientName); err != nil {
		return cmd, fmt.Errorf("name is not a string: %s", string(parts[0]))
	}

	quantity, err := parseQuantity(parts[1])
	if err != nil {
		return cmd, err
	}
	cmd.Quantity = quantity

	cmd.Unit = "piece(s)"
	if len(parts) == 3 {
		if err := json.Unmarshal(parts[2], &cmd.Unit); err != nil {
			return cmd, fmt.Errorf("unit is not a string: %s", string(parts[2]))
		}
	}

	return cmd, nil
}

// parseQuantity accepts a JSON number or a numeric string
func parseQuantity(raw json.RawMessage) (float64, error) {
	var asNumber float64
	if err := json.Unmarshal(raw, &asNumber); err == nil {
		return asNumber, nil
	}

	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		if v, err := strconv.ParseFloat(strings.TrimSpace(asString), 64); err == nil {
			return v, nil
		}
	}

	return 0, fmt.Errorf("quantity is not numeric: %s", string(raw))
}
