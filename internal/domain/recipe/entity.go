// Package recipe contains the core domain logic for the recipe catalog:
// recipes, their ingredient lines, and the filter criteria used to
// search them.
package recipe

import "strings"

// IngredientLine represents one ingredient requirement of a recipe.
// The name references a catalog ingredient.
type IngredientLine struct {
	IngredientName string  `json:"ingredient_name"`
	Quantity       float64 `json:"quantity"`
	Unit           string  `json:"unit"`
}

// Validate validates the ingredient line
func (l IngredientLine) Validate() error {
	if strings.TrimSpace(l.IngredientName) == "" {
		return ErrIngredientNameRequired
	}
	if l.Quantity <= 0 {
		return ErrNonPositiveQuantity
	}
	if strings.TrimSpace(l.Unit) == "" {
		return ErrUnitRequired
	}
	return nil
}

// Recipe represents a recipe and its ingredient lines. A recipe is
// identified by its name; lines live and die with the recipe.
type Recipe struct {
	ID           uint             `json:"id"`
	Name         string           `json:"name"`
	MealType     *string          `json:"meal_type"`
	PrepTime     *int             `json:"prep_time"` // minutes, nil when unknown
	CookTime     *int             `json:"cook_time"` // minutes, nil when unknown
	Instructions string           `json:"instructions"`
	Servings     int              `json:"servings"`
	Ingredients  []IngredientLine `json:"ingredients"`
}

// Validate validates the recipe and all of its lines
func (r Recipe) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrNameRequired
	}
	if r.PrepTime != nil && *r.PrepTime < 0 {
		return ErrNegativeTime
	}
	if r.CookTime != nil && *r.CookTime < 0 {
		return ErrNegativeTime
	}
	if r.Servings < 1 {
		return ErrInvalidServings
	}
	for _, line := range r.Ingredients {
		if err := line.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// IngredientSet returns the recipe's ingredient names as a lower-cased
// set for membership checks.
func (r Recipe) IngredientSet() map[string]struct{} {
	set := make(map[string]struct{}, len(r.Ingredients))
	for _, line := range r.Ingredients {
		set[strings.ToLower(line.IngredientName)] = struct{}{}
	}
	return set
}

// HasAllIngredients reports whether every requested name appears among
// the recipe's ingredient lines. Matching is case-insensitive. An empty
// request matches every recipe.
func (r Recipe) HasAllIngredients(requested []string) bool {
	set := r.IngredientSet()
	for _, name := range requested {
		if _, ok := set[strings.ToLower(name)]; !ok {
			return false
		}
	}
	return true
}

// UsesOnly reports whether the recipe's ingredient lines are all drawn
// from the given set of lower-cased names.
func (r Recipe) UsesOnly(available map[string]struct{}) bool {
	for _, line := range r.Ingredients {
		if _, ok := available[strings.ToLower(line.IngredientName)]; !ok {
			return false
		}
	}
	return true
}

// FilterCriteria describes a conjunctive recipe search. Nil fields do
// not constrain; range bounds are inclusive.
type FilterCriteria struct {
	PrepTimeMin *int
	PrepTimeMax *int
	CookTimeMin *int
	CookTimeMax *int
	MealType    *string

	// Ingredients restricts results to recipes containing every
	// listed ingredient.
	Ingredients []string

	// IngredientsAvailable restricts results to recipes whose
	// every ingredient is currently in the pantry.
	IngredientsAvailable bool
}

// Empty reports whether the criteria constrain nothing.
func (c FilterCriteria) Empty() bool {
	return c.PrepTimeMin == nil && c.PrepTimeMax == nil &&
		c.CookTimeMin == nil && c.CookTimeMax == nil &&
		c.MealType == nil && len(c.Ingredients) == 0 &&
		!c.IngredientsAvailable
}
