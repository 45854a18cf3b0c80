package recipe

import "errors"

// Domain errors for the recipe catalog
var (
	ErrNameRequired           = errors.New("recipe name is required")
	ErrIngredientNameRequired = errors.New("ingredient name is required")
	ErrNonPositiveQuantity    = errors.New("quantity must be positive")
	ErrUnitRequired           = errors.New("unit of measurement is required")
	ErrNegativeTime           = errors.New("time cannot be negative")
	ErrInvalidServings        = errors.New("servings must be at least 1")
)
