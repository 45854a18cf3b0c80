package pantry

import "errors"

// Domain errors for the pantry ledger
var (
	ErrIngredientNameRequired = errors.New("ingredient name is required")
	ErrNonPositiveQuantity    = errors.New("quantity must be positive")
)
