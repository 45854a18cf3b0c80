package catalog

import "errors"

// Domain errors for the catalog
var (
	ErrUnitNameRequired       = errors.New("unit name is required")
	ErrIngredientNameRequired = errors.New("ingredient name is required")
	ErrNegativeServingSize    = errors.New("serving size cannot be negative")
	ErrNegativeShelfLife      = errors.New("shelf life cannot be negative")
)
