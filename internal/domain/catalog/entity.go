// Package catalog contains the core domain logic for the ingredient
// catalog: measurement units and the ingredients described in them.
package catalog

import "strings"

// Unit represents a unit of measurement known to the catalog.
// Units are referenced by name from ingredients and recipe lines.
type Unit struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// Validate validates the unit
func (u Unit) Validate() error {
	if strings.TrimSpace(u.Name) == "" {
		return ErrUnitNameRequired
	}
	return nil
}

// Ingredient represents a catalog ingredient with its nutritional
// profile. Nutritional fields are optional; nil means unknown.
type Ingredient struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	ServingSize float64 `json:"serving_size"`
	Unit        string  `json:"unit"`

	Calories          *float64 `json:"calories"`
	TotalFat          *float64 `json:"total_fat"`
	Sodium            *float64 `json:"sodium"`
	TotalCarbohydrate *float64 `json:"total_carbohydrate"`
	TotalSugars       *float64 `json:"total_sugars"`
	Protein           *float64 `json:"protein"`

	// Cost per serving, in whatever currency the household uses
	Cost *float64 `json:"cost"`

	// ShelfLifeDays is the expected shelf life after purchase.
	// Nil means the ingredient does not meaningfully expire.
	ShelfLifeDays *int `json:"shelf_life_days"`
}

// Validate validates the ingredient
func (i Ingredient) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return ErrIngredientNameRequired
	}
	if strings.TrimSpace(i.Unit) == "" {
		return ErrUnitNameRequired
	}
	if i.ServingSize < 0 {
		return ErrNegativeServingSize
	}
	if i.ShelfLifeDays != nil && *i.ShelfLifeDays < 0 {
		return ErrNegativeShelfLife
	}
	return nil
}
