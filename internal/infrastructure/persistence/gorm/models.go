// Package gorm provides GORM model definitions for the application
package gorm

// UnitModel represents the GORM model for measurement units
type UnitModel struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(50);uniqueIndex;not null"`
}

// IngredientModel represents the GORM model for catalog ingredients.
// Names are stored normalized; collation on lookups is handled in the
// repositories with LOWER().
type IngredientModel struct {
	ID                uint     `gorm:"primaryKey"`
	Name              string   `gorm:"type:varchar(255);uniqueIndex;not null"`
	ServingSize       float64  `gorm:"not null;default:0"`
	UnitOfMeasurement string   `gorm:"type:varchar(50);not null"`
	Calories          *float64
	TotalFat          *float64
	Sodium            *float64
	TotalCarbohydrate *float64
	TotalSugars       *float64
	Protein           *float64
	Cost              *float64
	ShelfLife         *int // days

	// Relationships
	Unit UnitModel `gorm:"foreignKey:UnitOfMeasurement;references:Name"`
}

// PantryEntryModel represents the GORM model for pantry lots.
// Dates are Unix seconds; a null expiry date means the lot never
// expires.
type PantryEntryModel struct {
	ID             uint    `gorm:"primaryKey"`
	IngredientName string  `gorm:"type:varchar(255);not null;index"`
	Quantity       float64 `gorm:"not null"`
	PurchaseDate   int64   `gorm:"not null"`
	ExpiryDate     *int64  `gorm:"index"`

	// Relationships
	Ingredient IngredientModel `gorm:"foreignKey:IngredientName;references:Name"`
}

// RecipeModel represents the GORM model for recipes
type RecipeModel struct {
	ID           uint    `gorm:"primaryKey"`
	Name         string  `gorm:"type:varchar(255);uniqueIndex;not null"`
	MealType     *string `gorm:"type:varchar(50);index"`
	PrepTime     *int    `gorm:"index"` // minutes
	CookTime     *int    `gorm:"index"` // minutes
	Instructions string  `gorm:"type:text"`
	Servings     int     `gorm:"default:1"`

	// Relationships
	Ingredients []RecipeIngredientModel `gorm:"foreignKey:RecipeName;references:Name;constraint:OnDelete:CASCADE"`
}

// RecipeIngredientModel represents one ingredient line of a recipe
type RecipeIngredientModel struct {
	RecipeName        string  `gorm:"type:varchar(255);primaryKey"`
	IngredientName    string  `gorm:"type:varchar(255);primaryKey"`
	Quantity          float64 `gorm:"not null"`
	UnitOfMeasurement string  `gorm:"type:varchar(50);not null"`

	// Relationships
	Ingredient IngredientModel `gorm:"foreignKey:IngredientName;references:Name"`
	Unit       UnitModel       `gorm:"foreignKey:UnitOfMeasurement;references:Name"`
}

// TableName methods for custom table names
func (UnitModel) TableName() string {
	return "units"
}

func (IngredientModel) TableName() string {
	return "ingredients"
}

func (PantryEntryModel) TableName() string {
	return "pantry"
}

func (RecipeModel) TableName() string {
	return "recipes"
}

func (RecipeIngredientModel) TableName() string {
	return "recipe_ingredients"
}
