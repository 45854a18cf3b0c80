// Package inbound defines the interfaces for inbound ports (primary/driving adapters)
// These are the interfaces that the application exposes to the outside world
package inbound

import (
	"context"

	"github.com/pantryloom/v1/internal/domain/catalog"
	"github.com/pantryloom/v1/internal/domain/pantry"
	"github.com/pantryloom/v1/internal/domain/recipe"
)

// CatalogService defines the use cases for units and ingredients
type CatalogService interface {
	// Units
	AddUnit(ctx context.Context, name string) (*catalog.Unit, error)
	ListUnits(ctx context.Context) ([]catalog.Unit, error)
	RemoveUnit(ctx context.Context, name string) error

	// Ingredients
	AddIngredient(ctx context.Context, cmd AddIngredientCommand) (*catalog.Ingredient, error)
	GetIngredient(ctx context.Context, name string) (*catalog.Ingredient, error)
	UpdateIngredient(ctx context.Context, cmd AddIngredientCommand) (*catalog.Ingredient, error)
	RemoveIngredient(ctx context.Context, name string) error
	ListIngredients(ctx context.Context) ([]catalog.Ingredient, error)
}

// AddIngredientCommand contains data for creating or replacing an ingredient
type AddIngredientCommand struct {
	Name              string
	ServingSize       float64
	Unit              string
	Calories          *float64
	TotalFat          *float64
	Sodium            *float64
	TotalCarbohydrate *float64
	TotalSugars       *float64
	Protein           *float64
	Cost              *float64
	ShelfLifeDays     *int
}

// PantryService defines the use cases for the pantry ledger
type PantryService interface {
	AddEntry(ctx context.Context, cmd AddPantryEntryCommand) (*pantry.Entry, error)
	ListEntries(ctx context.Context) ([]pantry.Entry, error)
	RemoveEntry(ctx context.Context, id uint) error

	// GetExpiring returns entries expiring within the next days days,
	// excluding anything already expired.
	GetExpiring(ctx context.Context, days int) ([]pantry.Entry, error)
	GetExpired(ctx context.Context) ([]pantry.Entry, error)

	// Summary aggregates unexpired stock per ingredient, for display
	// and for prompt context during recipe generation.
	Summary(ctx context.Context) ([]PantryStock, error)
}

// AddPantryEntryCommand contains data for recording a purchase.
// PurchaseDate is Unix seconds; zero means now. ExpiryDate, when set,
// overrides the shelf-life derivation.
type AddPantryEntryCommand struct {
	IngredientName string
	Quantity       float64
	PurchaseDate   int64
	ExpiryDate     *int64
}

// PantryStock is one line of the aggregated pantry summary
type PantryStock struct {
	IngredientName string  `json:"ingredient_name"`
	Quantity       float64 `json:"quantity"`
	Unit           string  `json:"unit"`
}

// RecipeService defines the use cases for the recipe catalog
type RecipeService interface {
	AddRecipe(ctx context.Context, cmd AddRecipeCommand) (*recipe.Recipe, error)

	// GetRecipe returns nil without error when no recipe has the name.
	GetRecipe(ctx context.Context, name string) (*recipe.Recipe, error)
	RemoveRecipe(ctx context.Context, name string) error
	ListRecipeNames(ctx context.Context) ([]string, error)

	FilterRecipes(ctx context.Context, criteria recipe.FilterCriteria) ([]recipe.Recipe, error)
}

// AddRecipeCommand contains data for creating a recipe with its lines
type AddRecipeCommand struct {
	Name         string
	MealType     *string
	PrepTime     *int
	CookTime     *int
	Instructions string
	Servings     int
	Ingredients  []RecipeLineCommand
}

// RecipeLineCommand is one ingredient requirement of a new recipe
type RecipeLineCommand struct {
	IngredientName string
	Quantity       float64
	Unit           string
}

// GenerationService defines the recipe generation pipeline
type GenerationService interface {
	// GenerateRecipe builds a prompt from the request and current
	// pantry, invokes the model, parses the reply, and persists the
	// resulting recipe.
	GenerateRecipe(ctx context.Context, req GenerateRecipeRequest) (*recipe.Recipe, error)
}

// GenerateRecipeRequest describes what the user wants generated
type GenerateRecipeRequest struct {
	Prompt string

	// Ingredients the caller wants the recipe built around. Optional;
	// names are matched against the catalog.
	Ingredients []string

	// UsePantry asks the model to prefer ingredients currently in
	// stock.
	UsePantry bool
}
