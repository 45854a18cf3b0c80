// Package outbound defines the interfaces for outbound ports (secondary/driven adapters)
// These are the interfaces that the application uses to interact with external systems
package outbound

import (
	"context"

	"github.com/pantryloom/v1/internal/domain/catalog"
	"github.com/pantryloom/v1/internal/domain/pantry"
	"github.com/pantryloom/v1/internal/domain/recipe"
)

// UnitRepository defines the interface for unit persistence
type UnitRepository interface {
	Create(ctx context.Context, unit *catalog.Unit) error
	FindAll(ctx context.Context) ([]catalog.Unit, error)
	FindByName(ctx context.Context, name string) (*catalog.Unit, error)
	Delete(ctx context.Context, name string) error
}

// IngredientRepository defines the interface for ingredient persistence.
// Names are stored normalized and matched case-insensitively.
type IngredientRepository interface {
	Create(ctx context.Context, ingredient *catalog.Ingredient) error
	Update(ctx context.Context, ingredient *catalog.Ingredient) error
	Delete(ctx context.Context, name string) error
	FindByName(ctx context.Context, name string) (*catalog.Ingredient, error)
	FindAll(ctx context.Context) ([]catalog.Ingredient, error)
}

// PantryRepository defines the interface for pantry ledger persistence
type PantryRepository interface {
	Create(ctx context.Context, entry *pantry.Entry) error
	Delete(ctx context.Context, id uint) error
	FindAll(ctx context.Context) ([]pantry.Entry, error)
	FindByIngredient(ctx context.Context, name string) ([]pantry.Entry, error)

	// FindExpiringBetween returns entries whose expiry date falls in
	// [from, to). Entries without an expiry date are never returned.
	FindExpiringBetween(ctx context.Context, from, to int64) ([]pantry.Entry, error)

	// FindExpiredBefore returns entries whose expiry date is strictly
	// before now.
	FindExpiredBefore(ctx context.Context, now int64) ([]pantry.Entry, error)

	// AvailableIngredients returns the distinct lower-cased names of
	// ingredients with at least one lot expiring strictly after now
	// (or never), with their summed quantities and units.
	AvailableIngredients(ctx context.Context, now int64) ([]AvailableIngredient, error)
}

// AvailableIngredient is an aggregated view of one pantry ingredient
type AvailableIngredient struct {
	Name     string
	Quantity float64
	Unit     string
}

// RecipeRepository defines the interface for recipe persistence.
// Create and Delete cover the recipe and all of its ingredient lines
// in a single transaction.
type RecipeRepository interface {
	Create(ctx context.Context, rec *recipe.Recipe) error
	Delete(ctx context.Context, name string) error
	FindByName(ctx context.Context, name string) (*recipe.Recipe, error)
	FindAll(ctx context.Context) ([]recipe.Recipe, error)
	ListNames(ctx context.Context) ([]string, error)

	// Filter returns recipes matching the SQL-expressible parts of the
	// criteria with their lines preloaded. Ingredient-set predicates
	// are applied by the caller.
	Filter(ctx context.Context, criteria recipe.FilterCriteria) ([]recipe.Recipe, error)
}

// ChatCompletionClient defines the interface for the chat-completions
// endpoint used by recipe generation
type ChatCompletionClient interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
