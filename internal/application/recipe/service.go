// Package recipe provides the application layer for the recipe catalog.
// This implements the use cases defined in the inbound ports.
package recipe

import (
	"context"
	"strings"
	"time"

	"github.com/pantryloom/v1/internal/domain/recipe"
	"github.com/pantryloom/v1/internal/domain/shared"
	"github.com/pantryloom/v1/internal/ports/inbound"
	"github.com/pantryloom/v1/internal/ports/outbound"
	"github.com/pantryloom/v1/pkg/errors"
	"go.uber.org/zap"
)

// RecipeService implements the recipe use cases
type RecipeService struct {
	recipeRepo outbound.RecipeRepository
	pantryRepo outbound.PantryRepository
	logger     *zap.Logger

	// now is swappable in tests
	now func() int64
}

// NewRecipeService creates a new recipe service
func NewRecipeService(
	recipeRepo outbound.RecipeRepository,
	pantryRepo outbound.PantryRepository,
	logger *zap.Logger,
) inbound.RecipeService {
	return &RecipeService{
		recipeRepo: recipeRepo,
		pantryRepo: pantryRepo,
		logger:     logger.Named("recipe-service"),
		now:        func() int64 { return time.Now().Unix() },
	}
}

// AddRecipe creates a recipe with all of its ingredient lines. The
// write is all-or-nothing: a bad line leaves no partial recipe behind.
func (s *RecipeService) AddRecipe(ctx context.Context, cmd inbound.AddRecipeCommand) (*recipe.Recipe, error) {
	rec := recipe.Recipe{
		Name:         shared.NormalizeName(cmd.Name),
		MealType:     normalizeMealType(cmd.MealType),
		PrepTime:     cmd.PrepTime,
		CookTime:     cmd.CookTime,
		Instructions: cmd.Instructions,
		Servings:     cmd.Servings,
	}
	if rec.Servings == 0 {
		rec.Servings = 1
	}
	for _, line := range cmd.Ingredients {
		rec.Ingredients = append(rec.Ingredients, recipe.IngredientLine{
			IngredientName: shared.NormalizeName(line.IngredientName),
			Quantity:       line.Quantity,
			Unit:           line.Unit,
		})
	}

	if err := rec.Validate(); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.recipeRepo.Create(ctx, &rec); err != nil {
		return nil, err
	}

	s.logger.Info("Recipe added",
		zap.String("name", rec.Name),
		zap.Int("lines", len(rec.Ingredients)),
	)
	return &rec, nil
}

// GetRecipe finds a recipe by name, case-insensitively. A miss is not
// an error: the recipe is nil and the caller renders an empty result.
func (s *RecipeService) GetRecipe(ctx context.Context, name string) (*recipe.Recipe, error) {
	return s.recipeRepo.FindByName(ctx, shared.NormalizeName(name))
}

// RemoveRecipe deletes a recipe and all of its ingredient lines
func (s *RecipeService) RemoveRecipe(ctx context.Context, name string) error {
	if err := s.recipeRepo.Delete(ctx, shared.NormalizeName(name)); err != nil {
		return err
	}

	s.logger.Info("Recipe removed", zap.String("name", name))
	return nil
}

// ListRecipeNames returns all recipe names
func (s *RecipeService) ListRecipeNames(ctx context.Context) ([]string, error) {
	return s.recipeRepo.ListNames(ctx)
}

// FilterRecipes returns recipes matching every given criterion. Range
// and meal-type predicates run in SQL; ingredient-set predicates run
// here over the preloaded lines.
func (s *RecipeService) FilterRecipes(ctx context.Context, criteria recipe.FilterCriteria) ([]recipe.Recipe, error) {
	recipes, err := s.recipeRepo.Filter(ctx, criteria)
	if err != nil {
		return nil, err
	}

	if len(criteria.Ingredients) > 0 {
		recipes = filterByIngredients(recipes, criteria.Ingredients)
	}

	if criteria.IngredientsAvailable {
		available, err := s.availableSet(ctx)
		if err != nil {
			return nil, err
		}
		recipes = filterByAvailability(recipes, available)
	}

	return recipes, nil
}

func (s *RecipeService) availableSet(ctx context.Context) (map[string]struct{}, error) {
	rows, err := s.pantryRepo.AvailableIngredients(ctx, s.now())
	if err != nil {
		return nil, err
	}

	set := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		set[strings.ToLower(row.Name)] = struct{}{}
	}
	return set, nil
}

func filterByIngredients(recipes []recipe.Recipe, requested []string) []recipe.Recipe {
	matched := recipes[:0]
	for _, rec := range recipes {
		if rec.HasAllIngredients(requested) {
			matched = append(matched, rec)
		}
	}
	return matched
}

func filterByAvailability(recipes []recipe.Recipe, available map[string]struct{}) []recipe.Recipe {
	matched := recipes[:0]
	for _, rec := range recipes {
		if rec.UsesOnly(available) {
			matched = append(matched, rec)
		}
	}
	return matched
}

func normalizeMealType(mealType *string) *string {
	if mealType == nil {
		return nil
	}
	normalized := strings.ToLower(strings.TrimSpace(*mealType))
	if normalized == "" {
		return nil
	}
	return &normalized
}
