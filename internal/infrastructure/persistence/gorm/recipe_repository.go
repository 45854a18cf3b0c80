package gorm

import (
	"context"
	"errors"

	"github.com/pantryloom/v1/internal/domain/recipe"
	"github.com/pantryloom/v1/internal/ports/outbound"
	apperrors "github.com/pantryloom/v1/pkg/errors"
	"gorm.io/gorm"
)

// RecipeRepository implements the recipe repository interface using GORM
type RecipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository creates a new recipe repository
func NewRecipeRepository(db *gorm.DB) outbound.RecipeRepository {
	return &RecipeRepository{db: db}
}

// Create writes the recipe and all of its ingredient lines in one
// transaction. If any line fails, nothing is persisted.
func (r *RecipeRepository) Create(ctx context.Context, rec *recipe.Recipe) error {
	model := RecipeToModel(rec)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Ingredients").Create(model).Error; err != nil {
			return err
		}
		if len(model.Ingredients) > 0 {
			if err := tx.Create(&model.Ingredients).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.NewConflictError("recipe", rec.Name)
		}
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return apperrors.NewReferentialIntegrityError("recipe references an ingredient or unit that is not in the catalog")
		}
		return apperrors.NewDatabaseError("create recipe", err)
	}

	rec.ID = model.ID
	return nil
}

// Delete removes a recipe and its lines. Lines go via ON DELETE
// CASCADE; the explicit delete keeps the behavior identical on
// databases with foreign keys disabled.
func (r *RecipeRepository) Delete(ctx context.Context, name string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("LOWER(name) = LOWER(?)", name).Delete(&RecipeModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("LOWER(recipe_name) = LOWER(?)", name).
			Delete(&RecipeIngredientModel{}).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFoundError("recipe", name)
		}
		return apperrors.NewDatabaseError("delete recipe", err)
	}
	return nil
}

// FindByName finds a recipe by name, case-insensitively, with its
// lines preloaded. Returns nil without error when absent.
func (r *RecipeRepository) FindByName(ctx context.Context, name string) (*recipe.Recipe, error) {
	var model RecipeModel

	result := r.db.WithContext(ctx).
		Preload("Ingredients").
		First(&model, "LOWER(name) = LOWER(?)", name)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.NewDatabaseError("find recipe", result.Error)
	}

	rec := ModelToRecipe(&model)
	return &rec, nil
}

// FindAll returns all recipes with their lines preloaded
func (r *RecipeRepository) FindAll(ctx context.Context) ([]recipe.Recipe, error) {
	var models []RecipeModel

	result := r.db.WithContext(ctx).
		Preload("Ingredients").
		Order("name").
		Find(&models)
	if result.Error != nil {
		return nil, apperrors.NewDatabaseError("list recipes", result.Error)
	}

	return modelsToRecipes(models), nil
}

// ListNames returns all recipe names ordered alphabetically
func (r *RecipeRepository) ListNames(ctx context.Context) ([]string, error) {
	var names []string

	result := r.db.WithContext(ctx).
		Model(&RecipeModel{}).
		Order("name").
		Pluck("name", &names)
	if result.Error != nil {
		return nil, apperrors.NewDatabaseError("list recipe names", result.Error)
	}

	return names, nil
}

// Filter applies the range and meal-type criteria in SQL and returns
// matching recipes with lines preloaded. Ingredient-set criteria are
// evaluated by the caller on the preloaded lines.
func (r *RecipeRepository) Filter(ctx context.Context, criteria recipe.FilterCriteria) ([]recipe.Recipe, error) {
	query := r.db.WithContext(ctx).Preload("Ingredients")

	if criteria.PrepTimeMin != nil {
		query = query.Where("prep_time >= ?", *criteria.PrepTimeMin)
	}
	if criteria.PrepTimeMax != nil {
		query = query.Where("prep_time <= ?", *criteria.PrepTimeMax)
	}
	if criteria.CookTimeMin != nil {
		query = query.Where("cook_time >= ?", *criteria.CookTimeMin)
	}
	if criteria.CookTimeMax != nil {
		query = query.Where("cook_time <= ?", *criteria.CookTimeMax)
	}
	if criteria.MealType != nil {
		query = query.Where("LOWER(meal_type) = LOWER(?)", *criteria.MealType)
	}

	var models []RecipeModel
	result := query.Order("name").Find(&models)
	if result.Error != nil {
		return nil, apperrors.NewDatabaseError("filter recipes", result.Error)
	}

	return modelsToRecipes(models), nil
}

func modelsToRecipes(models []RecipeModel) []recipe.Recipe {
	recipes := make([]recipe.Recipe, len(models))
	for i := range models {
		recipes[i] = ModelToRecipe(&models[i])
	}
	return recipes
}
