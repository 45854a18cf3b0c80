package gorm

import (
	"context"
	"errors"

	"github.com/pantryloom/v1/internal/domain/catalog"
	"github.com/pantryloom/v1/internal/ports/outbound"
	apperrors "github.com/pantryloom/v1/pkg/errors"
	"gorm.io/gorm"
)

// IngredientRepository implements the ingredient repository interface using GORM
type IngredientRepository struct {
	db *gorm.DB
}

// NewIngredientRepository creates a new ingredient repository
func NewIngredientRepository(db *gorm.DB) outbound.IngredientRepository {
	return &IngredientRepository{db: db}
}

// Create creates a new ingredient
func (r *IngredientRepository) Create(ctx context.Context, ingredient *catalog.Ingredient) error {
	model := IngredientToModel(ingredient)

	result := r.db.WithContext(ctx).Create(model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return apperrors.NewConflictError("ingredient", ingredient.Name)
		}
		if errors.Is(result.Error, gorm.ErrForeignKeyViolated) {
			return apperrors.NewReferentialIntegrityError("unit of measurement is not in the unit catalog")
		}
		return apperrors.NewDatabaseError("create ingredient", result.Error)
	}

	ingredient.ID = model.ID
	return nil
}

// Update replaces an existing ingredient's attributes, keyed by name
func (r *IngredientRepository) Update(ctx context.Context, ingredient *catalog.Ingredient) error {
	model := IngredientToModel(ingredient)

	result := r.db.WithContext(ctx).
		Model(&IngredientModel{}).
		Where("LOWER(name) = LOWER(?)", ingredient.Name).
		Select("ServingSize", "UnitOfMeasurement", "Calories", "TotalFat",
			"Sodium", "TotalCarbohydrate", "TotalSugars", "Protein", "Cost", "ShelfLife").
		Updates(model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrForeignKeyViolated) {
			return apperrors.NewReferentialIntegrityError("unit of measurement is not in the unit catalog")
		}
		return apperrors.NewDatabaseError("update ingredient", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("ingredient", ingredient.Name)
	}
	return nil
}

// Delete deletes an ingredient by name
func (r *IngredientRepository) Delete(ctx context.Context, name string) error {
	result := r.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", name).
		Delete(&IngredientModel{})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrForeignKeyViolated) {
			return apperrors.NewReferentialIntegrityError("ingredient is still referenced by the pantry or recipes")
		}
		return apperrors.NewDatabaseError("delete ingredient", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("ingredient", name)
	}
	return nil
}

// FindByName finds an ingredient by name, case-insensitively
func (r *IngredientRepository) FindByName(ctx context.Context, name string) (*catalog.Ingredient, error) {
	var model IngredientModel

	result := r.db.WithContext(ctx).First(&model, "LOWER(name) = LOWER(?)", name)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("ingredient", name)
		}
		return nil, apperrors.NewDatabaseError("find ingredient", result.Error)
	}

	ingredient := ModelToIngredient(&model)
	return &ingredient, nil
}

// FindAll returns all ingredients ordered by name
func (r *IngredientRepository) FindAll(ctx context.Context) ([]catalog.Ingredient, error) {
	var models []IngredientModel

	result := r.db.WithContext(ctx).Order("name").Find(&models)
	if result.Error != nil {
		return nil, apperrors.NewDatabaseError("list ingredients", result.Error)
	}

	ingredients := make([]catalog.Ingredient, len(models))
	for i := range models {
		ingredients[i] = ModelToIngredient(&models[i])
	}
	return ingredients, nil
}
