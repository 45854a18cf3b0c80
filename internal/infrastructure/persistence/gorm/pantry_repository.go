package gorm

import (
	"context"
	"errors"

	"github.com/pantryloom/v1/internal/domain/pantry"
	"github.com/pantryloom/v1/internal/ports/outbound"
	apperrors "github.com/pantryloom/v1/pkg/errors"
	"gorm.io/gorm"
)

// PantryRepository implements the pantry repository interface using GORM
type PantryRepository struct {
	db *gorm.DB
}

// NewPantryRepository creates a new pantry repository
func NewPantryRepository(db *gorm.DB) outbound.PantryRepository {
	return &PantryRepository{db: db}
}

// Create records a new pantry lot
func (r *PantryRepository) Create(ctx context.Context, entry *pantry.Entry) error {
	model := PantryEntryToModel(entry)

	result := r.db.WithContext(ctx).Create(model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrForeignKeyViolated) {
			return apperrors.NewReferentialIntegrityError("ingredient is not in the catalog")
		}
		return apperrors.NewDatabaseError("create pantry entry", result.Error)
	}

	entry.ID = model.ID
	return nil
}

// Delete removes a pantry lot by id
func (r *PantryRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&PantryEntryModel{}, id)
	if result.Error != nil {
		return apperrors.NewDatabaseError("delete pantry entry", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewAppError(apperrors.CodeNotFound, "pantry entry not found", "").
			WithMetadata("id", id)
	}
	return nil
}

// FindAll returns all pantry lots ordered by purchase date
func (r *PantryRepository) FindAll(ctx context.Context) ([]pantry.Entry, error) {
	var models []PantryEntryModel

	result := r.db.WithContext(ctx).Order("purchase_date, id").Find(&models)
	if result.Error != nil {
		return nil, apperrors.NewDatabaseError("list pantry entries", result.Error)
	}

	return modelsToEntries(models), nil
}

// FindByIngredient returns all lots of one ingredient
func (r *PantryRepository) FindByIngredient(ctx context.Context, name string) ([]pantry.Entry, error) {
	var models []PantryEntryModel

	result := r.db.WithContext(ctx).
		Where("LOWER(ingredient_name) = LOWER(?)", name).
		Order("purchase_date, id").
		Find(&models)
	if result.Error != nil {
		return nil, apperrors.NewDatabaseError("list pantry entries", result.Error)
	}

	return modelsToEntries(models), nil
}

// FindExpiringBetween returns lots with an expiry date in [from, to)
func (r *PantryRepository) FindExpiringBetween(ctx context.Context, from, to int64) ([]pantry.Entry, error) {
	var models []PantryEntryModel

	result := r.db.WithContext(ctx).
		Where("expiry_date IS NOT NULL AND expiry_date >= ? AND expiry_date < ?", from, to).
		Order("expiry_date, id").
		Find(&models)
	if result.Error != nil {
		return nil, apperrors.NewDatabaseError("list expiring pantry entries", result.Error)
	}

	return modelsToEntries(models), nil
}

// FindExpiredBefore returns lots whose expiry date has passed
func (r *PantryRepository) FindExpiredBefore(ctx context.Context, now int64) ([]pantry.Entry, error) {
	var models []PantryEntryModel

	result := r.db.WithContext(ctx).
		Where("expiry_date IS NOT NULL AND expiry_date < ?", now).
		Order("expiry_date, id").
		Find(&models)
	if result.Error != nil {
		return nil, apperrors.NewDatabaseError("list expired pantry entries", result.Error)
	}

	return modelsToEntries(models), nil
}

// AvailableIngredients aggregates unexpired stock per ingredient,
// joining the catalog for the unit of measurement
func (r *PantryRepository) AvailableIngredients(ctx context.Context, now int64) ([]outbound.AvailableIngredient, error) {
	var rows []outbound.AvailableIngredient

	result := r.db.WithContext(ctx).
		Table("pantry").
		Select("LOWER(pantry.ingredient_name) AS name, SUM(pantry.quantity) AS quantity, ingredients.unit_of_measurement AS unit").
		Joins("JOIN ingredients ON LOWER(ingredients.name) = LOWER(pantry.ingredient_name)").
		Where("pantry.expiry_date IS NULL OR pantry.expiry_date > ?", now).
		Group("LOWER(pantry.ingredient_name), ingredients.unit_of_measurement").
		Order("name").
		Scan(&rows)
	if result.Error != nil {
		return nil, apperrors.NewDatabaseError("aggregate pantry stock", result.Error)
	}

	return rows, nil
}

func modelsToEntries(models []PantryEntryModel) []pantry.Entry {
	entries := make([]pantry.Entry, len(models))
	for i := range models {
		entries[i] = ModelToPantryEntry(&models[i])
	}
	return entries
}
