// Package gorm provides GORM-based repository implementations
package gorm

import (
	"context"
	"errors"

	"github.com/pantryloom/v1/internal/domain/catalog"
	"github.com/pantryloom/v1/internal/ports/outbound"
	apperrors "github.com/pantryloom/v1/pkg/errors"
	"gorm.io/gorm"
)

// UnitRepository implements the unit repository interface using GORM
type UnitRepository struct {
	db *gorm.DB
}

// NewUnitRepository creates a new unit repository
func NewUnitRepository(db *gorm.DB) outbound.UnitRepository {
	return &UnitRepository{db: db}
}

// Create creates a new unit
func (r *UnitRepository) Create(ctx context.Context, unit *catalog.Unit) error {
	model := UnitToModel(unit)

	result := r.db.WithContext(ctx).Create(model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return apperrors.NewConflictError("unit", unit.Name)
		}
		return apperrors.NewDatabaseError("create unit", result.Error)
	}

	unit.ID = model.ID
	return nil
}

// FindAll returns all units ordered by name
func (r *UnitRepository) FindAll(ctx context.Context) ([]catalog.Unit, error) {
	var models []UnitModel

	result := r.db.WithContext(ctx).Order("name").Find(&models)
	if result.Error != nil {
		return nil, apperrors.NewDatabaseError("list units", result.Error)
	}

	units := make([]catalog.Unit, len(models))
	for i := range models {
		units[i] = ModelToUnit(&models[i])
	}
	return units, nil
}

// FindByName finds a unit by name
func (r *UnitRepository) FindByName(ctx context.Context, name string) (*catalog.Unit, error) {
	var model UnitModel

	result := r.db.WithContext(ctx).First(&model, "LOWER(name) = LOWER(?)", name)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("unit", name)
		}
		return nil, apperrors.NewDatabaseError("find unit", result.Error)
	}

	unit := ModelToUnit(&model)
	return &unit, nil
}

// Delete deletes a unit by name
func (r *UnitRepository) Delete(ctx context.Context, name string) error {
	result := r.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", name).
		Delete(&UnitModel{})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrForeignKeyViolated) {
			return apperrors.NewReferentialIntegrityError("unit is still referenced by ingredients")
		}
		return apperrors.NewDatabaseError("delete unit", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("unit", name)
	}
	return nil
}
