// Package catalog provides the application layer for the unit and
// ingredient catalog. This implements the use cases defined in the
// inbound ports.
package catalog

import (
	"context"

	"github.com/pantryloom/v1/internal/domain/catalog"
	"github.com/pantryloom/v1/internal/domain/shared"
	"github.com/pantryloom/v1/internal/ports/inbound"
	"github.com/pantryloom/v1/internal/ports/outbound"
	"github.com/pantryloom/v1/pkg/errors"
	"go.uber.org/zap"
)

// CatalogService implements the catalog use cases
type CatalogService struct {
	unitRepo       outbound.UnitRepository
	ingredientRepo outbound.IngredientRepository
	logger         *zap.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(
	unitRepo outbound.UnitRepository,
	ingredientRepo outbound.IngredientRepository,
	logger *zap.Logger,
) inbound.CatalogService {
	return &CatalogService{
		unitRepo:       unitRepo,
		ingredientRepo: ingredientRepo,
		logger:         logger.Named("catalog-service"),
	}
}

// AddUnit adds a unit to the catalog. Unit names keep their casing;
// they are display strings, not lookup keys.
func (s *CatalogService) AddUnit(ctx context.Context, name string) (*catalog.Unit, error) {
	unit := catalog.Unit{Name: name}
	if err := unit.Validate(); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.unitRepo.Create(ctx, &unit); err != nil {
		return nil, err
	}

	s.logger.Info("Unit added", zap.String("name", unit.Name))
	return &unit, nil
}

// ListUnits returns all known units
func (s *CatalogService) ListUnits(ctx context.Context) ([]catalog.Unit, error) {
	return s.unitRepo.FindAll(ctx)
}

// RemoveUnit removes a unit from the catalog
func (s *CatalogService) RemoveUnit(ctx context.Context, name string) error {
	if err := s.unitRepo.Delete(ctx, name); err != nil {
		return err
	}

	s.logger.Info("Unit removed", zap.String("name", name))
	return nil
}

// AddIngredient adds an ingredient to the catalog
func (s *CatalogService) AddIngredient(ctx context.Context, cmd inbound.AddIngredientCommand) (*catalog.Ingredient, error) {
	ingredient := commandToIngredient(cmd)
	if err := ingredient.Validate(); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.ingredientRepo.Create(ctx, &ingredient); err != nil {
		return nil, err
	}

	s.logger.Info("Ingredient added",
		zap.String("name", ingredient.Name),
		zap.String("unit", ingredient.Unit),
	)
	return &ingredient, nil
}

// GetIngredient finds an ingredient by name, case-insensitively
func (s *CatalogService) GetIngredient(ctx context.Context, name string) (*catalog.Ingredient, error) {
	return s.ingredientRepo.FindByName(ctx, shared.NormalizeName(name))
}

// UpdateIngredient replaces an existing ingredient's attributes
func (s *CatalogService) UpdateIngredient(ctx context.Context, cmd inbound.AddIngredientCommand) (*catalog.Ingredient, error) {
	ingredient := commandToIngredient(cmd)
	if err := ingredient.Validate(); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.ingredientRepo.Update(ctx, &ingredient); err != nil {
		return nil, err
	}

	s.logger.Info("Ingredient updated", zap.String("name", ingredient.Name))
	return &ingredient, nil
}

// RemoveIngredient removes an ingredient from the catalog
func (s *CatalogService) RemoveIngredient(ctx context.Context, name string) error {
	if err := s.ingredientRepo.Delete(ctx, shared.NormalizeName(name)); err != nil {
		return err
	}

	s.logger.Info("Ingredient removed", zap.String("name", name))
	return nil
}

// ListIngredients returns all catalog ingredients
func (s *CatalogService) ListIngredients(ctx context.Context) ([]catalog.Ingredient, error) {
	return s.ingredientRepo.FindAll(ctx)
}

func commandToIngredient(cmd inbound.AddIngredientCommand) catalog.Ingredient {
	return catalog.Ingredient{
		Name:              shared.NormalizeName(cmd.Name),
		ServingSize:       cmd.ServingSize,
		Unit:              cmd.Unit,
		Calories:          cmd.Calories,
		TotalFat:          cmd.TotalFat,
		Sodium:            cmd.Sodium,
		TotalCarbohydrate: cmd.TotalCarbohydrate,
		TotalSugars:       cmd.TotalSugars,
		Protein:           cmd.Protein,
		Cost:              cmd.Cost,
		ShelfLifeDays:     cmd.ShelfLifeDays,
	}
}
