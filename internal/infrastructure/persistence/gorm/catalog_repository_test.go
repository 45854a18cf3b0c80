package gorm_test

import (
	"context"
	"testing"

	"github.com/pantryloom/v1/internal/domain/catalog"
	"github.com/pantryloom/v1/internal/domain/pantry"
	gormRepo "github.com/pantryloom/v1/internal/infrastructure/persistence/gorm"
	apperrors "github.com/pantryloom/v1/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := gormRepo.NewUnitRepository(db)
	ctx := context.Background()

	unit := &catalog.Unit{Name: "cup(s)"}
	require.NoError(t, repo.Create(ctx, unit))
	assert.NotZero(t, unit.ID)

	t.Run("duplicate name conflicts", func(t *testing.T) {
		err := repo.Create(ctx, &catalog.Unit{Name: "cup(s)"})
		require.Error(t, err)
		assert.Equal(t, apperrors.CodeConflict, apperrors.GetCode(err))
	})
}

func TestUnitRepository_FindByName(t *testing.T) {
	db := setupTestDB(t)
	repo := gormRepo.NewUnitRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &catalog.Unit{Name: "tbsp."}))

	found, err := repo.FindByName(ctx, "TBSP.")
	require.NoError(t, err)
	assert.Equal(t, "tbsp.", found.Name)

	_, err = repo.FindByName(ctx, "furlong")
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeNotFound, apperrors.GetCode(err))
}

func TestUnitRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	units := gormRepo.NewUnitRepository(db)

	require.NoError(t, units.Create(ctx, &catalog.Unit{Name: "g"}))
	require.NoError(t, units.Create(ctx, &catalog.Unit{Name: "ml"}))

	t.Run("referenced unit cannot be removed", func(t *testing.T) {
		ingredients := gormRepo.NewIngredientRepository(db)
		require.NoError(t, ingredients.Create(ctx, &catalog.Ingredient{
			Name: "flour", ServingSize: 100, Unit: "g",
		}))

		err := units.Delete(ctx, "g")
		require.Error(t, err)
		assert.Equal(t, apperrors.CodeReferentialIntegrity, apperrors.GetCode(err))
	})

	t.Run("unreferenced unit is removed", func(t *testing.T) {
		require.NoError(t, units.Delete(ctx, "ml"))

		_, err := units.FindByName(ctx, "ml")
		assert.Equal(t, apperrors.CodeNotFound, apperrors.GetCode(err))
	})

	t.Run("missing unit", func(t *testing.T) {
		err := units.Delete(ctx, "stone")
		assert.Equal(t, apperrors.CodeNotFound, apperrors.GetCode(err))
	})
}

func TestIngredientRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)
	repo := gormRepo.NewIngredientRepository(db)
	ctx := context.Background()

	t.Run("duplicate name conflicts", func(t *testing.T) {
		err := repo.Create(ctx, &catalog.Ingredient{Name: "flour", ServingSize: 50, Unit: "g"})
		require.Error(t, err)
		assert.Equal(t, apperrors.CodeConflict, apperrors.GetCode(err))
	})

	t.Run("unknown unit is rejected", func(t *testing.T) {
		err := repo.Create(ctx, &catalog.Ingredient{Name: "sugar", ServingSize: 10, Unit: "hogshead"})
		require.Error(t, err)
		assert.Equal(t, apperrors.CodeReferentialIntegrity, apperrors.GetCode(err))
	})
}

func TestIngredientRepository_FindByName(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)
	repo := gormRepo.NewIngredientRepository(db)
	ctx := context.Background()

	found, err := repo.FindByName(ctx, "MILK")
	require.NoError(t, err)
	assert.Equal(t, "milk", found.Name)
	require.NotNil(t, found.ShelfLifeDays)
	assert.Equal(t, 7, *found.ShelfLifeDays)

	_, err = repo.FindByName(ctx, "saffron")
	assert.Equal(t, apperrors.CodeNotFound, apperrors.GetCode(err))
}

func TestIngredientRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)
	repo := gormRepo.NewIngredientRepository(db)
	ctx := context.Background()

	calories := 364.0
	err := repo.Update(ctx, &catalog.Ingredient{
		Name:        "Flour",
		ServingSize: 120,
		Unit:        "g",
		Calories:    &calories,
	})
	require.NoError(t, err)

	found, err := repo.FindByName(ctx, "flour")
	require.NoError(t, err)
	assert.Equal(t, 120.0, found.ServingSize)
	require.NotNil(t, found.Calories)
	assert.Equal(t, 364.0, *found.Calories)

	t.Run("missing ingredient", func(t *testing.T) {
		err := repo.Update(ctx, &catalog.Ingredient{Name: "saffron", ServingSize: 1, Unit: "g"})
		assert.Equal(t, apperrors.CodeNotFound, apperrors.GetCode(err))
	})
}

func TestIngredientRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)
	ctx := context.Background()
	ingredients := gormRepo.NewIngredientRepository(db)

	t.Run("pantry reference blocks removal", func(t *testing.T) {
		pantryRepo := gormRepo.NewPantryRepository(db)
		require.NoError(t, pantryRepo.Create(ctx, &pantry.Entry{
			IngredientName: "milk", Quantity: 1000, PurchaseDate: 1700000000,
		}))

		err := ingredients.Delete(ctx, "milk")
		require.Error(t, err)
		assert.Equal(t, apperrors.CodeReferentialIntegrity, apperrors.GetCode(err))
	})

	t.Run("unreferenced ingredient is removed", func(t *testing.T) {
		require.NoError(t, ingredients.Delete(ctx, "EGG"))

		_, err := ingredients.FindByName(ctx, "egg")
		assert.Equal(t, apperrors.CodeNotFound, apperrors.GetCode(err))
	})
}
