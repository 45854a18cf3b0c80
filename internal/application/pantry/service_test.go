package pantry

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/pantryloom/v1/internal/domain/catalog"
	"github.com/pantryloom/v1/internal/domain/pantry"
	gormRepo "github.com/pantryloom/v1/internal/infrastructure/persistence/gorm"
	"github.com/pantryloom/v1/internal/infrastructure/persistence/sqlite"
	"github.com/pantryloom/v1/internal/ports/inbound"
	apperrors "github.com/pantryloom/v1/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	gormLogger "gorm.io/gorm/logger"
)

const testNow int64 = 1700000000

func setupService(t *testing.T) inbound.PantryService {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := sqlite.SetupDatabase(dsn, gormLogger.Silent)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	ctx := context.Background()
	units := gormRepo.NewUnitRepository(db)
	for _, name := range []string{"ml", "g"} {
		require.NoError(t, units.Create(ctx, &catalog.Unit{Name: name}))
	}

	ingredients := gormRepo.NewIngredientRepository(db)
	shelfLife := 7
	require.NoError(t, ingredients.Create(ctx, &catalog.Ingredient{
		Name: "milk", ServingSize: 250, Unit: "ml", ShelfLifeDays: &shelfLife,
	}))
	require.NoError(t, ingredients.Create(ctx, &catalog.Ingredient{
		Name: "salt", ServingSize: 5, Unit: "g",
	}))

	svc := NewPantryService(gormRepo.NewPantryRepository(db), ingredients, zap.NewNop())
	svc.(*PantryService).now = func() int64 { return testNow }
	return svc
}

func TestPantryService_AddEntry(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	t.Run("expiry derived from shelf life", func(t *testing.T) {
		entry, err := svc.AddEntry(ctx, inbound.AddPantryEntryCommand{
			IngredientName: "Milk",
			Quantity:       1000,
			PurchaseDate:   testNow - pantry.SecondsPerDay,
		})
		require.NoError(t, err)
		assert.Equal(t, "milk", entry.IngredientName)
		require.NotNil(t, entry.ExpiryDate)
		assert.Equal(t, testNow+6*pantry.SecondsPerDay, *entry.ExpiryDate)
	})

	t.Run("explicit expiry wins over shelf life", func(t *testing.T) {
		expiry := testNow + 2*pantry.SecondsPerDay
		entry, err := svc.AddEntry(ctx, inbound.AddPantryEntryCommand{
			IngredientName: "milk",
			Quantity:       1000,
			ExpiryDate:     &expiry,
		})
		require.NoError(t, err)
		require.NotNil(t, entry.ExpiryDate)
		assert.Equal(t, expiry, *entry.ExpiryDate)
	})

	t.Run("no shelf life means no expiry", func(t *testing.T) {
		entry, err := svc.AddEntry(ctx, inbound.AddPantryEntryCommand{
			IngredientName: "salt",
			Quantity:       500,
		})
		require.NoError(t, err)
		assert.Nil(t, entry.ExpiryDate)
		// Zero purchase date defaults to now
		assert.Equal(t, testNow, entry.PurchaseDate)
	})

	t.Run("unknown ingredient", func(t *testing.T) {
		_, err := svc.AddEntry(ctx, inbound.AddPantryEntryCommand{
			IngredientName: "saffron",
			Quantity:       1,
		})
		require.Error(t, err)
		assert.Equal(t, apperrors.CodeNotFound, apperrors.GetCode(err))
	})

	t.Run("non-positive quantity", func(t *testing.T) {
		_, err := svc.AddEntry(ctx, inbound.AddPantryEntryCommand{
			IngredientName: "milk",
			Quantity:       0,
		})
		require.Error(t, err)
		assert.Equal(t, apperrors.CodeValidationFailed, apperrors.GetCode(err))
	})
}

func TestPantryService_GetExpiring(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	// Shelf life 7 days: purchased now, it expires in exactly 7 days
	_, err := svc.AddEntry(ctx, inbound.AddPantryEntryCommand{
		IngredientName: "milk", Quantity: 1000,
	})
	require.NoError(t, err)

	_, err = svc.AddEntry(ctx, inbound.AddPantryEntryCommand{
		IngredientName: "salt", Quantity: 500,
	})
	require.NoError(t, err)

	t.Run("window end is exclusive", func(t *testing.T) {
		entries, err := svc.GetExpiring(ctx, 7)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("expiry inside the window", func(t *testing.T) {
		entries, err := svc.GetExpiring(ctx, 8)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "milk", entries[0].IngredientName)
	})

	t.Run("negative days rejected", func(t *testing.T) {
		_, err := svc.GetExpiring(ctx, -1)
		require.Error(t, err)
		assert.Equal(t, apperrors.CodeValidationFailed, apperrors.GetCode(err))
	})
}

func TestPantryService_GetExpired(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	// Purchased 8 days ago with a 7-day shelf life: expired yesterday
	_, err := svc.AddEntry(ctx, inbound.AddPantryEntryCommand{
		IngredientName: "milk",
		Quantity:       1000,
		PurchaseDate:   testNow - 8*pantry.SecondsPerDay,
	})
	require.NoError(t, err)

	_, err = svc.AddEntry(ctx, inbound.AddPantryEntryCommand{
		IngredientName: "salt", Quantity: 500,
	})
	require.NoError(t, err)

	entries, err := svc.GetExpired(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "milk", entries[0].IngredientName)
}

func TestPantryService_Summary(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	_, err := svc.AddEntry(ctx, inbound.AddPantryEntryCommand{
		IngredientName: "milk", Quantity: 1000,
	})
	require.NoError(t, err)
	_, err = svc.AddEntry(ctx, inbound.AddPantryEntryCommand{
		IngredientName: "milk", Quantity: 500,
	})
	require.NoError(t, err)

	// Expired stock stays out of the summary
	_, err = svc.AddEntry(ctx, inbound.AddPantryEntryCommand{
		IngredientName: "milk",
		Quantity:       250,
		PurchaseDate:   testNow - 8*pantry.SecondsPerDay,
	})
	require.NoError(t, err)

	stock, err := svc.Summary(ctx)
	require.NoError(t, err)
	require.Len(t, stock, 1)
	assert.Equal(t, inbound.PantryStock{
		IngredientName: "milk", Quantity: 1500, Unit: "ml",
	}, stock[0])
}
