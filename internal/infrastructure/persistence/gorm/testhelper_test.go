package gorm_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/pantryloom/v1/internal/domain/catalog"
	gormRepo "github.com/pantryloom/v1/internal/infrastructure/persistence/gorm"
	"github.com/pantryloom/v1/internal/infrastructure/persistence/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// setupTestDB opens a private in-memory database per test so tests
// cannot see each other's rows.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := sqlite.SetupDatabase(dsn, gormLogger.Silent)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

// seedCatalog inserts the units and ingredients most tests build on.
func seedCatalog(t *testing.T, db *gorm.DB) {
	t.Helper()
	ctx := context.Background()

	units := gormRepo.NewUnitRepository(db)
	for _, name := range []string{"g", "ml", "piece(s)"} {
		require.NoError(t, units.Create(ctx, &catalog.Unit{Name: name}))
	}

	ingredients := gormRepo.NewIngredientRepository(db)
	shelfLife := 7
	for _, ing := range []catalog.Ingredient{
		{Name: "flour", ServingSize: 100, Unit: "g"},
		{Name: "milk", ServingSize: 250, Unit: "ml", ShelfLifeDays: &shelfLife},
		{Name: "egg", ServingSize: 1, Unit: "piece(s)"},
	} {
		ing := ing
		require.NoError(t, ingredients.Create(ctx, &ing))
	}
}
