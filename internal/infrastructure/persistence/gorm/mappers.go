// Package gorm provides mapping between domain entities and GORM models
package gorm

import (
	"github.com/pantryloom/v1/internal/domain/catalog"
	"github.com/pantryloom/v1/internal/domain/pantry"
	"github.com/pantryloom/v1/internal/domain/recipe"
)

// UnitToModel converts a domain unit to a GORM model
func UnitToModel(u *catalog.Unit) *UnitModel {
	return &UnitModel{ID: u.ID, Name: u.Name}
}

// ModelToUnit converts a GORM model to a domain unit
func ModelToUnit(m *UnitModel) catalog.Unit {
	return catalog.Unit{ID: m.ID, Name: m.Name}
}

// IngredientToModel converts a domain ingredient to a GORM model
func IngredientToModel(i *catalog.Ingredient) *IngredientModel {
	return &IngredientModel{
		ID:                i.ID,
		Name:              i.Name,
		ServingSize:       i.ServingSize,
		UnitOfMeasurement: i.Unit,
		Calories:          i.Calories,
		TotalFat:          i.TotalFat,
		Sodium:            i.Sodium,
		TotalCarbohydrate: i.TotalCarbohydrate,
		TotalSugars:       i.TotalSugars,
		Protein:           i.Protein,
		Cost:              i.Cost,
		ShelfLife:         i.ShelfLifeDays,
	}
}

// ModelToIngredient converts a GORM model to a domain ingredient
func ModelToIngredient(m *IngredientModel) catalog.Ingredient {
	return catalog.Ingredient{
		ID:                m.ID,
		Name:              m.Name,
		ServingSize:       m.ServingSize,
		Unit:              m.UnitOfMeasurement,
		Calories:          m.Calories,
		TotalFat:          m.TotalFat,
		Sodium:            m.Sodium,
		TotalCarbohydrate: m.TotalCarbohydrate,
		TotalSugars:       m.TotalSugars,
		Protein:           m.Protein,
		Cost:              m.Cost,
		ShelfLifeDays:     m.ShelfLife,
	}
}

// PantryEntryToModel converts a domain pantry entry to a GORM model
func PantryEntryToModel(e *pantry.Entry) *PantryEntryModel {
	return &PantryEntryModel{
		ID:             e.ID,
		IngredientName: e.IngredientName,
		Quantity:       e.Quantity,
		PurchaseDate:   e.PurchaseDate,
		ExpiryDate:     e.ExpiryDate,
	}
}

// ModelToPantryEntry converts a GORM model to a domain pantry entry
func ModelToPantryEntry(m *PantryEntryModel) pantry.Entry {
	return pantry.Entry{
		ID:             m.ID,
		IngredientName: m.IngredientName,
		Quantity:       m.Quantity,
		PurchaseDate:   m.PurchaseDate,
		ExpiryDate:     m.ExpiryDate,
	}
}

// RecipeToModel converts a domain recipe and its lines to GORM models
func RecipeToModel(r *recipe.Recipe) *RecipeModel {
	model := &RecipeModel{
		ID:           r.ID,
		Name:         r.Name,
		MealType:     r.MealType,
		PrepTime:     r.PrepTime,
		CookTime:     r.CookTime,
		Instructions: r.Instructions,
		Servings:     r.Servings,
	}
	for _, line := range r.Ingredients {
		model.Ingredients = append(model.Ingredients, RecipeIngredientModel{
			RecipeName:        r.Name,
			IngredientName:    line.IngredientName,
			Quantity:          line.Quantity,
			UnitOfMeasurement: line.Unit,
		})
	}
	return model
}

// ModelToRecipe converts a GORM model and its lines to a domain recipe
func ModelToRecipe(m *RecipeModel) recipe.Recipe {
	r := recipe.Recipe{
		ID:           m.ID,
		Name:         m.Name,
		MealType:     m.MealType,
		PrepTime:     m.PrepTime,
		CookTime:     m.CookTime,
		Instructions: m.Instructions,
		Servings:     m.Servings,
	}
	for _, line := range m.Ingredients {
		r.Ingredients = append(r.Ingredients, recipe.IngredientLine{
			IngredientName: line.IngredientName,
			Quantity:       line.Quantity,
			Unit:           line.UnitOfMeasurement,
		})
	}
	return r
}
