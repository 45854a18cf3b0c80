package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/pantryloom/v1/internal/domain/recipe"
	"github.com/pantryloom/v1/internal/ports/inbound"
	apperrors "github.com/pantryloom/v1/pkg/errors"
	"go.uber.org/zap"
)

// RecipeHandlers handles recipe catalog and generation requests
type RecipeHandlers struct {
	recipeService     inbound.RecipeService
	generationService inbound.GenerationService
	validate          *validator.Validate
	logger            *zap.Logger
}

// NewRecipeHandlers creates a new recipe handlers instance
func NewRecipeHandlers(recipeService inbound.RecipeService, generationService inbound.GenerationService, logger *zap.Logger) *RecipeHandlers {
	return &RecipeHandlers{
		recipeService:     recipeService,
		generationService: generationService,
		validate:          validator.New(),
		logger:            logger,
	}
}

type recipeLineRequest struct {
	IngredientName string  `json:"ingredient_name" validate:"required"`
	Quantity       float64 `json:"quantity" validate:"gt=0"`
	Unit           string  `json:"unit" validate:"required"`
}

type addRecipeRequest struct {
	Name         string              `json:"name" validate:"required"`
	MealType     *string             `json:"meal_type"`
	PrepTime     *int                `json:"prep_time" validate:"omitempty,gte=0"`
	CookTime     *int                `json:"cook_time" validate:"omitempty,gte=0"`
	Instructions string              `json:"instructions"`
	Servings     int                 `json:"servings" validate:"gte=0"`
	Ingredients  []recipeLineRequest `json:"ingredients" validate:"required,min=1,dive"`
}

type generateRecipeRequest struct {
	Prompt      string   `json:"prompt"`
	Ingredients []string `json:"ingredients" validate:"omitempty,dive,required"`
	UsePantry   bool     `json:"use_pantry"`
}

// ListRecipes handles GET /api/v1/recipes.
//
// Without query parameters it returns the full catalog; with any of
// prep_time_min, prep_time_max, cook_time_min, cook_time_max,
// meal_type, ingredients (comma separated), or ingredients_available
// it returns only the recipes matching every given constraint.
func (h *RecipeHandlers) ListRecipes(w http.ResponseWriter, r *http.Request) {
	criteria, err := parseFilterCriteria(r)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	recipes, err := h.recipeService.FilterRecipes(r.Context(), criteria)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: recipes})
}

// ListRecipeNames handles GET /api/v1/recipes/names
func (h *RecipeHandlers) ListRecipeNames(w http.ResponseWriter, r *http.Request) {
	names, err := h.recipeService.ListRecipeNames(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: names})
}

type getRecipeResponse struct {
	Recipe      *recipe.Recipe          `json:"recipe"`
	Ingredients []recipe.IngredientLine `json:"ingredients"`
}

// GetRecipe handles GET /api/v1/recipes/{name}.
//
// A miss is not an error: the response carries a null recipe and an
// empty ingredient list so callers can check for existence without
// handling 404s.
func (h *RecipeHandlers) GetRecipe(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	rec, err := h.recipeService.GetRecipe(r.Context(), name)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	resp := getRecipeResponse{Recipe: rec, Ingredients: []recipe.IngredientLine{}}
	if rec != nil && rec.Ingredients != nil {
		resp.Ingredients = rec.Ingredients
	}
	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: resp})
}

// AddRecipe handles POST /api/v1/recipes
func (h *RecipeHandlers) AddRecipe(w http.ResponseWriter, r *http.Request) {
	var req addRecipeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, r, h.logger, apperrors.NewValidationError(err.Error()))
		return
	}

	lines := make([]inbound.RecipeLineCommand, 0, len(req.Ingredients))
	for _, line := range req.Ingredients {
		lines = append(lines, inbound.RecipeLineCommand{
			IngredientName: line.IngredientName,
			Quantity:       line.Quantity,
			Unit:           line.Unit,
		})
	}

	rec, err := h.recipeService.AddRecipe(r.Context(), inbound.AddRecipeCommand{
		Name:         req.Name,
		MealType:     req.MealType,
		PrepTime:     req.PrepTime,
		CookTime:     req.CookTime,
		Instructions: req.Instructions,
		Servings:     req.Servings,
		Ingredients:  lines,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, APIResponse{Success: true, Data: rec})
}

// RemoveRecipe handles DELETE /api/v1/recipes/{name}
func (h *RecipeHandlers) RemoveRecipe(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	if err := h.recipeService.RemoveRecipe(r.Context(), name); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Message: "Recipe removed"})
}

// GenerateRecipe handles POST /api/v1/recipes/generate
func (h *RecipeHandlers) GenerateRecipe(w http.ResponseWriter, r *http.Request) {
	var req generateRecipeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, r, h.logger, apperrors.NewValidationError(err.Error()))
		return
	}

	rec, err := h.generationService.GenerateRecipe(r.Context(), inbound.GenerateRecipeRequest{
		Prompt:      req.Prompt,
		Ingredients: req.Ingredients,
		UsePantry:   req.UsePantry,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, APIResponse{Success: true, Data: rec})
}

func parseFilterCriteria(r *http.Request) (recipe.FilterCriteria, error) {
	var criteria recipe.FilterCriteria
	query := r.URL.Query()

	bounds := []struct {
		param string
		dest  **int
	}{
		{"prep_time_min", &criteria.PrepTimeMin},
		{"prep_time_max", &criteria.PrepTimeMax},
		{"cook_time_min", &criteria.CookTimeMin},
		{"cook_time_max", &criteria.CookTimeMax},
	}
	for _, b := range bounds {
		raw := query.Get(b.param)
		if raw == "" {
			continue
		}
		value, err := strconv.Atoi(raw)
		if err != nil || value < 0 {
			return criteria, apperrors.NewBadRequestError(b.param + " must be a non-negative integer")
		}
		*b.dest = &value
	}

	if mealType := query.Get("meal_type"); mealType != "" {
		criteria.MealType = &mealType
	}

	if raw := query.Get("ingredients"); raw != "" {
		for _, name := range strings.Split(raw, ",") {
			if name = strings.TrimSpace(name); name != "" {
				criteria.Ingredients = append(criteria.Ingredients, name)
			}
		}
	}

	if raw := query.Get("ingredients_available"); raw != "" {
		available, err := strconv.ParseBool(raw)
		if err != nil {
			return criteria, apperrors.NewBadRequestError("ingredients_available must be a boolean")
		}
		criteria.IngredientsAvailable = available
	}

	return criteria, nil
}
