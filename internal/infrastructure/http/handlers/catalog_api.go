package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/pantryloom/v1/internal/ports/inbound"
	apperrors "github.com/pantryloom/v1/pkg/errors"
	"go.uber.org/zap"
)

// CatalogHandlers handles unit and ingredient catalog requests
type CatalogHandlers struct {
	catalogService inbound.CatalogService
	validate       *validator.Validate
	logger         *zap.Logger
}

// NewCatalogHandlers creates a new catalog handlers instance
func NewCatalogHandlers(catalogService inbound.CatalogService, logger *zap.Logger) *CatalogHandlers {
	return &CatalogHandlers{
		catalogService: catalogService,
		validate:       validator.New(),
		logger:         logger,
	}
}

type addUnitRequest struct {
	Name string `json:"name" validate:"required"`
}

// ingredientRequest carries an ingredient create or replace
type ingredientRequest struct {
	Name              string   `json:"name" validate:"required"`
	ServingSize       float64  `json:"serving_size" validate:"gte=0"`
	Unit              string   `json:"unit" validate:"required"`
	Calories          *float64 `json:"calories"`
	TotalFat          *float64 `json:"total_fat"`
	Sodium            *float64 `json:"sodium"`
	TotalCarbohydrate *float64 `json:"total_carbohydrate"`
	TotalSugars       *float64 `json:"total_sugars"`
	Protein           *float64 `json:"protein"`
	Cost              *float64 `json:"cost"`
	ShelfLifeDays     *int     `json:"shelf_life" validate:"omitempty,gte=0"`
}

// ListUnits handles GET /api/v1/units
func (h *CatalogHandlers) ListUnits(w http.ResponseWriter, r *http.Request) {
	units, err := h.catalogService.ListUnits(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: units})
}

// AddUnit handles POST /api/v1/units
func (h *CatalogHandlers) AddUnit(w http.ResponseWriter, r *http.Request) {
	var req addUnitRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, r, h.logger, apperrors.NewValidationError(err.Error()))
		return
	}

	unit, err := h.catalogService.AddUnit(r.Context(), req.Name)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, APIResponse{Success: true, Data: unit})
}

// RemoveUnit handles DELETE /api/v1/units/{name}
func (h *CatalogHandlers) RemoveUnit(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	if err := h.catalogService.RemoveUnit(r.Context(), name); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Message: "Unit removed"})
}

// ListIngredients handles GET /api/v1/ingredients
func (h *CatalogHandlers) ListIngredients(w http.ResponseWriter, r *http.Request) {
	ingredients, err := h.catalogService.ListIngredients(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: ingredients})
}

// GetIngredient handles GET /api/v1/ingredients/{name}
func (h *CatalogHandlers) GetIngredient(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	ingredient, err := h.catalogService.GetIngredient(r.Context(), name)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: ingredient})
}

// AddIngredient handles POST /api/v1/ingredients
func (h *CatalogHandlers) AddIngredient(w http.ResponseWriter, r *http.Request) {
	cmd, err := h.decodeIngredient(r, "")
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	ingredient, err := h.catalogService.AddIngredient(r.Context(), cmd)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, APIResponse{Success: true, Data: ingredient})
}

// UpdateIngredient handles PUT /api/v1/ingredients/{name}
func (h *CatalogHandlers) UpdateIngredient(w http.ResponseWriter, r *http.Request) {
	// The path, not the body, names the ingredient being replaced
	cmd, err := h.decodeIngredient(r, chi.URLParam(r, "name"))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	ingredient, err := h.catalogService.UpdateIngredient(r.Context(), cmd)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: ingredient})
}

// RemoveIngredient handles DELETE /api/v1/ingredients/{name}
func (h *CatalogHandlers) RemoveIngredient(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	if err := h.catalogService.RemoveIngredient(r.Context(), name); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Message: "Ingredient removed"})
}

func (h *CatalogHandlers) decodeIngredient(r *http.Request, nameOverride string) (inbound.AddIngredientCommand, error) {
	var req ingredientRequest
	if err := decodeJSON(r, &req); err != nil {
		return inbound.AddIngredientCommand{}, err
	}
	if nameOverride != "" {
		req.Name = nameOverride
	}
	if err := h.validate.Struct(req); err != nil {
		return inbound.AddIngredientCommand{}, apperrors.NewValidationError(err.Error())
	}

	return inbound.AddIngredientCommand{
		Name:              req.Name,
		ServingSize:       req.ServingSize,
		Unit:              req.Unit,
		Calories:          req.Calories,
		TotalFat:          req.TotalFat,
		Sodium:            req.Sodium,
		TotalCarbohydrate: req.TotalCarbohydrate,
		TotalSugars:       req.TotalSugars,
		Protein:           req.Protein,
		Cost:              req.Cost,
		ShelfLifeDays:     req.ShelfLifeDays,
	}, nil
}
