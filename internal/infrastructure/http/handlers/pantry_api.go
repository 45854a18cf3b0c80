package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/pantryloom/v1/internal/ports/inbound"
	apperrors "github.com/pantryloom/v1/pkg/errors"
	"go.uber.org/zap"
)

// PantryHandlers handles pantry ledger requests
type PantryHandlers struct {
	pantryService inbound.PantryService
	validate      *validator.Validate
	logger        *zap.Logger
}

// NewPantryHandlers creates a new pantry handlers instance
func NewPantryHandlers(pantryService inbound.PantryService, logger *zap.Logger) *PantryHandlers {
	return &PantryHandlers{
		pantryService: pantryService,
		validate:      validator.New(),
		logger:        logger,
	}
}

type addEntryRequest struct {
	IngredientName string  `json:"ingredient_name" validate:"required"`
	Quantity       float64 `json:"quantity" validate:"gt=0"`
	PurchaseDate   int64   `json:"purchase_date" validate:"gte=0"`
	ExpiryDate     *int64  `json:"expiry_date" validate:"omitempty,gte=0"`
}

// ListEntries handles GET /api/v1/pantry
func (h *PantryHandlers) ListEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := h.pantryService.ListEntries(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: entries})
}

// AddEntry handles POST /api/v1/pantry
func (h *PantryHandlers) AddEntry(w http.ResponseWriter, r *http.Request) {
	var req addEntryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, r, h.logger, apperrors.NewValidationError(err.Error()))
		return
	}

	entry, err := h.pantryService.AddEntry(r.Context(), inbound.AddPantryEntryCommand{
		IngredientName: req.IngredientName,
		Quantity:       req.Quantity,
		PurchaseDate:   req.PurchaseDate,
		ExpiryDate:     req.ExpiryDate,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, APIResponse{Success: true, Data: entry})
}

// RemoveEntry handles DELETE /api/v1/pantry/{id}
func (h *PantryHandlers) RemoveEntry(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 32)
	if err != nil {
		writeError(w, r, h.logger, apperrors.NewBadRequestError("entry id must be a positive integer"))
		return
	}

	if err := h.pantryService.RemoveEntry(r.Context(), uint(id)); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Message: "Pantry entry removed"})
}

// GetExpiring handles GET /api/v1/pantry/expiring?days=N
func (h *PantryHandlers) GetExpiring(w http.ResponseWriter, r *http.Request) {
	days := 7
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			writeError(w, r, h.logger, apperrors.NewBadRequestError("days must be a non-negative integer"))
			return
		}
		days = parsed
	}

	entries, err := h.pantryService.GetExpiring(r.Context(), days)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: entries})
}

// GetExpired handles GET /api/v1/pantry/expired
func (h *PantryHandlers) GetExpired(w http.ResponseWriter, r *http.Request) {
	entries, err := h.pantryService.GetExpired(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: entries})
}

// GetSummary handles GET /api/v1/pantry/summary
func (h *PantryHandlers) GetSummary(w http.ResponseWriter, r *http.Request) {
	stock, err := h.pantryService.Summary(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: stock})
}
