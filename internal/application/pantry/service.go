// Package pantry provides the application layer for the pantry ledger.
// This implements the use cases defined in the inbound ports.
package pantry

import (
	"context"
	"time"

	"github.com/pantryloom/v1/internal/domain/pantry"
	"github.com/pantryloom/v1/internal/domain/shared"
	"github.com/pantryloom/v1/internal/ports/inbound"
	"github.com/pantryloom/v1/internal/ports/outbound"
	"github.com/pantryloom/v1/pkg/errors"
	"go.uber.org/zap"
)

// PantryService implements the pantry use cases
type PantryService struct {
	pantryRepo     outbound.PantryRepository
	ingredientRepo outbound.IngredientRepository
	logger         *zap.Logger

	// now is swappable in tests
	now func() int64
}

// NewPantryService creates a new pantry service
func NewPantryService(
	pantryRepo outbound.PantryRepository,
	ingredientRepo outbound.IngredientRepository,
	logger *zap.Logger,
) inbound.PantryService {
	return &PantryService{
		pantryRepo:     pantryRepo,
		ingredientRepo: ingredientRepo,
		logger:         logger.Named("pantry-service"),
		now:            func() int64 { return time.Now().Unix() },
	}
}

// AddEntry records a purchase. Unless the caller supplies an explicit
// expiry date, it is derived here from the purchase date and the catalog
// ingredient's shelf life, so that later shelf-life edits do not rewrite
// history.
func (s *PantryService) AddEntry(ctx context.Context, cmd inbound.AddPantryEntryCommand) (*pantry.Entry, error) {
	name := shared.NormalizeName(cmd.IngredientName)

	ingredient, err := s.ingredientRepo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}

	purchaseDate := cmd.PurchaseDate
	if purchaseDate == 0 {
		purchaseDate = s.now()
	}

	expiryDate := cmd.ExpiryDate
	if expiryDate == nil {
		expiryDate = pantry.ComputeExpiry(purchaseDate, ingredient.ShelfLifeDays)
	}

	entry := pantry.Entry{
		IngredientName: ingredient.Name,
		Quantity:       cmd.Quantity,
		PurchaseDate:   purchaseDate,
		ExpiryDate:     expiryDate,
	}
	if err := entry.Validate(); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.pantryRepo.Create(ctx, &entry); err != nil {
		return nil, err
	}

	s.logger.Info("Pantry entry added",
		zap.String("ingredient", entry.IngredientName),
		zap.Float64("quantity", entry.Quantity),
	)
	return &entry, nil
}

// ListEntries returns all pantry lots
func (s *PantryService) ListEntries(ctx context.Context) ([]pantry.Entry, error) {
	return s.pantryRepo.FindAll(ctx)
}

// RemoveEntry removes a pantry lot by id
func (s *PantryService) RemoveEntry(ctx context.Context, id uint) error {
	if err := s.pantryRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Pantry entry removed", zap.Uint("id", id))
	return nil
}

// GetExpiring returns lots expiring within [now, now+days*86400)
func (s *PantryService) GetExpiring(ctx context.Context, days int) ([]pantry.Entry, error) {
	if days < 0 {
		return nil, errors.NewValidationError("days cannot be negative")
	}

	now := s.now()
	return s.pantryRepo.FindExpiringBetween(ctx, now, now+int64(days)*pantry.SecondsPerDay)
}

// GetExpired returns lots whose expiry date has passed
func (s *PantryService) GetExpired(ctx context.Context) ([]pantry.Entry, error) {
	return s.pantryRepo.FindExpiredBefore(ctx, s.now())
}

// Summary aggregates unexpired stock per ingredient
func (s *PantryService) Summary(ctx context.Context) ([]inbound.PantryStock, error) {
	rows, err := s.pantryRepo.AvailableIngredients(ctx, s.now())
	if err != nil {
		return nil, err
	}

	stock := make([]inbound.PantryStock, len(rows))
	for i, row := range rows {
		stock[i] = inbound.PantryStock{
			IngredientName: row.Name,
			Quantity:       row.Quantity,
			Unit:           row.Unit,
		}
	}
	return stock, nil
}
