// Package pantry contains the core domain logic for the pantry ledger:
// purchased ingredient lots and their expiry arithmetic.
package pantry

import "strings"

// SecondsPerDay is the fixed day length used for all expiry math.
// Expiry windows are computed in whole days, not calendar days.
const SecondsPerDay int64 = 86400

// Entry represents a purchased lot of an ingredient sitting in the
// pantry. Timestamps are Unix seconds.
type Entry struct {
	ID             uint    `json:"id"`
	IngredientName string  `json:"ingredient_name"`
	Quantity       float64 `json:"quantity"`
	PurchaseDate   int64   `json:"purchase_date"`

	// ExpiryDate is derived from the purchase date and the catalog
	// ingredient's shelf life at the time the entry is written.
	// Nil means the lot never expires.
	ExpiryDate *int64 `json:"expiry_date"`
}

// Validate validates the pantry entry
func (e Entry) Validate() error {
	if strings.TrimSpace(e.IngredientName) == "" {
		return ErrIngredientNameRequired
	}
	if e.Quantity <= 0 {
		return ErrNonPositiveQuantity
	}
	return nil
}

// IsExpired reports whether the lot's expiry date has passed at now.
// Entries without an expiry date never expire.
func (e Entry) IsExpired(now int64) bool {
	return e.ExpiryDate != nil && *e.ExpiryDate < now
}

// ExpiresWithin reports whether the lot expires inside the half-open
// window [now, now+days*86400). Already-expired lots are excluded.
func (e Entry) ExpiresWithin(now int64, days int) bool {
	if e.ExpiryDate == nil {
		return false
	}
	return *e.ExpiryDate >= now && *e.ExpiryDate < now+int64(days)*SecondsPerDay
}

// ComputeExpiry derives an entry's expiry date from its purchase date
// and the ingredient's shelf life in days. A nil shelf life yields a
// nil expiry date.
func ComputeExpiry(purchaseDate int64, shelfLifeDays *int) *int64 {
	if shelfLifeDays == nil {
		return nil
	}
	expiry := purchaseDate + int64(*shelfLifeDays)*SecondsPerDay
	return &expiry
}
