package repository

import (
	"context"
	"futurecrop/internal/models"
)

// PriceRepository defines the interface for price record lookups
type PriceRepository interface {
	// FindRecent returns the best matching record for the filter, or
	// ErrNotFound when no usable record exists.
	FindRecent(ctx context.Context, filter PriceFilter) (*models.PriceRecord, error)
	// Count returns the number of records held by the repository.
	Count() int
}

// PriceFilter defines the lookup dimensions for FindRecent. Crop is
// mandatory; the rest narrow the search when present.
type PriceFilter struct {
	State    string
	District string
	Market   string
	Crop     string
}
