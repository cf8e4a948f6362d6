package repository

import (
	"context"

	"github.com/directory-platform/internal/domain"
)

// PlacesRepository is the external places API used to populate
// listings. Implementations own retry and rate-limit handling.
type PlacesRepository interface {
	// SearchPlaces runs a text search ("family law in Tampa, FL") and
	// returns the matching places.
	SearchPlaces(ctx context.Context, query string, limit int) ([]domain.Place, error)
}
