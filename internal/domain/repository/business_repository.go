package repository

import (
	"context"

	"github.com/directory-platform/internal/domain"
	"github.com/google/uuid"
)

// BusinessRepository provides access to directory listings.
type BusinessRepository interface {
	// GetByID returns one listing scoped to a site.
	GetByID(ctx context.Context, siteID, id uuid.UUID) (*domain.Business, error)

	// List returns listings matching the filter plus the unpaginated
	// total count.
	List(ctx context.Context, filter domain.BusinessFilter) ([]*domain.Business, int, error)

	// Upsert inserts or refreshes listings keyed by (site_id, place_ref).
	// Returns the stored rows with ids populated.
	Upsert(ctx context.Context, businesses []*domain.Business) ([]*domain.Business, error)
}
