package repository

import (
	"context"

	"github.com/directory-platform/internal/domain"
	"github.com/google/uuid"
)

// TaxonomyRepository reads and mutates per-site enablement of
// categories and cities. Reads return deterministic order: categories
// by name, cities by population descending with nulls last, then name.
type TaxonomyRepository interface {
	// GetEnabledCategories returns the site's enabled categories
	// ordered by name.
	GetEnabledCategories(ctx context.Context, siteID uuid.UUID) ([]domain.Category, error)

	// GetEnabledCities returns the site's enabled cities ordered by
	// population descending (nulls last), then name. City slugs are
	// not populated here; the taxonomy use case derives them.
	GetEnabledCities(ctx context.Context, siteID uuid.UUID) ([]domain.City, error)

	// ListVerticalCategories returns the full category catalog of a
	// vertical, enabled or not.
	ListVerticalCategories(ctx context.Context, verticalID uuid.UUID) ([]domain.Category, error)

	// ListStateCities returns all cities of a state.
	ListStateCities(ctx context.Context, stateID uuid.UUID) ([]domain.City, error)

	// SetCategoryEnabled toggles a category for a site.
	SetCategoryEnabled(ctx context.Context, siteID, categoryID uuid.UUID, enabled bool) error

	// SetCityEnabled toggles a city for a site.
	SetCityEnabled(ctx context.Context, siteID, cityID uuid.UUID, enabled bool) error
}
