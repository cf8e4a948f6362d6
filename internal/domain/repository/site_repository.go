package repository

import (
	"context"

	"github.com/directory-platform/internal/domain"
	"github.com/google/uuid"
)

// SiteRepository provides read/write access to tenant sites.
type SiteRepository interface {
	// GetByDomain returns the site owning the given normalized host.
	GetByDomain(ctx context.Context, host string) (*domain.Site, error)

	// GetByID returns a site by its id.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Site, error)

	// List returns all sites ordered by name.
	List(ctx context.Context) ([]*domain.Site, error)

	// Create inserts a new site. The domain must already be
	// lowercase-normalized and unique.
	Create(ctx context.Context, site *domain.Site) error

	// UpdateOverrides replaces a site's terminology overrides.
	UpdateOverrides(ctx context.Context, id uuid.UUID, overrides domain.Terminology) error
}
