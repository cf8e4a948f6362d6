package repository

import (
	"context"
	"time"

	"github.com/directory-platform/internal/domain"
	"github.com/google/uuid"
)

// CacheRepository is the shared cache used for per-site taxonomies.
type CacheRepository interface {
	// Get returns the raw value for key, or nil on a miss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a key.
	Delete(ctx context.Context, key string) error

	// GetTaxonomy returns a cached taxonomy for the site, or nil on a
	// miss. The returned taxonomy has its slug indexes rebuilt.
	GetTaxonomy(ctx context.Context, siteID uuid.UUID) (*domain.Taxonomy, error)

	// SetTaxonomy caches a taxonomy with TTL.
	SetTaxonomy(ctx context.Context, tax *domain.Taxonomy, ttl time.Duration) error

	// InvalidateTaxonomy drops the cached taxonomy for the site.
	InvalidateTaxonomy(ctx context.Context, siteID uuid.UUID) error
}
