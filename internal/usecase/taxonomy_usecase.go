package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/directory-platform/internal/domain"
	"github.com/directory-platform/internal/domain/repository"
	"github.com/directory-platform/internal/pkg/errors"
	"github.com/directory-platform/internal/pkg/slug"
)

// TaxonomyUseCase loads the per-site enabled categories and cities,
// derives city slugs and serves the result through the shared cache.
type TaxonomyUseCase struct {
	taxonomyRepo repository.TaxonomyRepository
	cacheRepo    repository.CacheRepository
	logger       *zap.Logger
	cacheTTL     time.Duration
}

func NewTaxonomyUseCase(
	taxonomyRepo repository.TaxonomyRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *TaxonomyUseCase {
	return &TaxonomyUseCase{
		taxonomyRepo: taxonomyRepo,
		cacheRepo:    cacheRepo,
		logger:       logger,
		cacheTTL:     cacheTTL,
	}
}

// Load returns the site's taxonomy, from cache when possible. Cache
// failures degrade to a store load; store failures propagate, never an
// empty taxonomy -- an empty one is a legitimate "nothing enabled"
// state and must not be conflated with an outage.
func (uc *TaxonomyUseCase) Load(ctx context.Context, siteID uuid.UUID) (*domain.Taxonomy, error) {
	cached, err := uc.cacheRepo.GetTaxonomy(ctx, siteID)
	if err != nil {
		uc.logger.Warn("Taxonomy cache read failed, falling back to store",
			zap.String("site_id", siteID.String()),
			zap.Error(err))
	}
	if cached != nil {
		return cached, nil
	}

	tax, err := uc.loadFromStore(ctx, siteID)
	if err != nil {
		return nil, err
	}

	if err := uc.cacheRepo.SetTaxonomy(ctx, tax, uc.cacheTTL); err != nil {
		uc.logger.Warn("Failed to cache taxonomy",
			zap.String("site_id", siteID.String()),
			zap.Error(err))
	}

	return tax, nil
}

// Invalidate drops the cached taxonomy for a site. Admin mutations of
// the enablement tables call this; the TTL is only the backstop.
func (uc *TaxonomyUseCase) Invalidate(ctx context.Context, siteID uuid.UUID) error {
	return uc.cacheRepo.InvalidateTaxonomy(ctx, siteID)
}

func (uc *TaxonomyUseCase) loadFromStore(ctx context.Context, siteID uuid.UUID) (*domain.Taxonomy, error) {
	var (
		categories []domain.Category
		cities     []domain.City
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		categories, err = uc.taxonomyRepo.GetEnabledCategories(gctx, siteID)
		return err
	})
	g.Go(func() error {
		var err error
		cities, err = uc.taxonomyRepo.GetEnabledCities(gctx, siteID)
		return err
	})
	if err := g.Wait(); err != nil {
		uc.logger.Error("Failed to load taxonomy",
			zap.String("site_id", siteID.String()),
			zap.Error(err))
		return nil, err
	}

	// City slugs are derived here, not stored. Two enabled cities
	// collapsing to one slug would make one unreachable by URL, so the
	// load is rejected instead of silently shadowing a city.
	seen := make(map[string]string, len(cities))
	for i := range cities {
		s := slug.Make(cities[i].Name)
		if other, ok := seen[s]; ok {
			uc.logger.Error("City slug collision in enabled set",
				zap.String("site_id", siteID.String()),
				zap.String("slug", s),
				zap.String("city", cities[i].Name),
				zap.String("conflicts_with", other))
			return nil, errors.ErrCitySlugCollision.WithDetails(map[string]interface{}{
				"slug":   s,
				"cities": []string{other, cities[i].Name},
			})
		}
		seen[s] = cities[i].Name
		cities[i].Slug = s
	}

	return domain.NewTaxonomy(siteID, categories, cities), nil
}
