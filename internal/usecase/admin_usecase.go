package usecase

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/directory-platform/internal/domain"
	"github.com/directory-platform/internal/domain/repository"
	"github.com/directory-platform/internal/usecase/dto"
)

// AdminUseCase backs the admin-host CRUD screens. Every mutation that
// touches a site's enablement invalidates that site's cached taxonomy
// -- the invalidation contract the request path relies on.
type AdminUseCase struct {
	siteRepo     repository.SiteRepository
	taxonomyRepo repository.TaxonomyRepository
	taxonomyUC   *TaxonomyUseCase
	logger       *zap.Logger
}

func NewAdminUseCase(
	siteRepo repository.SiteRepository,
	taxonomyRepo repository.TaxonomyRepository,
	taxonomyUC *TaxonomyUseCase,
	logger *zap.Logger,
) *AdminUseCase {
	return &AdminUseCase{
		siteRepo:     siteRepo,
		taxonomyRepo: taxonomyRepo,
		taxonomyUC:   taxonomyUC,
		logger:       logger,
	}
}

func (uc *AdminUseCase) ListSites(ctx context.Context) ([]*domain.Site, error) {
	return uc.siteRepo.List(ctx)
}

func (uc *AdminUseCase) GetSite(ctx context.Context, id uuid.UUID) (*domain.Site, error) {
	return uc.siteRepo.GetByID(ctx, id)
}

func (uc *AdminUseCase) CreateSite(ctx context.Context, req *dto.CreateSiteRequest) (*domain.Site, error) {
	site := &domain.Site{
		ID:        uuid.New(),
		Name:      req.Name,
		Domain:    NormalizeHost(req.Domain),
		Vertical:  domain.Vertical{ID: req.VerticalID},
		State:     domain.State{ID: req.StateID},
		Overrides: req.Overrides(),
	}

	if err := uc.siteRepo.Create(ctx, site); err != nil {
		return nil, err
	}

	uc.logger.Info("Site created",
		zap.String("site_id", site.ID.String()),
		zap.String("domain", site.Domain))
	return uc.siteRepo.GetByID(ctx, site.ID)
}

// SetCategoryEnabled toggles a category for a site and drops the
// site's cached taxonomy.
func (uc *AdminUseCase) SetCategoryEnabled(ctx context.Context, siteID, categoryID uuid.UUID, enabled bool) error {
	if err := uc.taxonomyRepo.SetCategoryEnabled(ctx, siteID, categoryID, enabled); err != nil {
		return err
	}
	return uc.invalidate(ctx, siteID)
}

// SetCityEnabled toggles a city for a site and drops the site's cached
// taxonomy.
func (uc *AdminUseCase) SetCityEnabled(ctx context.Context, siteID, cityID uuid.UUID, enabled bool) error {
	if err := uc.taxonomyRepo.SetCityEnabled(ctx, siteID, cityID, enabled); err != nil {
		return err
	}
	return uc.invalidate(ctx, siteID)
}

func (uc *AdminUseCase) ListVerticalCategories(ctx context.Context, verticalID uuid.UUID) ([]domain.Category, error) {
	return uc.taxonomyRepo.ListVerticalCategories(ctx, verticalID)
}

func (uc *AdminUseCase) ListStateCities(ctx context.Context, stateID uuid.UUID) ([]domain.City, error) {
	return uc.taxonomyRepo.ListStateCities(ctx, stateID)
}

func (uc *AdminUseCase) invalidate(ctx context.Context, siteID uuid.UUID) error {
	if err := uc.taxonomyUC.Invalidate(ctx, siteID); err != nil {
		// The write landed; the TTL bounds how long routing can lag.
		uc.logger.Warn("Taxonomy invalidation failed after enablement change",
			zap.String("site_id", siteID.String()),
			zap.Error(err))
	}
	return nil
}
