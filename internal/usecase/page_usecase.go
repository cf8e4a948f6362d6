package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/directory-platform/internal/domain"
	"github.com/directory-platform/internal/domain/repository"
	"github.com/directory-platform/internal/pkg/errors"
	"github.com/directory-platform/internal/usecase/dto"
)

const defaultPageSize = 25

// PageUseCase assembles the typed payload for each render target.
// Referential integrity of the opaque business id is owned here, one
// layer below the route grammar.
type PageUseCase struct {
	businessRepo repository.BusinessRepository
	logger       *zap.Logger
	pageSize     int
}

func NewPageUseCase(businessRepo repository.BusinessRepository, logger *zap.Logger) *PageUseCase {
	return &PageUseCase{
		businessRepo: businessRepo,
		logger:       logger,
		pageSize:     defaultPageSize,
	}
}

// Render builds the page payload for a dispatched target.
func (uc *PageUseCase) Render(
	ctx context.Context,
	site *domain.Site,
	tax *domain.Taxonomy,
	target *domain.RenderTarget,
	page int,
) (*dto.Page, error) {
	if page < 1 {
		page = 1
	}

	builder := NewURLBuilder(site, tax)
	out := &dto.Page{
		Kind: target.Handler,
		Site: siteInfo(site),
	}

	switch target.Handler {
	case HandlerHome:
		out.Title = site.Name
		out.Categories = categoryLinks(tax, builder)
		out.Cities = cityLinks(tax, builder)

	case HandlerDirectoryBase, HandlerDirectoryState:
		out.Title = fmt.Sprintf("%s in %s", site.Labels().BusinessPlural, site.State.Name)
		out.Categories = categoryLinks(tax, builder)
		out.Cities = cityLinks(tax, builder)
		if err := uc.attachListings(ctx, out, builder, tax, domain.BusinessFilter{SiteID: site.ID}, page); err != nil {
			return nil, err
		}

	case HandlerDirectoryCategory:
		link := categoryLink(*target.Category, builder)
		out.Category = &link
		out.Title = fmt.Sprintf("%s in %s", target.Category.Name, site.State.Name)
		out.Cities = cityLinksForCategory(tax, *target.Category, builder)
		filter := domain.BusinessFilter{SiteID: site.ID, CategoryID: target.Category.ID}
		if err := uc.attachListings(ctx, out, builder, tax, filter, page); err != nil {
			return nil, err
		}

	case HandlerDirectoryCity:
		link := cityLink(*target.City, builder)
		out.City = &link
		out.Title = fmt.Sprintf("%s in %s, %s", site.Labels().BusinessPlural, target.City.Name, site.State.Code)
		out.Categories = categoryLinksForCity(tax, *target.City, builder)
		filter := domain.BusinessFilter{SiteID: site.ID, CityID: target.City.ID}
		if err := uc.attachListings(ctx, out, builder, tax, filter, page); err != nil {
			return nil, err
		}

	case HandlerDirectoryCategoryCity:
		catLink := categoryLink(*target.Category, builder)
		ctyLink := cityLink(*target.City, builder)
		out.Category = &catLink
		out.City = &ctyLink
		out.Title = fmt.Sprintf("%s in %s, %s", target.Category.Name, target.City.Name, site.State.Code)
		filter := domain.BusinessFilter{
			SiteID:     site.ID,
			CategoryID: target.Category.ID,
			CityID:     target.City.ID,
		}
		if err := uc.attachListings(ctx, out, builder, tax, filter, page); err != nil {
			return nil, err
		}

	case HandlerDirectoryBusiness:
		business, err := uc.lookupBusiness(ctx, site, target)
		if err != nil {
			return nil, err
		}
		view := businessView(business, builder, tax)
		out.Business = &view
		out.Title = business.Name
		catLink := categoryLink(*target.Category, builder)
		ctyLink := cityLink(*target.City, builder)
		out.Category = &catLink
		out.City = &ctyLink

	case HandlerContentCategory:
		link := categoryLink(*target.Category, builder)
		out.Category = &link
		out.Title = target.Category.Name
		out.Cities = cityLinksForCategory(tax, *target.Category, builder)

	case HandlerContentArticle:
		link := categoryLink(*target.Category, builder)
		out.Category = &link
		out.ArticleSlug = target.ArticleSlug
		out.Title = fmt.Sprintf("%s: %s", target.Category.Name, target.ArticleSlug)

	default:
		return nil, fmt.Errorf("no page renderer for handler %q", target.Handler)
	}

	return out, nil
}

// lookupBusiness existence-checks the opaque id against the tenant,
// category and city the route addressed. A malformed id is the same
// not-found outcome as a missing row.
func (uc *PageUseCase) lookupBusiness(
	ctx context.Context,
	site *domain.Site,
	target *domain.RenderTarget,
) (*domain.Business, error) {
	id, err := uuid.Parse(target.BusinessID)
	if err != nil {
		return nil, errors.ErrBusinessNotFound
	}

	business, err := uc.businessRepo.GetByID(ctx, site.ID, id)
	if err != nil {
		return nil, err
	}

	if business.CategoryID != target.Category.ID || business.CityID != target.City.ID {
		uc.logger.Debug("Business exists but not under requested category/city",
			zap.String("business_id", id.String()),
			zap.String("site_id", site.ID.String()))
		return nil, errors.ErrBusinessNotFound
	}

	return business, nil
}

func (uc *PageUseCase) attachListings(
	ctx context.Context,
	out *dto.Page,
	builder *URLBuilder,
	tax *domain.Taxonomy,
	filter domain.BusinessFilter,
	page int,
) error {
	filter.Limit = uc.pageSize
	filter.Offset = (page - 1) * uc.pageSize

	businesses, total, err := uc.businessRepo.List(ctx, filter)
	if err != nil {
		return err
	}

	out.Businesses = make([]dto.BusinessView, 0, len(businesses))
	for _, b := range businesses {
		out.Businesses = append(out.Businesses, businessView(b, builder, tax))
	}
	out.Pagination = &dto.Pagination{Page: page, Limit: uc.pageSize, Total: total}
	return nil
}

func siteInfo(site *domain.Site) dto.SiteInfo {
	return dto.SiteInfo{
		ID:           site.ID,
		Name:         site.Name,
		Domain:       site.Domain,
		VerticalSlug: site.Vertical.Slug,
		StateCode:    site.State.Code,
		StateName:    site.State.Name,
		Labels:       site.Labels(),
	}
}

func categoryLink(c domain.Category, builder *URLBuilder) dto.CategoryLink {
	return dto.CategoryLink{Name: c.Name, Slug: c.Slug, URL: builder.CategoryPath(c)}
}

func cityLink(c domain.City, builder *URLBuilder) dto.CityLink {
	return dto.CityLink{Name: c.Name, Slug: c.Slug, URL: builder.CityPath(c), Population: c.Population}
}

func categoryLinks(tax *domain.Taxonomy, builder *URLBuilder) []dto.CategoryLink {
	links := make([]dto.CategoryLink, 0, len(tax.Categories))
	for _, c := range tax.Categories {
		links = append(links, categoryLink(c, builder))
	}
	return links
}

func cityLinks(tax *domain.Taxonomy, builder *URLBuilder) []dto.CityLink {
	links := make([]dto.CityLink, 0, len(tax.Cities))
	for _, c := range tax.Cities {
		links = append(links, cityLink(c, builder))
	}
	return links
}

// cityLinksForCategory drills down from a category page into its
// per-city pages.
func cityLinksForCategory(tax *domain.Taxonomy, category domain.Category, builder *URLBuilder) []dto.CityLink {
	links := make([]dto.CityLink, 0, len(tax.Cities))
	for _, c := range tax.Cities {
		links = append(links, dto.CityLink{
			Name:       c.Name,
			Slug:       c.Slug,
			URL:        builder.CategoryCityPath(category, c),
			Population: c.Population,
		})
	}
	return links
}

func categoryLinksForCity(tax *domain.Taxonomy, city domain.City, builder *URLBuilder) []dto.CategoryLink {
	links := make([]dto.CategoryLink, 0, len(tax.Categories))
	for _, c := range tax.Categories {
		links = append(links, dto.CategoryLink{
			Name: c.Name,
			Slug: c.Slug,
			URL:  builder.CategoryCityPath(c, city),
		})
	}
	return links
}

func businessView(b *domain.Business, builder *URLBuilder, tax *domain.Taxonomy) dto.BusinessView {
	view := dto.BusinessView{
		ID:      b.ID,
		Name:    b.Name,
		Address: b.Address,
		Phone:   b.Phone,
		Website: b.Website,
		Rating:  b.Rating,
	}

	// The detail URL needs the category and city slugs; a listing whose
	// taxonomy entries were disabled since import simply gets no link.
	var category *domain.Category
	for i := range tax.Categories {
		if tax.Categories[i].ID == b.CategoryID {
			category = &tax.Categories[i]
			break
		}
	}
	var city *domain.City
	for i := range tax.Cities {
		if tax.Cities[i].ID == b.CityID {
			city = &tax.Cities[i]
			break
		}
	}
	if category != nil && city != nil {
		view.URL = builder.BusinessPath(*category, *city, b.ID.String())
	}

	return view
}
