package usecase

import (
	"fmt"

	"github.com/directory-platform/internal/domain"
)

// Page handler identifiers, one per route tag. The delivery layer
// selects its renderer by these names.
const (
	HandlerHome                  = "pages.home"
	HandlerDirectoryBase         = "pages.directory_base"
	HandlerDirectoryCategory     = "pages.directory_category"
	HandlerDirectoryCity         = "pages.directory_city"
	HandlerDirectoryCategoryCity = "pages.directory_category_city"
	HandlerDirectoryBusiness     = "pages.directory_business"
	HandlerDirectoryState        = "pages.directory_state"
	HandlerContentCategory       = "pages.content_category"
	HandlerContentArticle        = "pages.content_article"
)

// Dispatch maps a parsed route to its render target, resolving the
// validated slugs into the taxonomy entries the page handler expects.
// The switch is exhaustive over domain.AllRouteKinds; a tag added to
// the union without a case here fails immediately instead of becoming
// a silent 404.
func Dispatch(site *domain.Site, tax *domain.Taxonomy, route *domain.Route) (*domain.RenderTarget, error) {
	switch route.Kind {
	case domain.RouteHome:
		return &domain.RenderTarget{Handler: HandlerHome}, nil

	case domain.RouteDirectoryBase:
		return &domain.RenderTarget{
			Handler: HandlerDirectoryBase,
			State:   &site.State,
		}, nil

	case domain.RouteDirectoryCategory:
		return &domain.RenderTarget{
			Handler:  HandlerDirectoryCategory,
			Category: tax.CategoryBySlug(route.CategorySlug),
			State:    &site.State,
		}, nil

	case domain.RouteDirectoryCity:
		return &domain.RenderTarget{
			Handler: HandlerDirectoryCity,
			City:    tax.CityBySlug(route.CitySlug),
			State:   &site.State,
		}, nil

	case domain.RouteDirectoryCategoryCity:
		return &domain.RenderTarget{
			Handler:  HandlerDirectoryCategoryCity,
			Category: tax.CategoryBySlug(route.CategorySlug),
			City:     tax.CityBySlug(route.CitySlug),
			State:    &site.State,
		}, nil

	case domain.RouteDirectoryBusiness:
		return &domain.RenderTarget{
			Handler:    HandlerDirectoryBusiness,
			Category:   tax.CategoryBySlug(route.CategorySlug),
			City:       tax.CityBySlug(route.CitySlug),
			State:      &site.State,
			BusinessID: route.BusinessID,
		}, nil

	case domain.RouteDirectoryState:
		return &domain.RenderTarget{
			Handler: HandlerDirectoryState,
			State:   &site.State,
		}, nil

	case domain.RouteContentCategory:
		return &domain.RenderTarget{
			Handler:  HandlerContentCategory,
			Category: tax.CategoryBySlug(route.CategorySlug),
		}, nil

	case domain.RouteContentArticle:
		return &domain.RenderTarget{
			Handler:     HandlerContentArticle,
			Category:    tax.CategoryBySlug(route.CategorySlug),
			ArticleSlug: route.ArticleSlug,
		}, nil
	}

	return nil, fmt.Errorf("unhandled route kind %q", route.Kind)
}
