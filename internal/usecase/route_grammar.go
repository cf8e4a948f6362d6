package usecase

import (
	"strings"

	"github.com/directory-platform/internal/domain"
	"github.com/directory-platform/internal/pkg/slug"
)

// SplitPath turns a percent-decoded request path into route segments.
// Empty segments (leading, trailing or doubled slashes) are dropped, so
// "/" yields nil and "/lawyers/tampa/" yields ["lawyers","tampa"].
func SplitPath(path string) []string {
	parts := strings.Split(path, "/")
	segments := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			segments = append(segments, p)
		}
	}
	if len(segments) == 0 {
		return nil
	}
	return segments
}

// ParseRoute maps path segments onto the site's page grammar. It is
// pure and stateless: slugs are matched exactly against the taxonomy
// built for this site, with no normalization at match time. A nil
// return means no page owns the path and the request fails closed.
//
// The vertical base-path prefix is tested before the bare content
// routes: the two slug namespaces may overlap, and the longer,
// prefix-qualified form wins.
func ParseRoute(site *domain.Site, segments []string, tax *domain.Taxonomy) *domain.Route {
	if len(segments) == 0 {
		return &domain.Route{Kind: domain.RouteHome}
	}

	if segments[0] == site.Vertical.Slug {
		return parseDirectory(site, segments[1:], tax)
	}

	// Content routes live outside the vertical base path and are keyed
	// by enabled category slugs.
	switch len(segments) {
	case 1:
		if tax.HasCategory(segments[0]) {
			return &domain.Route{
				Kind:         domain.RouteContentCategory,
				CategorySlug: segments[0],
			}
		}
	case 2:
		if tax.HasCategory(segments[0]) {
			return &domain.Route{
				Kind:         domain.RouteContentArticle,
				CategorySlug: segments[0],
				ArticleSlug:  segments[1],
			}
		}
	}

	return nil
}

// parseDirectory handles everything under the vertical's base path.
// A single segment is tested against the category set first, then the
// city set, then the site's state; position alone never decides.
func parseDirectory(site *domain.Site, rest []string, tax *domain.Taxonomy) *domain.Route {
	switch len(rest) {
	case 0:
		return &domain.Route{Kind: domain.RouteDirectoryBase}

	case 1:
		seg := rest[0]
		if tax.HasCategory(seg) {
			return &domain.Route{
				Kind:         domain.RouteDirectoryCategory,
				CategorySlug: seg,
			}
		}
		if tax.HasCity(seg) {
			return &domain.Route{
				Kind:     domain.RouteDirectoryCity,
				CitySlug: seg,
			}
		}
		if seg == slug.Make(site.State.Name) || seg == strings.ToLower(site.State.Code) {
			return &domain.Route{
				Kind:      domain.RouteDirectoryState,
				StateSlug: seg,
			}
		}

	case 2:
		if tax.HasCategory(rest[0]) && tax.HasCity(rest[1]) {
			return &domain.Route{
				Kind:         domain.RouteDirectoryCategoryCity,
				CategorySlug: rest[0],
				CitySlug:     rest[1],
			}
		}

	case 3:
		// The trailing business id stays opaque here; the page layer
		// owns existence-checking it against the tenant, category and
		// city. The grammar only establishes shape.
		if tax.HasCategory(rest[0]) && tax.HasCity(rest[1]) {
			return &domain.Route{
				Kind:         domain.RouteDirectoryBusiness,
				CategorySlug: rest[0],
				CitySlug:     rest[1],
				BusinessID:   rest[2],
			}
		}
	}

	return nil
}
