package usecase

import (
	"github.com/directory-platform/internal/domain"
)

// URLBuilder produces the canonical path for every page of one site.
// It owns the single-item elision rule: when a site has exactly one
// enabled city (or category), canonical URLs omit that segment. The
// parser keeps accepting the explicit form for old links; the builder
// never emits it. Strictly separate from ParseRoute.
type URLBuilder struct {
	verticalSlug string
	tax          *domain.Taxonomy
}

func NewURLBuilder(site *domain.Site, tax *domain.Taxonomy) *URLBuilder {
	return &URLBuilder{
		verticalSlug: site.Vertical.Slug,
		tax:          tax,
	}
}

func (b *URLBuilder) Home() string {
	return "/"
}

func (b *URLBuilder) DirectoryBase() string {
	return "/" + b.verticalSlug
}

// CategoryPath is the catalog page for one category across all cities.
// With a single enabled category the base directory already renders
// it, so the segment is elided.
func (b *URLBuilder) CategoryPath(category domain.Category) string {
	if b.tax.SingleCategory() != nil {
		return b.DirectoryBase()
	}
	return b.DirectoryBase() + "/" + category.Slug
}

// CityPath is the catalog page for one city across all categories.
func (b *URLBuilder) CityPath(city domain.City) string {
	if b.tax.SingleCity() != nil {
		return b.DirectoryBase()
	}
	return b.DirectoryBase() + "/" + city.Slug
}

// CategoryCityPath is the catalog page for one category in one city.
// Either segment is elided when it is the only enabled one; the
// shorter route renders the same page.
func (b *URLBuilder) CategoryCityPath(category domain.Category, city domain.City) string {
	switch {
	case b.tax.SingleCategory() != nil && b.tax.SingleCity() != nil:
		return b.DirectoryBase()
	case b.tax.SingleCategory() != nil:
		return b.DirectoryBase() + "/" + city.Slug
	case b.tax.SingleCity() != nil:
		return b.DirectoryBase() + "/" + category.Slug
	}
	return b.DirectoryBase() + "/" + category.Slug + "/" + city.Slug
}

// BusinessPath never elides: the business route shape requires both
// the category and city segments ahead of the opaque id.
func (b *URLBuilder) BusinessPath(category domain.Category, city domain.City, businessID string) string {
	return b.DirectoryBase() + "/" + category.Slug + "/" + city.Slug + "/" + businessID
}

func (b *URLBuilder) ContentCategoryPath(category domain.Category) string {
	return "/" + category.Slug
}

func (b *URLBuilder) ContentArticlePath(category domain.Category, articleSlug string) string {
	return "/" + category.Slug + "/" + articleSlug
}
