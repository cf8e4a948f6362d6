package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/directory-platform/internal/domain"
	"github.com/directory-platform/internal/usecase"
)

func TestURLBuilder_MultipleEnabled(t *testing.T) {
	site := testSite()
	tax := testTaxonomy()
	b := usecase.NewURLBuilder(site, tax)

	category := tax.Categories[1] // family-law
	city := tax.Cities[0]         // tampa

	assert.Equal(t, "/", b.Home())
	assert.Equal(t, "/lawyers", b.DirectoryBase())
	assert.Equal(t, "/lawyers/family-law", b.CategoryPath(category))
	assert.Equal(t, "/lawyers/tampa", b.CityPath(city))
	assert.Equal(t, "/lawyers/family-law/tampa", b.CategoryCityPath(category, city))
	assert.Equal(t, "/lawyers/family-law/tampa/abc123", b.BusinessPath(category, city, "abc123"))
	assert.Equal(t, "/family-law", b.ContentCategoryPath(category))
	assert.Equal(t, "/family-law/how-to-file", b.ContentArticlePath(category, "how-to-file"))
}

func TestURLBuilder_SingleCityElision(t *testing.T) {
	site := testSite()
	tax := domain.NewTaxonomy(site.ID, testCategories(), testCities()[:1])
	b := usecase.NewURLBuilder(site, tax)

	category := tax.Categories[1]
	city := tax.Cities[0]

	assert.Equal(t, "/lawyers", b.CityPath(city))
	assert.Equal(t, "/lawyers/family-law", b.CategoryCityPath(category, city))
	// The business route shape is fixed; no elision.
	assert.Equal(t, "/lawyers/family-law/tampa/abc123", b.BusinessPath(category, city, "abc123"))
}

func TestURLBuilder_SingleCategoryElision(t *testing.T) {
	site := testSite()
	tax := domain.NewTaxonomy(site.ID, testCategories()[:1], testCities())
	b := usecase.NewURLBuilder(site, tax)

	category := tax.Categories[0]
	city := tax.Cities[0]

	assert.Equal(t, "/lawyers", b.CategoryPath(category))
	assert.Equal(t, "/lawyers/tampa", b.CategoryCityPath(category, city))
}

func TestURLBuilder_SingleBothElision(t *testing.T) {
	site := testSite()
	tax := domain.NewTaxonomy(site.ID, testCategories()[:1], testCities()[:1])
	b := usecase.NewURLBuilder(site, tax)

	assert.Equal(t, "/lawyers", b.CategoryCityPath(tax.Categories[0], tax.Cities[0]))
}

// Every path the builder emits must parse back to a route, and a
// non-elided segment must come back as the same category or city. The
// parser may map an elided form to a broader page, but it never 404s a
// canonical URL.
func TestURLBuilder_EmittedPathsAlwaysParse(t *testing.T) {
	site := testSite()

	taxonomies := []*domain.Taxonomy{
		testTaxonomy(),
		domain.NewTaxonomy(site.ID, testCategories()[:1], testCities()),
		domain.NewTaxonomy(site.ID, testCategories(), testCities()[:1]),
		domain.NewTaxonomy(site.ID, testCategories()[:1], testCities()[:1]),
	}

	const businessID = "11111111-2222-3333-4444-555555555555"

	parse := func(tax *domain.Taxonomy, path string) *domain.Route {
		route := usecase.ParseRoute(site, usecase.SplitPath(path), tax)
		require.NotNil(t, route, "canonical path %q did not parse", path)
		return route
	}

	for _, tax := range taxonomies {
		b := usecase.NewURLBuilder(site, tax)
		multiCategory := len(tax.Categories) > 1
		multiCity := len(tax.Cities) > 1

		assert.Equal(t, domain.RouteHome, parse(tax, b.Home()).Kind)
		assert.Equal(t, domain.RouteDirectoryBase, parse(tax, b.DirectoryBase()).Kind)

		for _, category := range tax.Categories {
			route := parse(tax, b.ContentCategoryPath(category))
			assert.Equal(t, domain.RouteContentCategory, route.Kind)
			assert.Equal(t, category.Slug, route.CategorySlug)

			route = parse(tax, b.CategoryPath(category))
			if multiCategory {
				assert.Equal(t, domain.RouteDirectoryCategory, route.Kind)
				assert.Equal(t, category.Slug, route.CategorySlug)
			}

			for _, city := range tax.Cities {
				route = parse(tax, b.CityPath(city))
				if multiCity {
					assert.Equal(t, domain.RouteDirectoryCity, route.Kind)
					assert.Equal(t, city.Slug, route.CitySlug)
				}

				route = parse(tax, b.CategoryCityPath(category, city))
				if multiCategory && multiCity {
					assert.Equal(t, domain.RouteDirectoryCategoryCity, route.Kind)
					assert.Equal(t, category.Slug, route.CategorySlug)
					assert.Equal(t, city.Slug, route.CitySlug)
				}

				// The business route never elides, so the round trip
				// is exact for every taxonomy shape.
				route = parse(tax, b.BusinessPath(category, city, businessID))
				assert.Equal(t, domain.RouteDirectoryBusiness, route.Kind)
				assert.Equal(t, category.Slug, route.CategorySlug)
				assert.Equal(t, city.Slug, route.CitySlug)
				assert.Equal(t, businessID, route.BusinessID)
			}
		}
	}
}

// The explicit form keeps parsing after elision makes it non-canonical.
func TestURLBuilder_ExplicitFormStillParses(t *testing.T) {
	site := testSite()
	tax := domain.NewTaxonomy(site.ID, testCategories(), testCities()[:1])

	route := usecase.ParseRoute(site, []string{"lawyers", "family-law", "tampa"}, tax)
	require.NotNil(t, route)
	assert.Equal(t, domain.RouteDirectoryCategoryCity, route.Kind)
}
