package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/directory-platform/internal/domain"
	"github.com/directory-platform/internal/usecase"
)

func TestDispatch_ResolvesTaxonomyEntries(t *testing.T) {
	site := testSite()
	tax := testTaxonomy()

	t.Run("category city route carries both entries", func(t *testing.T) {
		route := &domain.Route{
			Kind:         domain.RouteDirectoryCategoryCity,
			CategorySlug: "family-law",
			CitySlug:     "tampa",
		}

		target, err := usecase.Dispatch(site, tax, route)
		require.NoError(t, err)
		assert.Equal(t, usecase.HandlerDirectoryCategoryCity, target.Handler)
		require.NotNil(t, target.Category)
		require.NotNil(t, target.City)
		assert.Equal(t, "Family Law", target.Category.Name)
		assert.Equal(t, "Tampa", target.City.Name)
		assert.Equal(t, "FL", target.State.Code)
	})

	t.Run("business route keeps the opaque id", func(t *testing.T) {
		route := &domain.Route{
			Kind:         domain.RouteDirectoryBusiness,
			CategorySlug: "family-law",
			CitySlug:     "tampa",
			BusinessID:   "abc123",
		}

		target, err := usecase.Dispatch(site, tax, route)
		require.NoError(t, err)
		assert.Equal(t, usecase.HandlerDirectoryBusiness, target.Handler)
		assert.Equal(t, "abc123", target.BusinessID)
	})

	t.Run("article route carries the article slug", func(t *testing.T) {
		route := &domain.Route{
			Kind:         domain.RouteContentArticle,
			CategorySlug: "family-law",
			ArticleSlug:  "how-to-file",
		}

		target, err := usecase.Dispatch(site, tax, route)
		require.NoError(t, err)
		assert.Equal(t, usecase.HandlerContentArticle, target.Handler)
		assert.Equal(t, "how-to-file", target.ArticleSlug)
	})
}

// Every route tag the grammar can produce must have a dispatch case.
func TestDispatch_CoversAllRouteKinds(t *testing.T) {
	site := testSite()
	tax := testTaxonomy()

	for _, kind := range domain.AllRouteKinds {
		route := &domain.Route{
			Kind:         kind,
			CategorySlug: "family-law",
			CitySlug:     "tampa",
			StateSlug:    "fl",
			ArticleSlug:  "how-to-file",
			BusinessID:   "abc123",
		}

		target, err := usecase.Dispatch(site, tax, route)
		require.NoError(t, err, "route kind %q has no dispatch case", kind)
		require.NotNil(t, target)
		assert.NotEmpty(t, target.Handler)
	}
}

func TestDispatch_UnknownKindFails(t *testing.T) {
	_, err := usecase.Dispatch(testSite(), testTaxonomy(), &domain.Route{Kind: "bogus"})
	assert.Error(t, err)
}
