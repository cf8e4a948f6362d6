package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/directory-platform/internal/domain"
	"github.com/directory-platform/internal/pkg/errors"
	"github.com/directory-platform/internal/usecase"
)

func TestTaxonomyUseCase_Load(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()
	siteID := testSite().ID
	ttl := 5 * time.Minute

	t.Run("cache hit skips the store", func(t *testing.T) {
		mockTax := &MockTaxonomyRepository{}
		mockCache := &MockCacheRepository{}
		cached := testTaxonomy()
		mockCache.On("GetTaxonomy", ctx, siteID).Return(cached, nil)

		uc := usecase.NewTaxonomyUseCase(mockTax, mockCache, logger, ttl)

		got, err := uc.Load(ctx, siteID)
		require.NoError(t, err)
		assert.Same(t, cached, got)
		mockTax.AssertNotCalled(t, "GetEnabledCategories")
		mockTax.AssertNotCalled(t, "GetEnabledCities")
	})

	t.Run("miss loads from store, derives slugs and fills the cache", func(t *testing.T) {
		mockTax := &MockTaxonomyRepository{}
		mockCache := &MockCacheRepository{}

		mockCache.On("GetTaxonomy", ctx, siteID).Return(nil, nil)
		mockTax.On("GetEnabledCategories", mock.Anything, siteID).Return(testCategories(), nil)
		// Store cities come back without slugs.
		cities := []domain.City{
			{ID: testCities()[0].ID, StateID: testCities()[0].StateID, Name: "Tampa", Population: ptrInt64(398173)},
			{ID: testCities()[1].ID, StateID: testCities()[1].StateID, Name: "St. Petersburg", Population: ptrInt64(261256)},
		}
		mockTax.On("GetEnabledCities", mock.Anything, siteID).Return(cities, nil)
		mockCache.On("SetTaxonomy", ctx, mock.AnythingOfType("*domain.Taxonomy"), ttl).Return(nil)

		uc := usecase.NewTaxonomyUseCase(mockTax, mockCache, logger, ttl)

		got, err := uc.Load(ctx, siteID)
		require.NoError(t, err)
		assert.Equal(t, "tampa", got.Cities[0].Slug)
		assert.Equal(t, "st-petersburg", got.Cities[1].Slug)
		assert.True(t, got.HasCategory("family-law"))
		assert.True(t, got.HasCity("st-petersburg"))
		mockCache.AssertExpectations(t)
	})

	t.Run("cache read failure degrades to the store", func(t *testing.T) {
		mockTax := &MockTaxonomyRepository{}
		mockCache := &MockCacheRepository{}

		mockCache.On("GetTaxonomy", ctx, siteID).Return(nil, errors.ErrCacheError)
		mockTax.On("GetEnabledCategories", mock.Anything, siteID).Return(testCategories(), nil)
		mockTax.On("GetEnabledCities", mock.Anything, siteID).Return([]domain.City{}, nil)
		mockCache.On("SetTaxonomy", ctx, mock.AnythingOfType("*domain.Taxonomy"), ttl).Return(nil)

		uc := usecase.NewTaxonomyUseCase(mockTax, mockCache, logger, ttl)

		got, err := uc.Load(ctx, siteID)
		require.NoError(t, err)
		assert.Len(t, got.Categories, 2)
	})

	t.Run("cache write failure does not fail the load", func(t *testing.T) {
		mockTax := &MockTaxonomyRepository{}
		mockCache := &MockCacheRepository{}

		mockCache.On("GetTaxonomy", ctx, siteID).Return(nil, nil)
		mockTax.On("GetEnabledCategories", mock.Anything, siteID).Return([]domain.Category{}, nil)
		mockTax.On("GetEnabledCities", mock.Anything, siteID).Return([]domain.City{}, nil)
		mockCache.On("SetTaxonomy", ctx, mock.AnythingOfType("*domain.Taxonomy"), ttl).Return(errors.ErrCacheError)

		uc := usecase.NewTaxonomyUseCase(mockTax, mockCache, logger, ttl)

		got, err := uc.Load(ctx, siteID)
		require.NoError(t, err)
		require.NotNil(t, got)
	})

	t.Run("store failure propagates, never an empty taxonomy", func(t *testing.T) {
		mockTax := &MockTaxonomyRepository{}
		mockCache := &MockCacheRepository{}

		mockCache.On("GetTaxonomy", ctx, siteID).Return(nil, nil)
		mockTax.On("GetEnabledCategories", mock.Anything, siteID).Return(nil, errors.ErrDatabaseError)
		mockTax.On("GetEnabledCities", mock.Anything, siteID).Return([]domain.City{}, nil).Maybe()

		uc := usecase.NewTaxonomyUseCase(mockTax, mockCache, logger, ttl)

		got, err := uc.Load(ctx, siteID)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, errors.ErrDatabaseError)
	})

	t.Run("city slug collision rejects the load", func(t *testing.T) {
		mockTax := &MockTaxonomyRepository{}
		mockCache := &MockCacheRepository{}

		mockCache.On("GetTaxonomy", ctx, siteID).Return(nil, nil)
		mockTax.On("GetEnabledCategories", mock.Anything, siteID).Return([]domain.Category{}, nil)
		// "St. Louis" and "St Louis" both slugify to "st-louis".
		cities := []domain.City{
			{Name: "St. Louis"},
			{Name: "St Louis"},
		}
		mockTax.On("GetEnabledCities", mock.Anything, siteID).Return(cities, nil)

		uc := usecase.NewTaxonomyUseCase(mockTax, mockCache, logger, ttl)

		got, err := uc.Load(ctx, siteID)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, errors.ErrCitySlugCollision)
		mockCache.AssertNotCalled(t, "SetTaxonomy")
	})
}

func TestTaxonomyUseCase_Invalidate(t *testing.T) {
	mockCache := &MockCacheRepository{}
	siteID := testSite().ID
	ctx := context.Background()
	mockCache.On("InvalidateTaxonomy", ctx, siteID).Return(nil)

	uc := usecase.NewTaxonomyUseCase(&MockTaxonomyRepository{}, mockCache, zap.NewNop(), time.Minute)

	require.NoError(t, uc.Invalidate(ctx, siteID))
	mockCache.AssertExpectations(t)
}
