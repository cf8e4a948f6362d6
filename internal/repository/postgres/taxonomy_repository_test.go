package postgres_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/directory-platform/internal/domain/repository"
	"github.com/directory-platform/internal/repository/postgres/testhelpers"
)

type TaxonomyRepositoryTestSuite struct {
	suite.Suite
	testDB *testhelpers.TestDB
	repo   repository.TaxonomyRepository
	ctx    context.Context

	verticalID uuid.UUID
	stateID    uuid.UUID
	siteID     uuid.UUID

	criminalID uuid.UUID
	familyID   uuid.UUID
	tampaID    uuid.UUID
	stPeteID   uuid.UUID
	noPopID    uuid.UUID
}

func (s *TaxonomyRepositoryTestSuite) SetupSuite() {
	s.testDB = testhelpers.SetupTestDB(s.T())
	s.ctx = context.Background()

	s.NoError(s.testDB.Cleanup(s.ctx))
	s.NoError(testhelpers.ApplyMigrations(s.testDB.DB.DB, "../../../migrations"))

	s.repo = testhelpers.NewTaxonomyRepositoryForTest(s.testDB.DB, s.testDB.Logger)
}

func (s *TaxonomyRepositoryTestSuite) TearDownSuite() {
	if s.testDB != nil {
		s.testDB.Close()
	}
}

func (s *TaxonomyRepositoryTestSuite) SetupTest() {
	s.NoError(s.testDB.Cleanup(s.ctx))

	var err error
	s.stateID, err = testhelpers.SeedState(s.ctx, s.testDB.DB, "FL", "Florida")
	s.NoError(err)
	s.verticalID, err = testhelpers.SeedVertical(s.ctx, s.testDB.DB, "Lawyers", "lawyers")
	s.NoError(err)
	s.siteID, err = testhelpers.SeedSite(s.ctx, s.testDB.DB,
		"Florida Lawyers", "floridalawyers.example.com", s.verticalID, s.stateID)
	s.NoError(err)

	s.familyID, err = testhelpers.SeedCategory(s.ctx, s.testDB.DB, s.verticalID, "Family Law", "family-law")
	s.NoError(err)
	s.criminalID, err = testhelpers.SeedCategory(s.ctx, s.testDB.DB, s.verticalID, "Criminal Defense", "criminal-defense")
	s.NoError(err)

	tampaPop := int64(398173)
	stPetePop := int64(261256)
	s.stPeteID, err = testhelpers.SeedCity(s.ctx, s.testDB.DB, s.stateID, "St. Petersburg", &stPetePop)
	s.NoError(err)
	s.tampaID, err = testhelpers.SeedCity(s.ctx, s.testDB.DB, s.stateID, "Tampa", &tampaPop)
	s.NoError(err)
	s.noPopID, err = testhelpers.SeedCity(s.ctx, s.testDB.DB, s.stateID, "Ybor City", nil)
	s.NoError(err)
}

func (s *TaxonomyRepositoryTestSuite) TestGetEnabledCategories_OrderedByName() {
	s.NoError(testhelpers.EnableCategory(s.ctx, s.testDB.DB, s.siteID, s.familyID))
	s.NoError(testhelpers.EnableCategory(s.ctx, s.testDB.DB, s.siteID, s.criminalID))

	categories, err := s.repo.GetEnabledCategories(s.ctx, s.siteID)
	s.NoError(err)
	s.Require().Len(categories, 2)
	s.Equal("Criminal Defense", categories[0].Name)
	s.Equal("Family Law", categories[1].Name)
	s.Equal("criminal-defense", categories[0].Slug)
}

func (s *TaxonomyRepositoryTestSuite) TestGetEnabledCategories_Empty() {
	categories, err := s.repo.GetEnabledCategories(s.ctx, s.siteID)
	s.NoError(err)
	s.Empty(categories)
}

func (s *TaxonomyRepositoryTestSuite) TestGetEnabledCities_PopulationDescNullsLast() {
	s.NoError(testhelpers.EnableCity(s.ctx, s.testDB.DB, s.siteID, s.noPopID))
	s.NoError(testhelpers.EnableCity(s.ctx, s.testDB.DB, s.siteID, s.stPeteID))
	s.NoError(testhelpers.EnableCity(s.ctx, s.testDB.DB, s.siteID, s.tampaID))

	cities, err := s.repo.GetEnabledCities(s.ctx, s.siteID)
	s.NoError(err)
	s.Require().Len(cities, 3)
	s.Equal("Tampa", cities[0].Name)
	s.Equal("St. Petersburg", cities[1].Name)
	s.Equal("Ybor City", cities[2].Name)
	s.Nil(cities[2].Population)
}

func (s *TaxonomyRepositoryTestSuite) TestListVerticalCategories_IncludesDisabled() {
	s.NoError(testhelpers.EnableCategory(s.ctx, s.testDB.DB, s.siteID, s.familyID))

	categories, err := s.repo.ListVerticalCategories(s.ctx, s.verticalID)
	s.NoError(err)
	s.Len(categories, 2)
}

func (s *TaxonomyRepositoryTestSuite) TestListStateCities() {
	cities, err := s.repo.ListStateCities(s.ctx, s.stateID)
	s.NoError(err)
	s.Require().Len(cities, 3)
	s.Equal("Tampa", cities[0].Name)
}

func (s *TaxonomyRepositoryTestSuite) TestSetCategoryEnabled_Idempotent() {
	s.NoError(s.repo.SetCategoryEnabled(s.ctx, s.siteID, s.familyID, true))
	s.NoError(s.repo.SetCategoryEnabled(s.ctx, s.siteID, s.familyID, true))

	categories, err := s.repo.GetEnabledCategories(s.ctx, s.siteID)
	s.NoError(err)
	s.Len(categories, 1)
}

func (s *TaxonomyRepositoryTestSuite) TestSetCategoryEnabled_Disable() {
	s.NoError(s.repo.SetCategoryEnabled(s.ctx, s.siteID, s.familyID, true))
	s.NoError(s.repo.SetCategoryEnabled(s.ctx, s.siteID, s.familyID, false))

	categories, err := s.repo.GetEnabledCategories(s.ctx, s.siteID)
	s.NoError(err)
	s.Empty(categories)

	// Disabling an already-disabled category is a no-op.
	s.NoError(s.repo.SetCategoryEnabled(s.ctx, s.siteID, s.familyID, false))
}

func (s *TaxonomyRepositoryTestSuite) TestSetCityEnabled_Toggle() {
	s.NoError(s.repo.SetCityEnabled(s.ctx, s.siteID, s.tampaID, true))

	cities, err := s.repo.GetEnabledCities(s.ctx, s.siteID)
	s.NoError(err)
	s.Require().Len(cities, 1)
	s.Equal(s.tampaID, cities[0].ID)

	s.NoError(s.repo.SetCityEnabled(s.ctx, s.siteID, s.tampaID, false))

	cities, err = s.repo.GetEnabledCities(s.ctx, s.siteID)
	s.NoError(err)
	s.Empty(cities)
}

func TestTaxonomyRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TaxonomyRepositoryTestSuite))
}
