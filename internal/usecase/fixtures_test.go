package usecase_test

import (
	"github.com/google/uuid"

	"github.com/directory-platform/internal/domain"
)

func ptrInt64(v int64) *int64 { return &v }

func ptrFloat64(v float64) *float64 { return &v }

// testSite is a lawyers-in-Florida tenant used across the route tests.
func testSite() *domain.Site {
	return &domain.Site{
		ID:     uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		Name:   "Florida Lawyers Directory",
		Domain: "floridalawyers.example.com",
		Vertical: domain.Vertical{
			ID:   uuid.MustParse("22222222-2222-2222-2222-222222222222"),
			Name: "Lawyers",
			Slug: "lawyers",
			Terminology: domain.Terminology{
				CategorySingular: "practice area",
				CategoryPlural:   "practice areas",
				BusinessSingular: "law firm",
				BusinessPlural:   "law firms",
				CallToAction:     "Request a consultation",
			},
		},
		State: domain.State{
			ID:   uuid.MustParse("33333333-3333-3333-3333-333333333333"),
			Code: "FL",
			Name: "Florida",
		},
	}
}

func testCategories() []domain.Category {
	verticalID := uuid.MustParse("22222222-2222-2222-2222-222222222222")
	return []domain.Category{
		{ID: uuid.MustParse("44444444-4444-4444-4444-444444444441"), VerticalID: verticalID, Name: "Criminal Defense", Slug: "criminal-defense"},
		{ID: uuid.MustParse("44444444-4444-4444-4444-444444444442"), VerticalID: verticalID, Name: "Family Law", Slug: "family-law"},
	}
}

func testCities() []domain.City {
	stateID := uuid.MustParse("33333333-3333-3333-3333-333333333333")
	return []domain.City{
		{ID: uuid.MustParse("55555555-5555-5555-5555-555555555551"), StateID: stateID, Name: "Tampa", Population: ptrInt64(398173), Slug: "tampa"},
		{ID: uuid.MustParse("55555555-5555-5555-5555-555555555552"), StateID: stateID, Name: "St. Petersburg", Population: ptrInt64(261256), Slug: "st-petersburg"},
	}
}

func testTaxonomy() *domain.Taxonomy {
	return domain.NewTaxonomy(testSite().ID, testCategories(), testCities())
}
