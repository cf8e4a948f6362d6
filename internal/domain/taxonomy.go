package domain

import (
	"github.com/google/uuid"
)

// Category belongs to a vertical; a site enables a subset of its
// vertical's categories. Slug is unique within the vertical.
type Category struct {
	ID         uuid.UUID `json:"id" db:"id"`
	VerticalID uuid.UUID `json:"vertical_id" db:"vertical_id"`
	Name       string    `json:"name" db:"name"`
	Slug       string    `json:"slug" db:"slug"`
}

// City belongs to a state. Its routing slug is not stored: it is
// derived from the display name at taxonomy build time, so the Slug
// field is only populated on cities inside a Taxonomy.
type City struct {
	ID         uuid.UUID `json:"id" db:"id"`
	StateID    uuid.UUID `json:"state_id" db:"state_id"`
	Name       string    `json:"name" db:"name"`
	Population *int64    `json:"population,omitempty" db:"population"`
	Slug       string    `json:"slug,omitempty"`
}

// Taxonomy is the per-site enabled subset of categories and cities.
// The ordered slices feed menus and page rendering; the slug indexes
// feed O(1) route matching. Never persisted, always derivable from the
// enablement tables.
type Taxonomy struct {
	SiteID     uuid.UUID  `json:"site_id"`
	Categories []Category `json:"categories"` // ordered by name
	Cities     []City     `json:"cities"`     // population desc nulls last, then name

	categoryBySlug map[string]*Category
	cityBySlug     map[string]*City
}

// NewTaxonomy builds a taxonomy and its slug indexes. Slices must
// already be ordered and slugged by the caller.
func NewTaxonomy(siteID uuid.UUID, categories []Category, cities []City) *Taxonomy {
	t := &Taxonomy{SiteID: siteID, Categories: categories, Cities: cities}
	t.BuildIndex()
	return t
}

// BuildIndex rebuilds the slug lookup maps from the slices. Required
// after deserializing a cached taxonomy, since the maps do not survive
// a JSON round trip.
func (t *Taxonomy) BuildIndex() {
	t.categoryBySlug = make(map[string]*Category, len(t.Categories))
	for i := range t.Categories {
		t.categoryBySlug[t.Categories[i].Slug] = &t.Categories[i]
	}
	t.cityBySlug = make(map[string]*City, len(t.Cities))
	for i := range t.Cities {
		t.cityBySlug[t.Cities[i].Slug] = &t.Cities[i]
	}
}

// HasCategory reports slug membership in the enabled category set.
func (t *Taxonomy) HasCategory(slug string) bool {
	_, ok := t.categoryBySlug[slug]
	return ok
}

// HasCity reports slug membership in the enabled city set.
func (t *Taxonomy) HasCity(slug string) bool {
	_, ok := t.cityBySlug[slug]
	return ok
}

// CategoryBySlug returns the enabled category for slug, or nil.
func (t *Taxonomy) CategoryBySlug(slug string) *Category {
	return t.categoryBySlug[slug]
}

// CityBySlug returns the enabled city for slug, or nil.
func (t *Taxonomy) CityBySlug(slug string) *City {
	return t.cityBySlug[slug]
}

// SingleCategory returns the category when exactly one is enabled,
// otherwise nil. Canonical URLs omit the segment in that case.
func (t *Taxonomy) SingleCategory() *Category {
	if len(t.Categories) == 1 {
		return &t.Categories[0]
	}
	return nil
}

// SingleCity returns the city when exactly one is enabled, otherwise nil.
func (t *Taxonomy) SingleCity() *City {
	if len(t.Cities) == 1 {
		return &t.Cities[0]
	}
	return nil
}
