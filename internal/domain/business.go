package domain

import (
	"time"

	"github.com/google/uuid"
)

// Business is one directory listing, scoped to a site and positioned
// in its taxonomy by category and city.
type Business struct {
	ID         uuid.UUID `json:"id" db:"id"`
	SiteID     uuid.UUID `json:"site_id" db:"site_id"`
	CategoryID uuid.UUID `json:"category_id" db:"category_id"`
	CityID     uuid.UUID `json:"city_id" db:"city_id"`
	Name       string    `json:"name" db:"name"`
	Address    string    `json:"address" db:"address"`
	Phone      string    `json:"phone" db:"phone"`
	Website    string    `json:"website" db:"website"`
	Rating     *float64  `json:"rating,omitempty" db:"rating"`
	// PlaceRef is the external places API identifier used for
	// import dedup.
	PlaceRef  string    `json:"place_ref" db:"place_ref"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// BusinessFilter narrows listing queries. Zero-valued fields are
// ignored by the repository.
type BusinessFilter struct {
	SiteID     uuid.UUID
	CategoryID uuid.UUID
	CityID     uuid.UUID
	Limit      int
	Offset     int
}

// Place is one result from the external places API, before it is
// attached to a site's taxonomy.
type Place struct {
	Ref     string   `json:"ref"`
	Name    string   `json:"name"`
	Address string   `json:"address"`
	Phone   string   `json:"phone"`
	Website string   `json:"website"`
	Rating  *float64 `json:"rating,omitempty"`
}

// BusinessDocument is the flattened shape pushed to the search index.
type BusinessDocument struct {
	ID       uuid.UUID `json:"id"`
	SiteID   uuid.UUID `json:"site_id"`
	Name     string    `json:"name"`
	Category string    `json:"category"`
	City     string    `json:"city"`
	Address  string    `json:"address"`
	Rating   *float64  `json:"rating,omitempty"`
}
