package dto

import (
	"github.com/google/uuid"

	"github.com/directory-platform/internal/domain"
)

// SiteInfo is the tenant branding block every page carries.
type SiteInfo struct {
	ID           uuid.UUID          `json:"id"`
	Name         string             `json:"name"`
	Domain       string             `json:"domain"`
	VerticalSlug string             `json:"vertical_slug"`
	StateCode    string             `json:"state_code"`
	StateName    string             `json:"state_name"`
	Labels       domain.Terminology `json:"labels"`
}

// CategoryLink is a navigable category entry.
type CategoryLink struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
	URL  string `json:"url"`
}

// CityLink is a navigable city entry.
type CityLink struct {
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	URL        string `json:"url"`
	Population *int64 `json:"population,omitempty"`
}

// BusinessView is one listing as shown on catalog pages.
type BusinessView struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Address string    `json:"address"`
	Phone   string    `json:"phone"`
	Website string    `json:"website"`
	Rating  *float64  `json:"rating,omitempty"`
	URL     string    `json:"url"`
}

// Pagination describes a listing window.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// Page is the typed payload handed to the rendering collaborator.
// Which fields are populated depends on Kind.
type Page struct {
	Kind        string         `json:"kind"`
	Site        SiteInfo       `json:"site"`
	Title       string         `json:"title"`
	Category    *CategoryLink  `json:"category,omitempty"`
	City        *CityLink      `json:"city,omitempty"`
	ArticleSlug string         `json:"article_slug,omitempty"`
	Categories  []CategoryLink `json:"categories,omitempty"`
	Cities      []CityLink     `json:"cities,omitempty"`
	Businesses  []BusinessView `json:"businesses,omitempty"`
	Business    *BusinessView  `json:"business,omitempty"`
	Pagination  *Pagination    `json:"pagination,omitempty"`
}
