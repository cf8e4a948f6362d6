package domain

import (
	"time"

	"github.com/google/uuid"
)

// State is the geography a site serves. Cities reference a state;
// the site's vertical routes are scoped to it.
type State struct {
	ID   uuid.UUID `json:"id" db:"id"`
	Code string    `json:"code" db:"code"`
	Name string    `json:"name" db:"name"`
}

// Terminology holds the display labels a site uses for its catalog.
// Vertical carries the defaults; a site may override any field.
type Terminology struct {
	CategorySingular string `json:"category_singular" db:"category_singular"`
	CategoryPlural   string `json:"category_plural" db:"category_plural"`
	BusinessSingular string `json:"business_singular" db:"business_singular"`
	BusinessPlural   string `json:"business_plural" db:"business_plural"`
	CallToAction     string `json:"call_to_action" db:"call_to_action"`
}

// Vertical is an industry owning the base path segment for all
// directory routes of the sites under it. Slug is stable once
// published: changing it invalidates every directory URL.
type Vertical struct {
	ID          uuid.UUID   `json:"id" db:"id"`
	Name        string      `json:"name" db:"name"`
	Slug        string      `json:"slug" db:"slug"`
	Terminology Terminology `json:"terminology"`
}

// Site is one independently branded directory instance bound to a
// single lowercase domain.
type Site struct {
	ID        uuid.UUID   `json:"id" db:"id"`
	Name      string      `json:"name" db:"name"`
	Domain    string      `json:"domain" db:"domain"`
	Vertical  Vertical    `json:"vertical"`
	State     State       `json:"state"`
	Overrides Terminology `json:"overrides"`
	IsAdmin   bool        `json:"-"`
	CreatedAt time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt time.Time   `json:"updated_at" db:"updated_at"`
}

// AdminSite is the pseudo-site served on the reserved admin host.
// It bypasses the directory route grammar entirely.
var AdminSite = &Site{Name: "admin", IsAdmin: true}

// Labels returns the effective terminology: site overrides where set,
// vertical defaults otherwise.
func (s *Site) Labels() Terminology {
	t := s.Vertical.Terminology
	if s.Overrides.CategorySingular != "" {
		t.CategorySingular = s.Overrides.CategorySingular
	}
	if s.Overrides.CategoryPlural != "" {
		t.CategoryPlural = s.Overrides.CategoryPlural
	}
	if s.Overrides.BusinessSingular != "" {
		t.BusinessSingular = s.Overrides.BusinessSingular
	}
	if s.Overrides.BusinessPlural != "" {
		t.BusinessPlural = s.Overrides.BusinessPlural
	}
	if s.Overrides.CallToAction != "" {
		t.CallToAction = s.Overrides.CallToAction
	}
	return t
}
