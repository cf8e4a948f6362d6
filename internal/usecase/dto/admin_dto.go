package dto

import (
	"github.com/google/uuid"

	"github.com/directory-platform/internal/domain"
)

// CreateSiteRequest registers one new tenant site.
type CreateSiteRequest struct {
	Name       string    `json:"name" validate:"required,min=2"`
	Domain     string    `json:"domain" validate:"required,fqdn"`
	VerticalID uuid.UUID `json:"vertical_id" validate:"required"`
	StateID    uuid.UUID `json:"state_id" validate:"required"`

	CategorySingular string `json:"category_singular,omitempty"`
	CategoryPlural   string `json:"category_plural,omitempty"`
	BusinessSingular string `json:"business_singular,omitempty"`
	BusinessPlural   string `json:"business_plural,omitempty"`
	CallToAction     string `json:"call_to_action,omitempty"`
}

// Overrides collects the optional terminology fields.
func (r *CreateSiteRequest) Overrides() domain.Terminology {
	return domain.Terminology{
		CategorySingular: r.CategorySingular,
		CategoryPlural:   r.CategoryPlural,
		BusinessSingular: r.BusinessSingular,
		BusinessPlural:   r.BusinessPlural,
		CallToAction:     r.CallToAction,
	}
}

// ToggleEnablementRequest enables or disables one taxonomy entry for a site.
type ToggleEnablementRequest struct {
	Enabled bool `json:"enabled"`
}

// EnqueueImportResponse reports how many jobs were queued.
type EnqueueImportResponse struct {
	SiteID     uuid.UUID `json:"site_id"`
	JobsQueued int       `json:"jobs_queued"`
}
