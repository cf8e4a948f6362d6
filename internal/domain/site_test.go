package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/directory-platform/internal/domain"
)

func TestSite_Labels(t *testing.T) {
	site := &domain.Site{
		Vertical: domain.Vertical{
			Terminology: domain.Terminology{
				CategorySingular: "practice area",
				CategoryPlural:   "practice areas",
				BusinessSingular: "law firm",
				BusinessPlural:   "law firms",
				CallToAction:     "Request a consultation",
			},
		},
	}

	t.Run("no overrides uses vertical defaults", func(t *testing.T) {
		labels := site.Labels()
		assert.Equal(t, "law firms", labels.BusinessPlural)
		assert.Equal(t, "Request a consultation", labels.CallToAction)
	})

	t.Run("set overrides win field by field", func(t *testing.T) {
		s := *site
		s.Overrides = domain.Terminology{
			BusinessPlural: "attorneys",
			CallToAction:   "Call now",
		}

		labels := s.Labels()
		assert.Equal(t, "attorneys", labels.BusinessPlural)
		assert.Equal(t, "Call now", labels.CallToAction)
		// Untouched fields keep the vertical defaults.
		assert.Equal(t, "practice area", labels.CategorySingular)
		assert.Equal(t, "law firm", labels.BusinessSingular)
	})
}

func TestAdminSite(t *testing.T) {
	assert.True(t, domain.AdminSite.IsAdmin)
	assert.Equal(t, "admin", domain.AdminSite.Name)
}
