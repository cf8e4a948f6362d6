package middleware

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/directory-platform/internal/domain"
	"github.com/directory-platform/internal/pkg/utils"
	"github.com/directory-platform/internal/usecase"
)

const siteLocalsKey = "tenant.site"

// Tenant resolves the request host to a site exactly once per request
// and stores it in locals. Unknown hosts never reach a handler.
func Tenant(resolveUC *usecase.ResolveUseCase, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		site, err := resolveUC.Resolve(c.Context(), c.Hostname())
		if err != nil {
			logger.Warn("Host resolution failed",
				zap.String("host", c.Hostname()),
				zap.Error(err))
			return utils.SendError(c, err)
		}

		c.Locals(siteLocalsKey, site)
		return c.Next()
	}
}

// SiteFromCtx returns the site stored by Tenant, or nil when the
// middleware did not run.
func SiteFromCtx(c *fiber.Ctx) *domain.Site {
	site, _ := c.Locals(siteLocalsKey).(*domain.Site)
	return site
}
