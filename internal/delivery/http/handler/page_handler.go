package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/directory-platform/internal/delivery/http/middleware"
	"github.com/directory-platform/internal/pkg/errors"
	"github.com/directory-platform/internal/pkg/utils"
	"github.com/directory-platform/internal/usecase"
)

// PageHandler serves every tenant-facing page. One handler covers the
// whole URL space because the route grammar, not the router, decides
// what a path means for the resolved site.
type PageHandler struct {
	taxonomyUC *usecase.TaxonomyUseCase
	pageUC     *usecase.PageUseCase
	logger     *zap.Logger
}

func NewPageHandler(
	taxonomyUC *usecase.TaxonomyUseCase,
	pageUC *usecase.PageUseCase,
	logger *zap.Logger,
) *PageHandler {
	return &PageHandler{
		taxonomyUC: taxonomyUC,
		pageUC:     pageUC,
		logger:     logger,
	}
}

// RenderPage godoc
// @Summary Render a tenant page
// @Description Resolves the request path against the site's taxonomy and returns the typed page payload
// @Tags Pages
// @Produce json
// @Param page query int false "Listing page number" default(1)
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /{path} [get]
func (h *PageHandler) RenderPage(c *fiber.Ctx) error {
	ctx := c.Context()

	site := middleware.SiteFromCtx(c)
	if site == nil || site.IsAdmin {
		// Tenant page URLs have no meaning on the admin host.
		return utils.SendError(c, errors.ErrRouteNotFound)
	}

	tax, err := h.taxonomyUC.Load(ctx, site.ID)
	if err != nil {
		h.logger.Error("Failed to load taxonomy",
			zap.String("site_id", site.ID.String()),
			zap.Error(err))
		return utils.SendError(c, err)
	}

	segments := usecase.SplitPath(c.Path())
	route := usecase.ParseRoute(site, segments, tax)
	if route == nil {
		return utils.SendError(c, errors.ErrRouteNotFound)
	}

	target, err := usecase.Dispatch(site, tax, route)
	if err != nil {
		h.logger.Error("Dispatch failed",
			zap.String("site_id", site.ID.String()),
			zap.String("path", c.Path()),
			zap.Error(err))
		return utils.SendError(c, err)
	}

	payload, err := h.pageUC.Render(ctx, site, tax, target, c.QueryInt("page", 1))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, payload, nil)
}
