package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/directory-platform/internal/pkg/errors"
	"github.com/directory-platform/internal/pkg/utils"
	"github.com/directory-platform/internal/pkg/validator"
	"github.com/directory-platform/internal/usecase"
	"github.com/directory-platform/internal/usecase/dto"
)

// SiteHandler exposes site administration: tenant CRUD and the
// per-site category and city enablement toggles.
type SiteHandler struct {
	adminUC *usecase.AdminUseCase
	logger  *zap.Logger
}

func NewSiteHandler(adminUC *usecase.AdminUseCase, logger *zap.Logger) *SiteHandler {
	return &SiteHandler{
		adminUC: adminUC,
		logger:  logger,
	}
}

// ListSites godoc
// @Summary List all sites
// @Tags Sites
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/sites [get]
func (h *SiteHandler) ListSites(c *fiber.Ctx) error {
	sites, err := h.adminUC.ListSites(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, sites, &utils.Meta{Total: len(sites)})
}

// GetSite godoc
// @Summary Get one site
// @Tags Sites
// @Produce json
// @Param id path string true "Site ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sites/{id} [get]
func (h *SiteHandler) GetSite(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	site, err := h.adminUC.GetSite(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, site, nil)
}

// CreateSite godoc
// @Summary Register a new tenant site
// @Tags Sites
// @Accept json
// @Produce json
// @Param request body dto.CreateSiteRequest true "Site definition"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/sites [post]
func (h *SiteHandler) CreateSite(c *fiber.Ctx) error {
	var req dto.CreateSiteRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithReason(err.Error()))
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithReason(err.Error()))
	}

	site, err := h.adminUC.CreateSite(c.Context(), &req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, site, nil)
}

// SetCategoryEnabled godoc
// @Summary Enable or disable a category for a site
// @Tags Sites
// @Accept json
// @Produce json
// @Param id path string true "Site ID"
// @Param category_id path string true "Category ID"
// @Param request body dto.ToggleEnablementRequest true "Desired state"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/sites/{id}/categories/{category_id} [put]
func (h *SiteHandler) SetCategoryEnabled(c *fiber.Ctx) error {
	siteID, err := parseUUIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}
	categoryID, err := parseUUIDParam(c, "category_id")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.ToggleEnablementRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithReason(err.Error()))
	}

	if err := h.adminUC.SetCategoryEnabled(c.Context(), siteID, categoryID, req.Enabled); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, fiber.Map{"enabled": req.Enabled}, nil)
}

// SetCityEnabled godoc
// @Summary Enable or disable a city for a site
// @Tags Sites
// @Accept json
// @Produce json
// @Param id path string true "Site ID"
// @Param city_id path string true "City ID"
// @Param request body dto.ToggleEnablementRequest true "Desired state"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/sites/{id}/cities/{city_id} [put]
func (h *SiteHandler) SetCityEnabled(c *fiber.Ctx) error {
	siteID, err := parseUUIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}
	cityID, err := parseUUIDParam(c, "city_id")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.ToggleEnablementRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithReason(err.Error()))
	}

	if err := h.adminUC.SetCityEnabled(c.Context(), siteID, cityID, req.Enabled); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, fiber.Map{"enabled": req.Enabled}, nil)
}

// ListVerticalCategories godoc
// @Summary List the full category catalog of a vertical
// @Tags Catalog
// @Produce json
// @Param id path string true "Vertical ID"
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/verticals/{id}/categories [get]
func (h *SiteHandler) ListVerticalCategories(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	categories, err := h.adminUC.ListVerticalCategories(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, categories, &utils.Meta{Total: len(categories)})
}

// ListStateCities godoc
// @Summary List the full city catalog of a state
// @Tags Catalog
// @Produce json
// @Param id path string true "State ID"
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/states/{id}/cities [get]
func (h *SiteHandler) ListStateCities(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	cities, err := h.adminUC.ListStateCities(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, cities, &utils.Meta{Total: len(cities)})
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, errors.ErrInvalidRequest.WithReason(name + " must be a valid UUID")
	}
	return id, nil
}
