package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/directory-platform/internal/pkg/utils"
	"github.com/directory-platform/internal/usecase"
	"github.com/directory-platform/internal/usecase/dto"
)

// ImportHandler enqueues places import jobs for a site.
type ImportHandler struct {
	importUC *usecase.ImportUseCase
	logger   *zap.Logger
}

func NewImportHandler(importUC *usecase.ImportUseCase, logger *zap.Logger) *ImportHandler {
	return &ImportHandler{
		importUC: importUC,
		logger:   logger,
	}
}

// EnqueueImport godoc
// @Summary Queue listing imports for a site
// @Description Publishes one import job per enabled (category, city) pair to the places import stream
// @Tags Import
// @Produce json
// @Param id path string true "Site ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sites/{id}/import [post]
func (h *ImportHandler) EnqueueImport(c *fiber.Ctx) error {
	siteID, err := parseUUIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	queued, err := h.importUC.EnqueueSiteImport(c.Context(), siteID)
	if err != nil {
		h.logger.Error("Failed to enqueue import",
			zap.String("site_id", siteID.String()),
			zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.EnqueueImportResponse{
		SiteID:     siteID,
		JobsQueued: queued,
	}, nil)
}
