package archive

import (
	"scan-verifier/core/logger"
	"scan-verifier/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the report archive.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the archive routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/archive")
	group.Get("/", h.HandleList)
	group.Get("/schema", h.HandleSchema)
}

// HandleList lists archived sessions and stored reports.
// @Summary List Archive
// @Description Lists archived session summaries (newest first) and report files in the archive bucket.
// @Tags archive
// @Produce json
// @Param limit query int false "Maximum number of sessions" default(50)
// @Success 200 {object} Listing "Archive Listing"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /archive [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	limit := utils.ToIntDefault(c.Query("limit"), 50)

	listing, err := h.service.List(c.Context(), limit)
	if err != nil {
		l.Error("Archive listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(listing)
}

// HandleSchema verifies the archive tables.
// @Summary Verify Archive Schema
// @Description Compares the archive tables with the expected columns and types.
// @Tags archive
// @Produce json
// @Success 200 {object} SchemaReport "Schema Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /archive/schema [get]
func (h *Handler) HandleSchema(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.Verify()
	if err != nil {
		l.Error("Archive schema check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}
