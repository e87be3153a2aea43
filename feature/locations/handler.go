package locations

import (
	"store-sync/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles the manual location maintenance endpoints.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the manual trigger routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/manual")
	group.Get("/resolve-unknown", h.HandleResolveUnknown)
	group.Get("/export-locations", h.HandleExportLocations)
}

// HandleResolveUnknown resolves placeholder locations and reports leftovers.
func (h *Handler) HandleResolveUnknown(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	if err := h.service.RunResolve(c.Context()); err != nil {
		l.Error("Unknown location resolution failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"message": "Unknown location resolution completed"})
}

// HandleExportLocations exports every store's locations to the backup NAS.
func (h *Handler) HandleExportLocations(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	if err := h.service.RunExport(c.Context()); err != nil {
		l.Error("Location export failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"message": "Location export completed"})
}
