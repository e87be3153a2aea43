package reconcile

import (
	"store-sync/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles the manual reconciliation endpoint.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the manual trigger route.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Group("/manual").Get("/reconcile", h.HandleReconcile)
}

// HandleReconcile runs the inventory reconciliation for every store.
func (h *Handler) HandleReconcile(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	if err := h.service.Run(c.Context()); err != nil {
		l.Error("Reconciliation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"message": "Inventory reconciliation completed"})
}
