package labels

import (
	"store-sync/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles the manual label sync endpoints.
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
	group.Get("/price-labels", h.HandlePriceLabels)
	group.Get("/qty-labels", h.HandleQtyLabels)
}

// HandlePriceLabels runs the price-label sync for every store.
func (h *Handler) HandlePriceLabels(c *fiber.Ctx) error {
	return h.run(c, true, "Price label update completed")
}

// HandleQtyLabels runs the quantity-label sync for every store.
func (h *Handler) HandleQtyLabels(c *fiber.Ctx) error {
	return h.run(c, false, "Quantity label update completed")
}

func (h *Handler) run(c *fiber.Ctx, withPrices bool, message string) error {
	l := logger.WithRayID(h.service.logger, c)

	if err := h.service.Run(c.Context(), withPrices); err != nil {
		l.Error("Label sync failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"message": message})
}
