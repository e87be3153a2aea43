package labels

import (
	"store-sync/core/config"
	"store-sync/core/stores"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the labels feature.
func NewFeature(cfg config.ESLConfig, registry []stores.Store, dial Dial, logger *zap.Logger) *Feature {
	svc := NewService(cfg, registry, NewClient(cfg), NewPricingClient(cfg, logger), dial, logger)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Service exposes the underlying service for the scheduler and CLI.
func (f *Feature) Service() *Service {
	return f.service
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "labels"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
