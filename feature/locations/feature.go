package locations

import (
	"store-sync/core/storage"
	"store-sync/core/stores"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the locations feature.
func NewFeature(db *gorm.DB, registry []stores.Store, dial DialUploader, notifier Notifier, archive *storage.Archiver, placeholder, actor, remoteDir string, logger *zap.Logger) *Feature {
	svc := NewService(db, registry, dial, notifier, archive, placeholder, actor, remoteDir, logger)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Service exposes the underlying service for the scheduler and CLI.
func (f *Feature) Service() *Service {
	return f.service
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "locations"
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
