package locations

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"store-sync/core/mailer"
	"store-sync/core/storage"
	"store-sync/core/stores"
	"store-sync/core/tabular"
	"store-sync/feature/locations/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Notifier delivers report messages, satisfied by mailer.Mailer.
type Notifier interface {
	Send(ctx context.Context, msg mailer.Message) error
}

var unknownHeaders = []string{"UPC", "Location Name", "Full Location"}

// unresolved is one UPC still carrying the placeholder name, with every
// shelf position it occupies concatenated.
type unresolved struct {
	UPC       string
	Locations string
}

// Service runs the location resolution and export jobs.
type Service struct {
	db          *gorm.DB
	stores      []stores.Store
	dial        DialUploader
	notifier    Notifier
	archive     *storage.Archiver
	placeholder string
	actor       string
	remoteDir   string
	logger      *zap.Logger
}

// NewService creates the locations service. placeholder is the sentinel
// location name, actor the provenance stamped on automated updates and
// remoteDir the backup root on the NAS.
func NewService(db *gorm.DB, registry []stores.Store, dial DialUploader, notifier Notifier, archive *storage.Archiver, placeholder, actor, remoteDir string, logger *zap.Logger) *Service {
	return &Service{
		db:          db,
		stores:      registry,
		dial:        dial,
		notifier:    notifier,
		archive:     archive,
		placeholder: placeholder,
		actor:       actor,
		remoteDir:   remoteDir,
		logger:      logger,
	}
}

// RunResolve resolves placeholder locations against the catalog, then
// reports whatever is left. No remaining placeholders means no mail.
func (s *Service) RunResolve(ctx context.Context) error {
	updated, err := s.resolveFromCatalog(ctx)
	if err != nil {
		return fmt.Errorf("resolving placeholder locations: %w", err)
	}
	s.logger.Info("Resolved placeholder locations", zap.Int("rows", updated))

	remaining, err := s.remainingUnknown(ctx)
	if err != nil {
		return fmt.Errorf("listing remaining placeholders: %w", err)
	}
	if len(remaining) == 0 {
		s.logger.Info("No placeholder locations remain")
		return nil
	}
	s.logger.Info("Placeholder locations remain", zap.Int("upcs", len(remaining)))

	return s.sendUnknownReport(ctx, remaining)
}

// resolveFromCatalog matches placeholder UPCs against the catalog and
// renames every matching location row. Each UPC commits on its own, so an
// interrupted run loses at most one code and a re-run is a no-op for the
// codes already done.
func (s *Service) resolveFromCatalog(ctx context.Context) (int, error) {
	var upcs []string
	err := s.db.WithContext(ctx).Model(&models.Location{}).
		Where("name = ? AND is_archived = 0", s.placeholder).
		Distinct().
		Pluck("upc", &upcs).Error
	if err != nil {
		return 0, err
	}
	if len(upcs) == 0 {
		return 0, nil
	}

	var items []models.CatalogItem
	err = s.db.WithContext(ctx).
		Where("upc IN ?", upcs).
		Find(&items).Error
	if err != nil {
		return 0, err
	}

	total := 0
	for _, item := range items {
		result := s.db.WithContext(ctx).Model(&models.Location{}).
			Where("upc = ? AND name = ? AND is_archived = 0", item.UPC, s.placeholder).
			Updates(map[string]any{
				"name":       item.Item,
				"updated_by": s.actor,
				"updated_at": time.Now(),
			})
		if result.Error != nil {
			return total, fmt.Errorf("updating upc %s: %w", item.UPC, result.Error)
		}
		total += int(result.RowsAffected)
	}
	return total, nil
}

// remainingUnknown groups the placeholder rows left after resolution by
// UPC, with every shelf position concatenated.
func (s *Service) remainingUnknown(ctx context.Context) ([]unresolved, error) {
	var rows []unresolved
	err := s.db.WithContext(ctx).Raw(
		`SELECT upc, GROUP_CONCAT(full_location) AS locations
		 FROM locations
		 WHERE name = ? AND is_archived = 0
		 GROUP BY upc
		 ORDER BY upc`,
		s.placeholder,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// sendUnknownReport mails the remaining placeholders to the primary store
// contact and removes the local report on every path.
func (s *Service) sendUnknownReport(ctx context.Context, remaining []unresolved) error {
	fileName := fmt.Sprintf("unknown_locations_%s.csv", time.Now().Format("20060102_150405"))
	path := filepath.Join(os.TempDir(), fileName)

	report := tabular.New(unknownHeaders)
	for _, r := range remaining {
		if err := report.AddRow(tabular.Row{
			"UPC":           r.UPC,
			"Location Name": s.placeholder,
			"Full Location": r.Locations,
		}); err != nil {
			return err
		}
	}
	if err := report.Save(path); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	defer os.Remove(path)

	if err := s.archive.Archive(ctx, path, fileName); err != nil {
		s.logger.Warn("Report archive failed", zap.Error(err))
	}

	body := fmt.Sprintf(
		"Attached is the report of unresolved location codes.\n"+
			"Total unresolved UPCs: %d\n",
		len(remaining))

	err := s.notifier.Send(ctx, mailer.Message{
		To:             s.stores[0].Recipient,
		Subject:        "Unknown locations report",
		Body:           body,
		AttachmentPath: path,
		AttachmentName: fileName,
	})
	if err != nil {
		return fmt.Errorf("sending report: %w", err)
	}

	s.logger.Info("Unknown locations report sent",
		zap.String("recipient", s.stores[0].Recipient),
		zap.Int("upcs", len(remaining)))
	return nil
}
