package locations

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"store-sync/core/mailer"
	"store-sync/core/stores"
	"store-sync/core/tabular"
	"store-sync/feature/locations/models"

	"go.uber.org/zap"
)

// Uploader pushes files to the backup NAS, satisfied by transfer.SFTPClient.
type Uploader interface {
	Upload(localPath, remotePath string) error
	Close()
}

// DialUploader opens a session on the backup NAS.
type DialUploader func() (Uploader, error)

var exportHeaders = []string{
	"id", "upc", "name", "store", "level", "row", "side", "column",
	"shelf", "bin", "full_location", "updated_by", "updated_at",
	"created_by", "created_at", "is_archived",
}

// RunExport dumps each store's live locations to CSV, uploads the file to
// the NAS and mails a copy. Per-store failures are logged and skipped.
func (s *Service) RunExport(ctx context.Context) error {
	var failed []string
	for _, store := range s.stores {
		if err := s.exportStore(ctx, store); err != nil {
			s.logger.Error("Store export failed",
				zap.String("store", store.Name), zap.Error(err))
			failed = append(failed, store.Name)
		}
	}
	if len(failed) > 0 {
		return fmt.Errorf("location export failed for: %s", strings.Join(failed, ", "))
	}
	return nil
}

func (s *Service) exportStore(ctx context.Context, store stores.Store) error {
	l := s.logger.With(zap.String("store", store.Name))

	var locs []models.Location
	err := s.db.WithContext(ctx).
		Where("store = ? AND is_archived = 0", store.ID).
		Find(&locs).Error
	if err != nil {
		return fmt.Errorf("fetching locations: %w", err)
	}
	if len(locs) == 0 {
		l.Info("No locations to export")
		return nil
	}

	fileName := fmt.Sprintf("store_%d_locations_%s.csv",
		store.ID, time.Now().Format("20060102_150405"))
	localPath := filepath.Join(os.TempDir(), fileName)

	export := tabular.New(exportHeaders)
	skipped := 0
	for _, loc := range locs {
		if missing := missingRequired(loc); len(missing) > 0 {
			l.Warn("Skipping location with missing fields",
				zap.Int("id", loc.ID),
				zap.Strings("missing", missing))
			skipped++
			continue
		}
		if err := export.AddRow(exportRow(loc)); err != nil {
			return err
		}
	}
	if err := export.Save(localPath); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	defer os.Remove(localPath)

	l.Info("Export written",
		zap.Int("rows", export.Len()),
		zap.Int("skipped", skipped))

	if err := s.upload(localPath, path.Join(s.remoteDir, store.Name, fileName)); err != nil {
		return err
	}

	body := fmt.Sprintf(
		"Attached are the shelf locations for store %s.\n\n"+
			"- Date: %s\n"+
			"- Store: %d\n",
		store.Name, time.Now().Format("2006-01-02 15:04:05"), store.ID)

	err = s.notifier.Send(ctx, mailer.Message{
		To:             store.Recipient,
		Subject:        "Inventory backup for " + store.Name,
		Body:           body,
		AttachmentPath: localPath,
		AttachmentName: fileName,
	})
	if err != nil {
		return fmt.Errorf("sending backup: %w", err)
	}

	l.Info("Location export delivered",
		zap.String("recipient", store.Recipient),
		zap.String("file", fileName))
	return nil
}

func (s *Service) upload(localPath, remotePath string) error {
	nas, err := s.dial()
	if err != nil {
		return fmt.Errorf("connecting to backup server: %w", err)
	}
	defer nas.Close()

	if err := nas.Upload(localPath, remotePath); err != nil {
		return fmt.Errorf("uploading %s: %w", remotePath, err)
	}
	return nil
}

// requiredFields are the location attributes a backup row cannot miss.
// UPC and name are informational and may be blank.
var requiredFields = []string{"store", "level", "row", "side", "column", "shelf", "bin", "full_location"}

func missingRequired(loc models.Location) []string {
	values := map[string]string{
		"store":         loc.Store,
		"level":         loc.Level,
		"row":           loc.Row,
		"side":          loc.Side,
		"column":        loc.Column,
		"shelf":         loc.Shelf,
		"bin":           loc.Bin,
		"full_location": loc.FullLocation,
	}
	var missing []string
	for _, field := range requiredFields {
		if values[field] == "" {
			missing = append(missing, field)
		}
	}
	return missing
}

func exportRow(loc models.Location) tabular.Row {
	return tabular.Row{
		"id":            loc.ID,
		"upc":           loc.UPC,
		"name":          loc.Name,
		"store":         loc.Store,
		"level":         loc.Level,
		"row":           loc.Row,
		"side":          loc.Side,
		"column":        loc.Column,
		"shelf":         loc.Shelf,
		"bin":           loc.Bin,
		"full_location": loc.FullLocation,
		"updated_by":    loc.UpdatedBy,
		"updated_at":    loc.UpdatedAt.Format("2006-01-02 15:04:05"),
		"created_by":    loc.CreatedBy,
		"created_at":    loc.CreatedAt.Format("2006-01-02 15:04:05"),
		"is_archived":   loc.IsArchived,
	}
}
