package reconcile

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"store-sync/core/mailer"
	"store-sync/core/storage"
	"store-sync/core/stores"
	"store-sync/core/tabular"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Source is a remote file provider, satisfied by transfer.FTPClient.
type Source interface {
	Download(remotePath string, w io.Writer) error
	Close()
}

// Dial opens a session on the legacy inventory server.
type Dial func() (Source, error)

// Notifier delivers report messages, satisfied by mailer.Mailer.
type Notifier interface {
	Send(ctx context.Context, msg mailer.Message) error
}

var reportHeaders = []string{"Item Name", "Database Count", "CSV Count", "Difference"}

// Service runs the inventory reconciliation job.
type Service struct {
	db          *gorm.DB
	stores      []stores.Store
	dial        Dial
	notifier    Notifier
	archive     *storage.Archiver
	placeholder string
	logger      *zap.Logger
}

// NewService creates the reconciliation service. placeholder is the
// sentinel item name excluded from the authoritative counts.
func NewService(db *gorm.DB, registry []stores.Store, dial Dial, notifier Notifier, archive *storage.Archiver, placeholder string, logger *zap.Logger) *Service {
	return &Service{
		db:          db,
		stores:      registry,
		dial:        dial,
		notifier:    notifier,
		archive:     archive,
		placeholder: placeholder,
		logger:      logger,
	}
}

// Run reconciles every store in registry order. A failing store is logged
// and skipped; the remaining stores still run.
func (s *Service) Run(ctx context.Context) error {
	var failed []string
	for _, store := range s.stores {
		if err := s.checkStore(ctx, store); err != nil {
			s.logger.Error("Store reconciliation failed",
				zap.String("store", store.Name), zap.Error(err))
			failed = append(failed, store.Name)
		}
	}
	if len(failed) > 0 {
		return fmt.Errorf("reconciliation failed for: %s", strings.Join(failed, ", "))
	}
	return nil
}

func (s *Service) checkStore(ctx context.Context, store stores.Store) error {
	l := s.logger.With(zap.String("store", store.Name))

	dbCounts, err := s.dbQuantities(ctx, store)
	if err != nil {
		return fmt.Errorf("fetching database counts: %w", err)
	}
	l.Info("Fetched database counts", zap.Int("items", len(dbCounts)))

	snapshot, err := s.snapshotQuantities(store)
	if err != nil {
		return fmt.Errorf("fetching snapshot: %w", err)
	}
	l.Info("Fetched snapshot counts", zap.Int("items", len(snapshot)))

	comparisons := Diff(store.ID, dbCounts, snapshot)
	if len(comparisons) == 0 {
		l.Info("No discrepancies found")
		return nil
	}
	l.Info("Discrepancies found", zap.Int("count", len(comparisons)))

	return s.notify(ctx, store, comparisons)
}

// dbQuantities counts non-archived resolved locations per item name.
func (s *Service) dbQuantities(ctx context.Context, store stores.Store) (map[string]int, error) {
	var rows []struct {
		Name  string
		Count int
	}
	err := s.db.WithContext(ctx).Raw(
		`SELECT name, COUNT(name) AS count
		 FROM locations
		 WHERE name <> ? AND is_archived = 0 AND store = ?
		 GROUP BY name`,
		s.placeholder, store.ID,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Name] = row.Count
	}
	return counts, nil
}

// snapshotQuantities downloads the picker snapshot through a scratch file
// and aggregates it. The scratch file is removed on every path.
func (s *Service) snapshotQuantities(store stores.Store) (map[string]int, error) {
	src, err := s.dial()
	if err != nil {
		return nil, fmt.Errorf("connecting to inventory server: %w", err)
	}
	defer src.Close()

	var buf bytes.Buffer
	if err := src.Download("/"+store.SnapshotFile, &buf); err != nil {
		return nil, fmt.Errorf("downloading %s: %w", store.SnapshotFile, err)
	}

	scratch, err := os.CreateTemp("", "snapshot-*.csv")
	if err != nil {
		return nil, err
	}
	path := scratch.Name()
	defer os.Remove(path)

	if _, err := scratch.Write(buf.Bytes()); err != nil {
		scratch.Close()
		return nil, err
	}
	if err := scratch.Close(); err != nil {
		return nil, err
	}

	table, err := tabular.Load(path)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", store.SnapshotFile, err)
	}
	return SnapshotQuantities(table.Rows(), s.logger), nil
}

// notify writes the discrepancy report, mails it and removes the local
// copy whether or not delivery succeeded.
func (s *Service) notify(ctx context.Context, store stores.Store, comparisons []Comparison) error {
	fileName := fmt.Sprintf("inventory_discrepancies_%s_%s.csv",
		store.Name, time.Now().Format("20060102_150405"))
	path := filepath.Join(os.TempDir(), fileName)

	report := tabular.New(reportHeaders)
	for _, c := range comparisons {
		if err := report.AddRow(tabular.Row{
			"Item Name":      c.ItemName,
			"Database Count": c.DBCount,
			"CSV Count":      c.CSVCount,
			"Difference":     c.Difference,
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
		"We identified %d inventory discrepancies for %s.\n"+
			"Please review the attached CSV file for details.\n\n"+
			"Summary:\n"+
			"- Items with discrepancies: %d\n"+
			"- Store: %s\n"+
			"- Generated at: %s\n",
		len(comparisons), store.Name,
		len(comparisons), store.Name,
		time.Now().Format("2006-01-02 15:04:05"))

	err := s.notifier.Send(ctx, mailer.Message{
		To:             store.Recipient,
		Subject:        "Inventory discrepancy report - " + store.Name,
		Body:           body,
		AttachmentPath: path,
		AttachmentName: fileName,
	})
	if err != nil {
		return fmt.Errorf("sending report: %w", err)
	}

	s.logger.Info("Discrepancy report sent",
		zap.String("store", store.Name),
		zap.String("recipient", store.Recipient),
		zap.Int("discrepancies", len(comparisons)))
	return nil
}
