package labels

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"store-sync/core/config"
	"store-sync/core/faults"
	"store-sync/core/stores"
	"store-sync/core/tabular"
	"store-sync/core/transform"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

// Source is a remote file provider, satisfied by transfer.FTPClient.
type Source interface {
	Download(remotePath string, w io.Writer) error
	Close()
}

// Dial opens a session on the legacy inventory server.
type Dial func() (Source, error)

// wireKeys maps CSV columns to the label API field names.
func wireKeys(withPrices bool) map[string]string {
	mapping := map[string]string{
		"Part Number":      "pi",
		"Part Description": "pn",
		"Value":            "kc",
		"UPC Code":         "pc",
	}
	if withPrices {
		mapping["Price"] = "pp"
	}
	return mapping
}

// Service runs the label synchronization jobs.
type Service struct {
	cfg     config.ESLConfig
	stores  []stores.Store
	client  *Client
	pricing *PricingClient
	dial    Dial
	logger  *zap.Logger
}

// NewService creates the label sync service.
func NewService(cfg config.ESLConfig, registry []stores.Store, client *Client, pricing *PricingClient, dial Dial, logger *zap.Logger) *Service {
	return &Service{
		cfg:     cfg,
		stores:  registry,
		client:  client,
		pricing: pricing,
		dial:    dial,
		logger:  logger,
	}
}

// Run synchronizes shelf labels for every store in registry order.
// withPrices selects the price-label variant; otherwise only quantities
// are pushed. Per-store failures are collected, not fatal.
func (s *Service) Run(ctx context.Context, withPrices bool) error {
	src, err := s.dial()
	if err != nil {
		return fmt.Errorf("connecting to inventory server: %w", err)
	}
	defer src.Close()

	var failed []string
	for _, store := range s.stores {
		l := s.logger.With(zap.String("store", store.Name))

		table, err := s.fetchTable(store.LabelFile, src)
		if err != nil {
			l.Error("Label file fetch failed", zap.Error(err))
			failed = append(failed, store.LabelFile)
			continue
		}

		if err := s.pushStore(ctx, store, table.Rows(), withPrices, l); err != nil {
			l.Error("Label sync incomplete", zap.Error(err))
			failed = append(failed, store.LabelFile)
		}
	}

	if len(failed) > 0 {
		return fmt.Errorf("label sync failed for: %s", strings.Join(failed, ", "))
	}
	return nil
}

// fetchTable downloads a label CSV through a scratch file and parses it.
// Transfer errors are retried with the shared backoff policy; an empty
// file is not.
func (s *Service) fetchTable(fileName string, src Source) (*tabular.Table, error) {
	var table *tabular.Table

	attempt := func() error {
		var buf bytes.Buffer
		if err := src.Download("/"+fileName, &buf); err != nil {
			return fmt.Errorf("downloading %s: %w", fileName, err)
		}

		scratch, err := os.CreateTemp("", "labels-*.csv")
		if err != nil {
			return backoff.Permanent(err)
		}
		path := scratch.Name()
		defer os.Remove(path)

		if _, err := scratch.Write(buf.Bytes()); err != nil {
			scratch.Close()
			return backoff.Permanent(err)
		}
		if err := scratch.Close(); err != nil {
			return backoff.Permanent(err)
		}

		parsed, err := tabular.Load(path)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", fileName, err)
		}
		if parsed.Len() == 0 {
			return backoff.Permanent(faults.Validation("no rows in %s", fileName))
		}
		table = parsed
		return nil
	}

	if err := backoff.Retry(attempt, s.newBackOff()); err != nil {
		return nil, err
	}
	return table, nil
}

func (s *Service) pushStore(ctx context.Context, store stores.Store, rows []tabular.Row, withPrices bool, l *zap.Logger) error {
	batches := Partition(rows, s.cfg.BatchSize)
	l.Info("Submitting label batches",
		zap.Int("rows", len(rows)),
		zap.Int("batches", len(batches)),
		zap.Bool("with_prices", withPrices))

	failures := 0
	for i, batch := range batches {
		if err := s.pushBatch(ctx, store.Code, batch, withPrices); err != nil {
			l.Error("Batch failed", zap.Int("batch", i+1), zap.Error(err))
			failures++
		}
		time.Sleep(time.Duration(s.cfg.BatchDelaySeconds) * time.Second)
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d batches failed", failures, len(batches))
	}
	return nil
}

// pushBatch prepares and submits one batch. A pricing failure fails the
// whole batch; no partially priced payload is ever sent. The submission
// payload stays identical across retry attempts.
func (s *Service) pushBatch(ctx context.Context, storeCode string, batch []tabular.Row, withPrices bool) error {
	rows := batch
	if withPrices {
		priced, err := s.pricing.Lookup(ctx, batch)
		if err != nil {
			return fmt.Errorf("pricing lookup: %w", err)
		}
		rows = transform.MergeSecondary(batch, priced, partCodeKey)
	}

	products := transform.RemapKeys(transform.CleanMissing(rows), wireKeys(withPrices))
	if len(products) == 0 {
		return faults.Validation("no products in batch")
	}

	attempt := func() error {
		return s.client.Submit(ctx, storeCode, products)
	}
	return backoff.Retry(attempt, s.newBackOff())
}

// newBackOff builds the shared retry policy: max_retries attempts total,
// delays doubling from initial_delay with no jitter.
func (s *Service) newBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = time.Duration(s.cfg.InitialDelaySeconds) * time.Second
	b.RandomizationFactor = 0
	b.Multiplier = 2
	b.MaxElapsedTime = 0

	retries := s.cfg.MaxRetries - 1
	if retries < 0 {
		retries = 0
	}
	return backoff.WithMaxRetries(b, uint64(retries))
}
