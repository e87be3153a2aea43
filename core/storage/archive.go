package storage

import (
	"context"
	"fmt"
	"os"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Archiver copies generated report files into the archive bucket before
// the local scratch copy is removed. A nil *Archiver is valid and archives
// nothing, so callers don't branch on whether archival is enabled.
type Archiver struct {
	client Client
	bucket string
	region string
	logger *zap.Logger
}

// NewArchiver creates an archiver writing into bucket.
func NewArchiver(client Client, cfg Config, logger *zap.Logger) *Archiver {
	return &Archiver{client: client, bucket: cfg.Bucket, region: cfg.Region, logger: logger}
}

// Archive uploads the file at localPath under objectName, creating the
// bucket on first use. Archival is best-effort from the caller's point of
// view: the report email is the primary delivery channel.
func (a *Archiver) Archive(ctx context.Context, localPath, objectName string) error {
	if a == nil {
		return nil
	}

	exists, err := a.client.BucketExists(ctx, a.bucket)
	if err != nil {
		return fmt.Errorf("check bucket %q: %w", a.bucket, err)
	}
	if !exists {
		if err := a.client.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{Region: a.region}); err != nil {
			return fmt.Errorf("create bucket %q: %w", a.bucket, err)
		}
		a.logger.Info("Created report archive bucket", zap.String("bucket", a.bucket))
	}

	f, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("open report %q: %w", localPath, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat report %q: %w", localPath, err)
	}

	_, err = a.client.PutObject(ctx, a.bucket, objectName, f, info.Size(), minio.PutObjectOptions{
		ContentType: "text/csv",
	})
	if err != nil {
		return fmt.Errorf("archive %q: %w", objectName, err)
	}

	a.logger.Info("Report archived",
		zap.String("bucket", a.bucket),
		zap.String("object", objectName),
	)
	return nil
}
