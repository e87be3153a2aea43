package cmd

import (
	"fmt"

	"store-sync/core/config"
	"store-sync/core/database"
	"store-sync/core/logger"
	"store-sync/core/mailer"
	"store-sync/core/storage"
	"store-sync/core/stores"
	"store-sync/core/transfer"
	"store-sync/feature/labels"
	"store-sync/feature/locations"
	"store-sync/feature/reconcile"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// app holds the wired components shared by the server and the one-shot
// job commands.
type app struct {
	cfg       *config.Config
	logger    *zap.Logger
	db        *gorm.DB
	labels    *labels.Feature
	reconcile *reconcile.Feature
	locations *locations.Feature
}

// buildApp loads configuration and wires every feature. The database is
// required: all but the quantity jobs read or mutate it.
func buildApp() (*app, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("initializing logger: %w", err)
	}
	zap.ReplaceGlobals(logg)

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	var archive *storage.Archiver
	if cfg.Storage.Enabled {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("creating storage client: %w", err)
		}
		archive = storage.NewArchiver(client, cfg.Storage, logg)
	}

	mail := mailer.New(cfg.SMTP)
	registry := stores.Registry(cfg.Server.IsProduction(), cfg.SMTP.Recipient)

	ftpDial := func() (*transfer.FTPClient, error) {
		client := transfer.NewFTPClient(cfg.FTP)
		if err := client.Connect(); err != nil {
			return nil, err
		}
		return client, nil
	}
	nasDial := func() (locations.Uploader, error) {
		client := transfer.NewSFTPClient(cfg.SFTP)
		if err := client.Connect(); err != nil {
			return nil, err
		}
		return client, nil
	}

	return &app{
		cfg:    cfg,
		logger: logg,
		db:     db,
		labels: labels.NewFeature(cfg.ESL, registry, func() (labels.Source, error) {
			return ftpDial()
		}, logg),
		reconcile: reconcile.NewFeature(db, registry, func() (reconcile.Source, error) {
			return ftpDial()
		}, mail, archive, cfg.Jobs.Placeholder, logg),
		locations: locations.NewFeature(db, registry, nasDial, mail, archive,
			cfg.Jobs.Placeholder, cfg.Jobs.Actor, cfg.SFTP.RemoteDir, logg),
	}, nil
}
