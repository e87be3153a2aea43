// Package config provides configuration management for the sync service.
//
// It utilizes Viper for loading configuration from environment variables
// and a .env file. Defaults live in struct tags next to their fields and
// are bound by reflection, so every key is visible to AutomaticEnv.
//
// The Config struct is constructed once at process start and passed into
// each component's constructor; nothing reads settings ambiently.
//
// # Configuration Structure
//
//   - Server: HTTP port, API key, deployment environment
//   - Log: level and format
//   - Database: MySQL connection details
//   - Storage: report archive bucket (optional)
//   - FTP / SFTP: file-transfer endpoints
//   - SMTP: report mail channel
//   - ESL: shelf-label API endpoints, secrets and retry tuning
//   - Jobs: placeholder sentinel and provenance actor
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
