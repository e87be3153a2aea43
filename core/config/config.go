package config

import (
	"reflect"
	"strings"

	"store-sync/core/database"
	"store-sync/core/logger"
	"store-sync/core/mailer"
	"store-sync/core/storage"
	"store-sync/core/transfer"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment names accepted by server.env.
const (
	EnvLocal       = "local"
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// ServerConfig holds configuration for the HTTP server.
type ServerConfig struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the manual endpoints.
	ApiKey string `mapstructure:"api_key" default:""`
	// Env is the deployment environment (local, development, production).
	// Scheduled jobs only run in production.
	Env string `mapstructure:"env" default:"local"`
}

// IsProduction reports whether the scheduler should run.
func (c ServerConfig) IsProduction() bool {
	return c.Env == EnvProduction
}

// ESLConfig holds configuration for the electronic-shelf-label API.
type ESLConfig struct {
	// SubmitURL is the label creation endpoint.
	SubmitURL string `mapstructure:"submit_url" default:""`
	// PriceURL is the base URL of the pricing API; /getPrices is appended.
	PriceURL string `mapstructure:"price_url" default:""`
	// Sign is the shared signing secret carried in every payload.
	Sign string `mapstructure:"sign" default:""`
	// Device is the fixed device signature carried in every payload.
	Device string `mapstructure:"device" default:"40:d6:3c:5e:11:63"`
	// BatchSize is the maximum number of items per submission.
	BatchSize int `mapstructure:"batch_size" default:"1000"`
	// MaxRetries is the retry budget per batch and per file fetch.
	MaxRetries int `mapstructure:"max_retries" default:"3"`
	// InitialDelaySeconds is the first backoff delay; it doubles per attempt.
	InitialDelaySeconds int `mapstructure:"initial_delay_seconds" default:"5"`
	// BatchDelaySeconds is the fixed pause between batches.
	BatchDelaySeconds int `mapstructure:"batch_delay_seconds" default:"1"`
	// SubmitTimeoutSeconds bounds one label submission call.
	SubmitTimeoutSeconds int `mapstructure:"submit_timeout_seconds" default:"30"`
	// PriceTimeoutSeconds bounds one pricing API call.
	PriceTimeoutSeconds int `mapstructure:"price_timeout_seconds" default:"60"`
}

// JobsConfig holds cross-job settings.
type JobsConfig struct {
	// Placeholder is the sentinel name marking an unresolved location.
	Placeholder string `mapstructure:"placeholder" default:"unknown"`
	// Actor is the provenance value stamped on automated updates.
	Actor string `mapstructure:"actor" default:"system"`
}

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server ServerConfig `mapstructure:"server"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the database connection.
	Database database.Config `mapstructure:"database"`
	// Storage holds configuration for the report archive.
	Storage storage.Config `mapstructure:"storage"`
	// FTP holds configuration for the legacy inventory FTP server.
	FTP transfer.FTPConfig `mapstructure:"ftp"`
	// SFTP holds configuration for the backup NAS.
	SFTP transfer.SFTPConfig `mapstructure:"sftp"`
	// SMTP holds configuration for the report mail channel.
	SMTP mailer.Config `mapstructure:"smtp"`
	// ESL holds configuration for the shelf-label API.
	ESL ESLConfig `mapstructure:"esl"`
	// Jobs holds cross-job settings.
	Jobs JobsConfig `mapstructure:"jobs"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	// Load .env if present; ignore a missing file (e.g. production).
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values.
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. ESL_BATCH_SIZE -> esl.batch_size).
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default
// values in Viper based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set the default (even if empty) to register the key
		// for AutomaticEnv.
		v.SetDefault(key, defaultValue)
	}
}
