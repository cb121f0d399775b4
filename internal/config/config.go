package config

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"
)

// Storage drivers accepted in STORAGE_DRIVER.
const (
	DriverS3    = "s3"
	DriverMinio = "minio"
	DriverGCS   = "gcs"
)

type S3Config struct {
	Endpoint        string `envconfig:"S3_ENDPOINT"`
	AccountID       string `envconfig:"S3_ACCOUNT_ID"`
	AccessKeyID     string `envconfig:"S3_ACCESS_KEY_ID"`
	SecretAccessKey string `envconfig:"S3_SECRET_ACCESS_KEY"`
	Region          string `envconfig:"S3_REGION" default:"auto"`
}

type MinioConfig struct {
	Endpoint  string `envconfig:"MINIO_ENDPOINT"`
	AccessKey string `envconfig:"MINIO_ACCESS_KEY"`
	SecretKey string `envconfig:"MINIO_SECRET_KEY"`
	UseSSL    bool   `envconfig:"MINIO_USE_SSL" default:"false"`
}

type GCSConfig struct {
	CredentialsFile string `envconfig:"GCS_CREDENTIALS_FILE"`
	Endpoint        string `envconfig:"GCS_ENDPOINT"`
}

type StorageConfig struct {
	Driver        string `envconfig:"STORAGE_DRIVER" default:"s3"`
	BucketID      string `envconfig:"BUCKET_ID" required:"true"`
	PublicBaseURL string `envconfig:"STORAGE_PUBLIC_BASE_URL"`
	ProjectID     string `envconfig:"PROJECT_ID"`
	S3            S3Config
	Minio         MinioConfig
	GCS           GCSConfig
}

type DocumentsConfig struct {
	DatabaseID   string `envconfig:"DATABASE_ID" default:"main"`
	CollectionID string `envconfig:"FILES_COLLECTION_ID" default:"files"`
}

type UploadConfig struct {
	MaxMemory      int64 `envconfig:"UPLOAD_MAX_MEMORY" default:"33554432"` // 32 MiB
	CleanupOrphans bool  `envconfig:"UPLOAD_CLEANUP_ORPHANS" default:"true"`
}

type Config struct {
	DB_URL         string   `envconfig:"DB_URL" required:"true"`
	Port           string   `envconfig:"PORT" default:"8080"`
	Environment    string   `envconfig:"ENV" default:"development"`
	LogLevel       string   `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat      string   `envconfig:"LOG_FORMAT" default:"console"`
	AllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:5173"`
	Storage        StorageConfig
	Documents      DocumentsConfig
	Upload         UploadConfig
}

// Load reads ENV_FILE (default .env) when present, then the process environment.
func Load() (*Config, error) {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Debug().Str("env_file", envFile).Msg("no env file found")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the settings the selected storage driver depends on.
func (c *Config) Validate() error {
	if c.Storage.BucketID == "" {
		return errors.New("BUCKET_ID must not be empty")
	}
	switch strings.ToLower(c.Storage.Driver) {
	case DriverS3:
		s3 := c.Storage.S3
		if s3.Endpoint == "" && s3.AccountID == "" {
			return errors.New("S3_ENDPOINT or S3_ACCOUNT_ID is required for the s3 driver")
		}
		if s3.AccessKeyID == "" || s3.SecretAccessKey == "" {
			return errors.New("S3_ACCESS_KEY_ID and S3_SECRET_ACCESS_KEY are required for the s3 driver")
		}
	case DriverMinio:
		if c.Storage.Minio.Endpoint == "" {
			return errors.New("MINIO_ENDPOINT is required for the minio driver")
		}
	case DriverGCS:
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.Storage.Driver)
	}
	if c.Documents.CollectionID == "" {
		return errors.New("FILES_COLLECTION_ID must not be empty")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) CorsOptions() cors.Options {
	return cors.Options{
		AllowedOrigins:   c.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}
}
