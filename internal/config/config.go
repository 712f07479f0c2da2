package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	GinMode          string
	Database         DatabaseConfig
	Upload           UploadConfig
	S3               S3Config
	Auth             AuthConfig
	ExportSigningKey string
}

type DatabaseConfig struct {
	URL string
}

type UploadConfig struct {
	Dir     string
	BaseURL string
}

type S3Config struct {
	Endpoint  string
	Region    string
	Bucket    string
	KeyID     string
	AccessKey string
	Timeout   string
}

type AuthConfig struct {
	// Secret enables the single-owner token gate when non-empty.
	Secret string
}

func Load() (*Config, error) {
	godotenv.Load()

	return &Config{
		Port:    getEnv("PORT", "8080"),
		GinMode: getEnv("GIN_MODE", "debug"),
		Database: DatabaseConfig{
			URL: getEnv("DATABASE_URL", ""),
		},
		Upload: UploadConfig{
			Dir:     getEnv("UPLOAD_DIR", "uploads"),
			BaseURL: getEnv("UPLOAD_BASE_URL", "/uploads"),
		},
		S3: S3Config{
			Endpoint:  getEnv("S3_ENDPOINT", ""),
			Region:    getEnv("S3_REGION", ""),
			Bucket:    getEnv("S3_BUCKET", ""),
			KeyID:     getEnv("S3_KEY_ID", ""),
			AccessKey: getEnv("S3_ACCESS_KEY", ""),
			Timeout:   getEnv("S3_TIMEOUT", "30s"),
		},
		Auth: AuthConfig{
			Secret: getEnv("AUTH_SECRET", ""),
		},
		ExportSigningKey: getEnv("EXPORT_SIGNING_KEY", ""),
	}, nil
}

// Configured reports whether every field needed to talk to S3 is set.
func (c S3Config) Configured() bool {
	return c.Endpoint != "" && c.Region != "" && c.Bucket != "" &&
		c.KeyID != "" && c.AccessKey != ""
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
