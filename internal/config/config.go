package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface.
type Config struct {
	Server    ServerConfig
	Backend   BackendConfig
	Sheets    SheetsConfig
	Readiness ReadinessConfig
	MongoDB   MongoDBConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// BackendConfig contains credentials and options for the production backend
// API that owns all authoritative state.
type BackendConfig struct {
	BaseURL    string
	APIVersion string
	Token      string
}

// SheetsConfig contains configuration for the harvest export spreadsheet.
type SheetsConfig struct {
	CredentialsPath string
	SpreadsheetID   string
	ExportRange     string
}

// ReadinessConfig holds settings for the daily readiness sweep.
type ReadinessConfig struct {
	CronSchedule string
	Timezone     string
}

// MongoDBConfig holds settings for the local report store.
type MongoDBConfig struct {
	URI    string
	DBName string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Ignore the returned error here; missing .env files are acceptable when
		// configuration comes from the environment directly.
		_ = godotenv.Load()
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		Backend: BackendConfig{
			BaseURL:    getenvWithDefault("BACKEND_BASE_URL", "https://api.kressgarten.example"),
			APIVersion: getenvWithDefault("BACKEND_API_VERSION", "v1"),
			Token:      os.Getenv("BACKEND_API_TOKEN"),
		},
		Sheets: SheetsConfig{
			CredentialsPath: os.Getenv("GOOGLE_SHEETS_CREDENTIALS_PATH"),
			SpreadsheetID:   os.Getenv("GOOGLE_SHEET_EXPORT_ID"),
			ExportRange:     getenvWithDefault("GOOGLE_SHEET_EXPORT_RANGE", "Harvests!A:H"),
		},
		Readiness: ReadinessConfig{
			CronSchedule: getenvWithDefault("READINESS_CRON_SCHEDULE", "0 6 * * *"),
			Timezone:     getenvWithDefault("TIMEZONE", "Europe/Berlin"),
		},
		MongoDB: MongoDBConfig{
			URI:    getenvWithDefault("MONGODB_URI", "mongodb://localhost:27017"),
			DBName: getenvWithDefault("MONGODB_DB_NAME", "growops"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	switch {
	case c.Backend.BaseURL == "":
		return errors.New("BACKEND_BASE_URL must be provided")
	case c.Backend.APIVersion == "":
		return errors.New("BACKEND_API_VERSION must not be empty")
	case c.Backend.Token == "":
		return errors.New("BACKEND_API_TOKEN must be provided")
	}

	if c.Sheets.CredentialsPath == "" {
		return errors.New("GOOGLE_SHEETS_CREDENTIALS_PATH must be provided")
	}

	if c.Sheets.SpreadsheetID == "" {
		return errors.New("GOOGLE_SHEET_EXPORT_ID must be provided")
	}

	if c.Sheets.ExportRange == "" {
		return errors.New("GOOGLE_SHEET_EXPORT_RANGE must not be empty")
	}

	if c.Readiness.CronSchedule == "" {
		return errors.New("READINESS_CRON_SCHEDULE must be provided")
	}

	if c.Readiness.Timezone == "" {
		return errors.New("TIMEZONE must be provided")
	}

	if c.MongoDB.URI == "" {
		return errors.New("MONGODB_URI must be provided")
	}

	if c.MongoDB.DBName == "" {
		return errors.New("MONGODB_DB_NAME must be provided")
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
