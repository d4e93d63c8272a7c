package config

import (
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	Service ServiceConfig
	Storage StorageConfig
	Clinic  ClinicConfig
}

// ServiceConfig holds service identification configuration
type ServiceConfig struct {
	Name     string
	Env      string
	LogLevel string
}

// StorageConfig holds embedded database configuration
type StorageConfig struct {
	// DSN is the SQLite data source name. The default keeps the ledgers
	// in memory so nothing survives the process.
	DSN string
}

// ClinicConfig holds clinical workflow configuration
type ClinicConfig struct {
	// DemoDoctor is the fallback doctor name matched in doctor appointment
	// listings so a demo login always has visible data.
	DemoDoctor string

	// SeedRecords controls whether the demo medical record is inserted at startup.
	SeedRecords bool
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	return &Config{
		Service: ServiceConfig{
			Name:     getEnv("SERVICE_NAME", "medcore"),
			Env:      getEnv("APP_ENV", "development"),
			LogLevel: getEnv("LOG_LEVEL", "info"),
		},
		Storage: StorageConfig{
			DSN: getEnv("STORAGE_DSN", ":memory:"),
		},
		Clinic: ClinicConfig{
			DemoDoctor:  getEnv("CLINIC_DEMO_DOCTOR", "Dr. Mehta"),
			SeedRecords: getEnvAsBool("CLINIC_SEED_RECORDS", true),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
