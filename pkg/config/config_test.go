package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_ClinicConfig(t *testing.T) {
	// Setup environment variables
	os.Setenv("CLINIC_DEMO_DOCTOR", "Dr. Rao")
	os.Setenv("CLINIC_SEED_RECORDS", "false")
	defer func() {
		os.Unsetenv("CLINIC_DEMO_DOCTOR")
		os.Unsetenv("CLINIC_SEED_RECORDS")
	}()

	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, "Dr. Rao", cfg.Clinic.DemoDoctor)
	assert.False(t, cfg.Clinic.SeedRecords)
}

func TestLoad_Defaults(t *testing.T) {
	// Ensure env vars are cleared
	os.Unsetenv("CLINIC_DEMO_DOCTOR")
	os.Unsetenv("CLINIC_SEED_RECORDS")
	os.Unsetenv("STORAGE_DSN")

	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, "medcore", cfg.Service.Name)
	assert.Equal(t, "development", cfg.Service.Env)
	assert.Equal(t, "info", cfg.Service.LogLevel)
	assert.Equal(t, ":memory:", cfg.Storage.DSN)
	assert.Equal(t, "Dr. Mehta", cfg.Clinic.DemoDoctor)
	assert.True(t, cfg.Clinic.SeedRecords)
}

func TestLoad_StorageDSN(t *testing.T) {
	os.Setenv("STORAGE_DSN", "file:clinic.db")
	defer os.Unsetenv("STORAGE_DSN")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, "file:clinic.db", cfg.Storage.DSN)
}
