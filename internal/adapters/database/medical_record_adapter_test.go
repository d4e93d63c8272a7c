package database_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omshealth/medcore/internal/adapters/database"
)

func TestMedicalRecordAdapter_CreateAndList(t *testing.T) {
	ctx := context.Background()
	records := database.NewMedicalRecordAdapter(newTestClient(t))

	require.NoError(t, records.Create(ctx, testRecord("r1")))

	stored, err := records.List(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "Asha", stored[0].PatientName)
	assert.Equal(t, "CBC normal", stored[0].LabReport)
	assert.Equal(t, "2025-01-01", stored[0].Date)
}

func TestSeedDemoRecords(t *testing.T) {
	ctx := context.Background()
	records := database.NewMedicalRecordAdapter(newTestClient(t))

	require.NoError(t, database.SeedDemoRecords(ctx, records))

	stored, err := records.List(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "Rohit", stored[0].PatientName)
	assert.Equal(t, "Dr. Mehta", stored[0].DoctorName)
	assert.Equal(t, "2025-11-10", stored[0].Date)
	assert.NotEmpty(t, stored[0].ID)
}
