package database_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/omshealth/medcore/internal/infrastructure/clients/sqlite"
	"github.com/omshealth/medcore/pkg/config"
)

// newTestClient opens a fresh in-memory database with the ledger schema applied
func newTestClient(t *testing.T) *sqlite.Client {
	t.Helper()

	client, err := sqlite.NewClient(&config.StorageConfig{DSN: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	require.NoError(t, client.Migrate(context.Background()))
	return client
}
