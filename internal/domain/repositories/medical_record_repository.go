package repositories

import (
	"context"

	"github.com/omshealth/medcore/internal/domain/entities"
)

// MedicalRecordRepository defines the interface for the append-only record store.
// There is no update or delete: records exist only as clinical byproducts of
// prescriptions plus optional seed data, so Create is reserved for the
// prescription cascade and seeding.
type MedicalRecordRepository interface {
	// Create appends a medical record
	Create(ctx context.Context, record *entities.MedicalRecord) error

	// List retrieves every medical record in creation order
	List(ctx context.Context) ([]*entities.MedicalRecord, error)
}
