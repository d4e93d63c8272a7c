package repositories

import (
	"context"

	"github.com/omshealth/medcore/internal/domain/entities"
)

// PrescriptionRepository defines the interface for prescription ledger operations
type PrescriptionRepository interface {
	// CreateWithRecord appends a prescription and its derived medical record
	// in one transaction. A reader must never observe one without the other.
	CreateWithRecord(ctx context.Context, prescription *entities.Prescription, record *entities.MedicalRecord) error

	// GetByID retrieves a prescription by ID
	GetByID(ctx context.Context, id string) (*entities.Prescription, error)

	// UpdateStatus overwrites the status of a prescription
	UpdateStatus(ctx context.Context, id string, status entities.PrescriptionStatus) error

	// List retrieves every prescription in creation order
	List(ctx context.Context) ([]*entities.Prescription, error)
}
