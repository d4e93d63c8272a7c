package repositories

import (
	"context"

	"github.com/omshealth/medcore/internal/domain/entities"
)

// AppointmentRepository defines the interface for appointment ledger operations
type AppointmentRepository interface {
	// Create appends a new appointment to the ledger
	Create(ctx context.Context, appointment *entities.Appointment) error

	// GetByID retrieves an appointment by ID
	GetByID(ctx context.Context, id string) (*entities.Appointment, error)

	// UpdateStatus overwrites the status of an appointment
	UpdateStatus(ctx context.Context, id string, status entities.AppointmentStatus) error

	// List retrieves every appointment in creation order
	List(ctx context.Context) ([]*entities.Appointment, error)
}
