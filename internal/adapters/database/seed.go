package database

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/omshealth/medcore/internal/domain/entities"
	"github.com/omshealth/medcore/internal/domain/repositories"
)

// SeedDemoRecords inserts the demo medical record the system ships with so a
// freshly started process has visible clinical data.
func SeedDemoRecords(ctx context.Context, repo repositories.MedicalRecordRepository) error {
	seed := &entities.MedicalRecord{
		ID:          uuid.New().String(),
		PatientName: "Rohit",
		DoctorName:  "Dr. Mehta",
		Summary:     "Follow-up for fever. Stable.",
		LabReport:   "CBC normal. CRP slightly elevated.",
		Date:        "2025-11-10",
		CreatedAt:   time.Now(),
	}
	return repo.Create(ctx, seed)
}
