package entities

import (
	"time"
)

// MedicalRecordDateLayout is the calendar-day format records carry
const MedicalRecordDateLayout = "2006-01-02"

// MedicalRecord represents a clinical summary for a patient.
// Records are append-only: they are written as a byproduct of prescription
// creation (or as seed data) and never mutated or deleted.
type MedicalRecord struct {
	ID          string    `json:"id" db:"id"`
	PatientName string    `json:"patient_name" db:"patient_name"`
	DoctorName  string    `json:"doctor_name" db:"doctor_name"`
	Summary     string    `json:"summary" db:"summary"`
	LabReport   string    `json:"lab_report" db:"lab_report"`
	Date        string    `json:"date" db:"date"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
