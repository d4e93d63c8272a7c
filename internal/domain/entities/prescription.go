package entities

import (
	"time"
)

// PrescriptionStatus represents the dispensing status of an e-prescription
type PrescriptionStatus string

const (
	PrescriptionStatusPending   PrescriptionStatus = "Pending"
	PrescriptionStatusReady     PrescriptionStatus = "Ready"
	PrescriptionStatusDispensed PrescriptionStatus = "Dispensed"
)

// ParsePrescriptionStatus parses a status string into one of the three
// defined prescription statuses
func ParsePrescriptionStatus(value string) (PrescriptionStatus, bool) {
	switch PrescriptionStatus(value) {
	case PrescriptionStatusPending:
		return PrescriptionStatusPending, true
	case PrescriptionStatusReady:
		return PrescriptionStatusReady, true
	case PrescriptionStatusDispensed:
		return PrescriptionStatusDispensed, true
	}
	return "", false
}

// Prescription represents an e-prescription issued by a doctor.
// Creating one always appends a derived MedicalRecord in the same
// transaction; only Status is mutated afterwards.
type Prescription struct {
	ID           string             `json:"id" db:"id"`
	PatientName  string             `json:"patient_name" db:"patient_name"`
	DoctorName   string             `json:"doctor_name" db:"doctor_name"`
	Medication   string             `json:"medication" db:"medication"`
	Dosage       string             `json:"dosage" db:"dosage"`
	Instructions string             `json:"instructions" db:"instructions"`
	Diagnosis    string             `json:"diagnosis" db:"diagnosis"`
	LabReport    string             `json:"lab_report" db:"lab_report"`
	Status       PrescriptionStatus `json:"status" db:"status"`
	CreatedAt    time.Time          `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at" db:"updated_at"`
}
