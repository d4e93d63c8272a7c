package entities

import (
	"time"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "Pending"
	AppointmentStatusApproved  AppointmentStatus = "Approved"
	AppointmentStatusCancelled AppointmentStatus = "Cancelled"
)

// ParseAppointmentStatus parses a status string into one of the three
// defined appointment statuses
func ParseAppointmentStatus(value string) (AppointmentStatus, bool) {
	switch AppointmentStatus(value) {
	case AppointmentStatusPending:
		return AppointmentStatusPending, true
	case AppointmentStatusApproved:
		return AppointmentStatusApproved, true
	case AppointmentStatusCancelled:
		return AppointmentStatusCancelled, true
	}
	return "", false
}

// Appointment represents a booked virtual appointment.
// Only Status is ever mutated after creation; any status value may follow
// any other, gated by role rather than by a transition graph.
type Appointment struct {
	ID          string            `json:"id" db:"id"`
	PatientName string            `json:"patient_name" db:"patient_name"`
	DoctorName  string            `json:"doctor_name" db:"doctor_name"`
	Date        string            `json:"date" db:"date"`
	Time        string            `json:"time" db:"time"`
	Reason      string            `json:"reason" db:"reason"`
	Status      AppointmentStatus `json:"status" db:"status"`
	CreatedAt   time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at" db:"updated_at"`
}
