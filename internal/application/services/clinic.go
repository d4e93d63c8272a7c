package services

import (
	"context"

	"github.com/omshealth/medcore/internal/domain/entities"
	"github.com/omshealth/medcore/internal/infrastructure/observability"
)

// Clinic is the single entry point presentation code calls into. Every
// role-checked operation authorizes the acting identity against the role
// policy before touching a ledger, so a failed call has no side effects.
type Clinic struct {
	sessions      *SessionService
	appointments  *AppointmentService
	prescriptions *PrescriptionService
	records       *RecordService
}

// NewClinic creates the clinic facade
func NewClinic(
	sessions *SessionService,
	appointments *AppointmentService,
	prescriptions *PrescriptionService,
	records *RecordService,
) *Clinic {
	return &Clinic{
		sessions:      sessions,
		appointments:  appointments,
		prescriptions: prescriptions,
		records:       records,
	}
}

// ClinicStats summarizes ledger sizes for the admin dashboard
type ClinicStats struct {
	TotalAppointments  int `json:"total_appointments"`
	TotalPrescriptions int `json:"total_prescriptions"`
}

// Login replaces the active identity; see SessionService.Login
func (c *Clinic) Login(ctx context.Context, role, name string) (entities.Identity, error) {
	return c.sessions.Login(ctx, role, name)
}

// Logout resets the active identity
func (c *Clinic) Logout(ctx context.Context) {
	c.sessions.Logout(ctx)
}

// Current returns the active identity
func (c *Clinic) Current() entities.Identity {
	return c.sessions.Current()
}

// BookAppointment books an appointment on behalf of a patient
func (c *Clinic) BookAppointment(ctx context.Context, actor entities.Identity, input BookAppointmentInput) (*entities.Appointment, error) {
	if err := Authorize(actor, OpBookAppointment); err != nil {
		return nil, err
	}
	appointment, err := c.appointments.Book(ctx, actor, input)
	if err != nil {
		return nil, err
	}
	observability.LoggerFromContext(ctx).Info().
		Str("appointment_id", appointment.ID).
		Str("patient_name", appointment.PatientName).
		Str("doctor_name", appointment.DoctorName).
		Msg("appointment booked")
	return appointment, nil
}

// ListAppointments returns the appointments visible to the actor
func (c *Clinic) ListAppointments(ctx context.Context, actor entities.Identity) ([]*entities.Appointment, error) {
	if err := Authorize(actor, OpListAppointments); err != nil {
		return nil, err
	}
	return c.appointments.List(ctx, actor)
}

// SetAppointmentStatus overwrites an appointment's status on behalf of an admin
func (c *Clinic) SetAppointmentStatus(ctx context.Context, actor entities.Identity, id, status string) (*entities.Appointment, error) {
	if err := Authorize(actor, OpSetAppointmentStatus); err != nil {
		return nil, err
	}
	appointment, err := c.appointments.SetStatus(ctx, actor, id, status)
	if err != nil {
		return nil, err
	}
	observability.LoggerFromContext(ctx).Info().
		Str("appointment_id", appointment.ID).
		Str("status", string(appointment.Status)).
		Msg("appointment status updated")
	return appointment, nil
}

// CreatePrescription issues an e-prescription (and its derived medical
// record) on behalf of a doctor
func (c *Clinic) CreatePrescription(ctx context.Context, actor entities.Identity, input CreatePrescriptionInput) (*entities.Prescription, error) {
	if err := Authorize(actor, OpCreatePrescription); err != nil {
		return nil, err
	}
	prescription, err := c.prescriptions.Create(ctx, actor, input)
	if err != nil {
		return nil, err
	}
	observability.LoggerFromContext(ctx).Info().
		Str("prescription_id", prescription.ID).
		Str("patient_name", prescription.PatientName).
		Str("medication", prescription.Medication).
		Msg("prescription issued")
	return prescription, nil
}

// ListPrescriptions returns the prescriptions visible to the actor
func (c *Clinic) ListPrescriptions(ctx context.Context, actor entities.Identity) ([]*entities.Prescription, error) {
	if err := Authorize(actor, OpListPrescriptions); err != nil {
		return nil, err
	}
	return c.prescriptions.List(ctx, actor)
}

// SetPrescriptionStatus overwrites a prescription's dispensing status on
// behalf of a pharmacist
func (c *Clinic) SetPrescriptionStatus(ctx context.Context, actor entities.Identity, id, status string) (*entities.Prescription, error) {
	if err := Authorize(actor, OpSetPrescriptionStatus); err != nil {
		return nil, err
	}
	prescription, err := c.prescriptions.SetStatus(ctx, actor, id, status)
	if err != nil {
		return nil, err
	}
	observability.LoggerFromContext(ctx).Info().
		Str("prescription_id", prescription.ID).
		Str("status", string(prescription.Status)).
		Msg("prescription status updated")
	return prescription, nil
}

// ListRecords returns the medical records visible to the actor
func (c *Clinic) ListRecords(ctx context.Context, actor entities.Identity) ([]*entities.MedicalRecord, error) {
	if err := Authorize(actor, OpListRecords); err != nil {
		return nil, err
	}
	return c.records.List(ctx, actor)
}

// Stats returns ledger totals for the admin dashboard
func (c *Clinic) Stats(ctx context.Context, actor entities.Identity) (*ClinicStats, error) {
	if err := Authorize(actor, OpViewStats); err != nil {
		return nil, err
	}

	appointments, err := c.appointments.List(ctx, actor)
	if err != nil {
		return nil, err
	}
	prescriptions, err := c.prescriptions.List(ctx, actor)
	if err != nil {
		return nil, err
	}

	return &ClinicStats{
		TotalAppointments:  len(appointments),
		TotalPrescriptions: len(prescriptions),
	}, nil
}
