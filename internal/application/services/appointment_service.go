package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/omshealth/medcore/internal/domain/directory"
	"github.com/omshealth/medcore/internal/domain/entities"
	"github.com/omshealth/medcore/internal/domain/providers"
	"github.com/omshealth/medcore/internal/domain/repositories"
	"github.com/omshealth/medcore/internal/infrastructure/observability"
	apperrors "github.com/omshealth/medcore/pkg/errors"
)

// BookAppointmentInput carries the fields a patient submits when booking
type BookAppointmentInput struct {
	PatientName string
	DoctorName  string
	Date        string
	Time        string
	Reason      string
}

// AppointmentService owns the appointment ledger
type AppointmentService struct {
	repo repositories.AppointmentRepository
	bus  providers.EventBus

	// demoDoctor is matched in doctor listings alongside the doctor's own
	// name so a demo login always has visible appointments. Deliberate
	// behavior carried over from the source system; do not remove.
	demoDoctor string
}

// NewAppointmentService creates a new appointment service
func NewAppointmentService(repo repositories.AppointmentRepository, bus providers.EventBus, demoDoctor string) *AppointmentService {
	return &AppointmentService{
		repo:       repo,
		bus:        bus,
		demoDoctor: demoDoctor,
	}
}

// Book appends a new appointment with a fresh id and Pending status
func (s *AppointmentService) Book(ctx context.Context, actor entities.Identity, input BookAppointmentInput) (*entities.Appointment, error) {
	if strings.TrimSpace(input.PatientName) == "" {
		return nil, apperrors.NewValidationError("patient name is required")
	}
	if strings.TrimSpace(input.DoctorName) == "" {
		return nil, apperrors.NewValidationError("doctor name is required")
	}

	now := time.Now()
	appointment := &entities.Appointment{
		ID:          uuid.New().String(),
		PatientName: input.PatientName,
		DoctorName:  input.DoctorName,
		Date:        input.Date,
		Time:        input.Time,
		Reason:      input.Reason,
		Status:      entities.AppointmentStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, appointment); err != nil {
		return nil, err
	}

	s.publish(ctx, entities.NewClinicEvent(
		entities.ClinicEventTypeAppointmentBooked,
		appointment.ID,
		actor,
		map[string]any{"doctor_name": appointment.DoctorName, "date": appointment.Date},
	))

	return appointment, nil
}

// List returns the appointments visible to the actor: all of them for an
// admin, the doctor's own (or the demo fallback doctor's) for a doctor, and
// the patient's own for a patient.
func (s *AppointmentService) List(ctx context.Context, actor entities.Identity) ([]*entities.Appointment, error) {
	appointments, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	switch actor.Role {
	case entities.RoleAdmin:
		return appointments, nil
	case entities.RoleDoctor:
		var mine []*entities.Appointment
		for _, a := range appointments {
			if directory.Matches(a.DoctorName, actor.Name) || directory.Matches(a.DoctorName, s.demoDoctor) {
				mine = append(mine, a)
			}
		}
		return mine, nil
	case entities.RolePatient:
		var mine []*entities.Appointment
		for _, a := range appointments {
			if directory.Matches(a.PatientName, actor.Name) {
				mine = append(mine, a)
			}
		}
		return mine, nil
	}
	return nil, apperrors.NewForbiddenError(fmt.Sprintf("role %q has no appointment view", actor.Role))
}

// SetStatus overwrites the status of an appointment. Any defined status may
// follow any other; there is no transition graph.
func (s *AppointmentService) SetStatus(ctx context.Context, actor entities.Identity, id, status string) (*entities.Appointment, error) {
	parsed, ok := entities.ParseAppointmentStatus(status)
	if !ok {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown appointment status %q", status))
	}

	if err := s.repo.UpdateStatus(ctx, id, parsed); err != nil {
		return nil, err
	}

	appointment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, entities.NewClinicEvent(
		entities.ClinicEventTypeAppointmentStatus,
		appointment.ID,
		actor,
		map[string]any{"status": string(appointment.Status)},
	))

	return appointment, nil
}

func (s *AppointmentService) publish(ctx context.Context, event *entities.ClinicEvent) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, providers.EventChannelAppointments, event); err != nil {
		observability.LoggerFromContext(ctx).Warn().Err(err).
			Str("event_id", event.ID).
			Msg("failed to publish appointment event")
	}
}
