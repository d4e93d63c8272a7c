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

const (
	// placeholderSummary is recorded when a prescription carries no diagnosis
	placeholderSummary = "Prescription generated"

	// labReportNA is recorded when a prescription carries no lab report
	labReportNA = "N/A"
)

// CreatePrescriptionInput carries the fields a doctor submits for an e-prescription
type CreatePrescriptionInput struct {
	PatientName  string
	DoctorName   string
	Medication   string
	Dosage       string
	Instructions string
	Diagnosis    string
	LabReport    string
}

// PrescriptionService owns the prescription ledger. Creating a prescription
// also appends the derived medical record; the record store has no write API
// of its own beyond seeding.
type PrescriptionService struct {
	repo repositories.PrescriptionRepository
	bus  providers.EventBus
}

// NewPrescriptionService creates a new prescription service
func NewPrescriptionService(repo repositories.PrescriptionRepository, bus providers.EventBus) *PrescriptionService {
	return &PrescriptionService{
		repo: repo,
		bus:  bus,
	}
}

// Create appends a prescription with a fresh id and Pending status together
// with its derived medical record in a single transaction
func (s *PrescriptionService) Create(ctx context.Context, actor entities.Identity, input CreatePrescriptionInput) (*entities.Prescription, error) {
	if strings.TrimSpace(input.PatientName) == "" {
		return nil, apperrors.NewValidationError("patient name is required")
	}
	if strings.TrimSpace(input.DoctorName) == "" {
		return nil, apperrors.NewValidationError("doctor name is required")
	}
	if strings.TrimSpace(input.Medication) == "" {
		return nil, apperrors.NewValidationError("medication is required")
	}

	now := time.Now()
	prescription := &entities.Prescription{
		ID:           uuid.New().String(),
		PatientName:  input.PatientName,
		DoctorName:   input.DoctorName,
		Medication:   input.Medication,
		Dosage:       input.Dosage,
		Instructions: input.Instructions,
		Diagnosis:    input.Diagnosis,
		LabReport:    input.LabReport,
		Status:       entities.PrescriptionStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	summary := strings.TrimSpace(input.Diagnosis)
	if summary == "" {
		summary = placeholderSummary
	}
	labReport := strings.TrimSpace(input.LabReport)
	if labReport == "" {
		labReport = labReportNA
	}

	record := &entities.MedicalRecord{
		ID:          uuid.New().String(),
		PatientName: input.PatientName,
		DoctorName:  input.DoctorName,
		Summary:     summary,
		LabReport:   labReport,
		Date:        now.Format(entities.MedicalRecordDateLayout),
		CreatedAt:   now,
	}

	if err := s.repo.CreateWithRecord(ctx, prescription, record); err != nil {
		return nil, err
	}

	s.publish(ctx, entities.NewClinicEvent(
		entities.ClinicEventTypePrescriptionIssued,
		prescription.ID,
		actor,
		map[string]any{"patient_name": prescription.PatientName, "medication": prescription.Medication},
	))

	return prescription, nil
}

// List returns the prescriptions visible to the actor: all of them for an
// admin or pharmacist, the patient's own for a patient. Doctors have no
// prescription listing; they only create.
func (s *PrescriptionService) List(ctx context.Context, actor entities.Identity) ([]*entities.Prescription, error) {
	prescriptions, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	switch actor.Role {
	case entities.RoleAdmin, entities.RolePharmacist:
		return prescriptions, nil
	case entities.RolePatient:
		var mine []*entities.Prescription
		for _, p := range prescriptions {
			if directory.Matches(p.PatientName, actor.Name) {
				mine = append(mine, p)
			}
		}
		return mine, nil
	}
	return nil, apperrors.NewForbiddenError(fmt.Sprintf("role %q has no prescription view", actor.Role))
}

// SetStatus overwrites the dispensing status of a prescription. Any defined
// status may follow any other; there is no transition graph.
func (s *PrescriptionService) SetStatus(ctx context.Context, actor entities.Identity, id, status string) (*entities.Prescription, error) {
	parsed, ok := entities.ParsePrescriptionStatus(status)
	if !ok {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown prescription status %q", status))
	}

	if err := s.repo.UpdateStatus(ctx, id, parsed); err != nil {
		return nil, err
	}

	prescription, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, entities.NewClinicEvent(
		entities.ClinicEventTypePrescriptionStatus,
		prescription.ID,
		actor,
		map[string]any{"status": string(prescription.Status)},
	))

	return prescription, nil
}

func (s *PrescriptionService) publish(ctx context.Context, event *entities.ClinicEvent) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, providers.EventChannelPrescriptions, event); err != nil {
		observability.LoggerFromContext(ctx).Warn().Err(err).
			Str("event_id", event.ID).
			Msg("failed to publish prescription event")
	}
}
