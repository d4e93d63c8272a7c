package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omshealth/medcore/internal/adapters/database"
	"github.com/omshealth/medcore/internal/adapters/events"
	"github.com/omshealth/medcore/internal/application/services"
	"github.com/omshealth/medcore/internal/domain/entities"
	"github.com/omshealth/medcore/internal/domain/providers"
	"github.com/omshealth/medcore/internal/infrastructure/clients/sqlite"
	"github.com/omshealth/medcore/pkg/config"
	apperrors "github.com/omshealth/medcore/pkg/errors"
)

// newTestClinic wires the facade against a real in-memory database, the way
// the demo binary does.
func newTestClinic(t *testing.T) (*services.Clinic, providers.EventBus) {
	t.Helper()

	client, err := sqlite.NewClient(&config.StorageConfig{DSN: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	require.NoError(t, client.Migrate(context.Background()))

	bus := events.NewMemoryEventBus()
	t.Cleanup(func() { bus.Close() })

	clinic := services.NewClinic(
		services.NewSessionService(),
		services.NewAppointmentService(database.NewAppointmentAdapter(client), bus, "Dr. Mehta"),
		services.NewPrescriptionService(database.NewPrescriptionAdapter(client), bus),
		services.NewRecordService(database.NewMedicalRecordAdapter(client)),
	)
	return clinic, bus
}

func TestClinic_AppointmentWorkflow(t *testing.T) {
	ctx := context.Background()
	clinic, _ := newTestClinic(t)

	patient := entities.Identity{Role: entities.RolePatient, Name: "Asha"}
	admin := entities.Identity{Role: entities.RoleAdmin, Name: "ADMIN"}
	doctor := entities.Identity{Role: entities.RoleDoctor, Name: "Dr. Mehta"}

	// Patient books
	booked, err := clinic.BookAppointment(ctx, patient, services.BookAppointmentInput{
		PatientName: "Asha",
		DoctorName:  "Dr. Mehta",
		Date:        "2025-01-01",
		Time:        "10:00",
		Reason:      "cough",
	})
	require.NoError(t, err)
	assert.Equal(t, entities.AppointmentStatusPending, booked.Status)

	// Admin sees one pending appointment
	all, err := clinic.ListAppointments(ctx, admin)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, entities.AppointmentStatusPending, all[0].Status)

	// Admin approves
	approved, err := clinic.SetAppointmentStatus(ctx, admin, booked.ID, "Approved")
	require.NoError(t, err)
	assert.Equal(t, entities.AppointmentStatusApproved, approved.Status)

	// Doctor sees it among their appointments with the new status
	mine, err := clinic.ListAppointments(ctx, doctor)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, entities.AppointmentStatusApproved, mine[0].Status)
	assert.Equal(t, "Asha", mine[0].PatientName)
}

func TestClinic_PrescriptionWorkflow(t *testing.T) {
	ctx := context.Background()
	clinic, _ := newTestClinic(t)

	doctor := entities.Identity{Role: entities.RoleDoctor, Name: "Dr. Mehta"}
	patient := entities.Identity{Role: entities.RolePatient, Name: "Asha"}
	pharmacist := entities.Identity{Role: entities.RolePharmacist, Name: "Priya"}

	recordsBefore, err := clinic.ListRecords(ctx, doctor)
	require.NoError(t, err)

	prescription, err := clinic.CreatePrescription(ctx, doctor, services.CreatePrescriptionInput{
		PatientName: "Asha",
		DoctorName:  "Dr. Mehta",
		Medication:  "Paracetamol",
		Dosage:      "1-0-1 for 5 days",
		Diagnosis:   "Viral fever",
	})
	require.NoError(t, err)
	assert.Equal(t, entities.PrescriptionStatusPending, prescription.Status)

	// Patient sees exactly one pending prescription
	mine, err := clinic.ListPrescriptions(ctx, patient)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, entities.PrescriptionStatusPending, mine[0].Status)
	assert.Equal(t, "Paracetamol", mine[0].Medication)

	// Exactly one record was appended, carrying the diagnosis as summary
	recordsAfter, err := clinic.ListRecords(ctx, doctor)
	require.NoError(t, err)
	require.Len(t, recordsAfter, len(recordsBefore)+1)
	newest := recordsAfter[len(recordsAfter)-1]
	assert.Equal(t, "Asha", newest.PatientName)
	assert.Equal(t, "Dr. Mehta", newest.DoctorName)
	assert.Equal(t, "Viral fever", newest.Summary)
	assert.Equal(t, "N/A", newest.LabReport)

	// Pharmacist marks it Ready; doing it twice yields the same state
	ready, err := clinic.SetPrescriptionStatus(ctx, pharmacist, prescription.ID, "Ready")
	require.NoError(t, err)
	again, err := clinic.SetPrescriptionStatus(ctx, pharmacist, prescription.ID, "Ready")
	require.NoError(t, err)
	assert.Equal(t, ready.Status, again.Status)

	listed, err := clinic.ListPrescriptions(ctx, pharmacist)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, entities.PrescriptionStatusReady, listed[0].Status)
}

func TestClinic_BlankDiagnosisUsesPlaceholder(t *testing.T) {
	ctx := context.Background()
	clinic, _ := newTestClinic(t)

	doctor := entities.Identity{Role: entities.RoleDoctor, Name: "Dr. Mehta"}
	patient := entities.Identity{Role: entities.RolePatient, Name: "Asha"}

	_, err := clinic.CreatePrescription(ctx, doctor, services.CreatePrescriptionInput{
		PatientName: "Asha",
		DoctorName:  "Dr. Mehta",
		Medication:  "Paracetamol",
	})
	require.NoError(t, err)

	records, err := clinic.ListRecords(ctx, patient)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Prescription generated", records[0].Summary)
}

func TestClinic_RoleGate(t *testing.T) {
	ctx := context.Background()
	clinic, _ := newTestClinic(t)

	patient := entities.Identity{Role: entities.RolePatient, Name: "Asha"}
	admin := entities.Identity{Role: entities.RoleAdmin, Name: "ADMIN"}
	pharmacist := entities.Identity{Role: entities.RolePharmacist, Name: "Priya"}

	booked, err := clinic.BookAppointment(ctx, patient, services.BookAppointmentInput{
		PatientName: "Asha",
		DoctorName:  "Dr. Mehta",
	})
	require.NoError(t, err)

	t.Run("non-admin cannot set appointment status and the ledger is unchanged", func(t *testing.T) {
		_, err := clinic.SetAppointmentStatus(ctx, patient, booked.ID, "Approved")
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeForbidden))

		all, err := clinic.ListAppointments(ctx, admin)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, entities.AppointmentStatusPending, all[0].Status)
	})

	t.Run("non-patient cannot book", func(t *testing.T) {
		_, err := clinic.BookAppointment(ctx, admin, services.BookAppointmentInput{
			PatientName: "Asha",
			DoctorName:  "Dr. Mehta",
		})
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeForbidden))
	})

	t.Run("pharmacist has no appointment view", func(t *testing.T) {
		_, err := clinic.ListAppointments(ctx, pharmacist)
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeForbidden))
	})

	t.Run("doctor has no prescription listing", func(t *testing.T) {
		doctor := entities.Identity{Role: entities.RoleDoctor, Name: "Dr. Mehta"}
		_, err := clinic.ListPrescriptions(ctx, doctor)
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeForbidden))
	})

	t.Run("pharmacist has no record view", func(t *testing.T) {
		_, err := clinic.ListRecords(ctx, pharmacist)
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeForbidden))
	})

	t.Run("stats are admin-only", func(t *testing.T) {
		_, err := clinic.Stats(ctx, patient)
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeForbidden))

		stats, err := clinic.Stats(ctx, admin)
		require.NoError(t, err)
		assert.Equal(t, 1, stats.TotalAppointments)
		assert.Equal(t, 0, stats.TotalPrescriptions)
	})
}

func TestClinic_SessionControl(t *testing.T) {
	ctx := context.Background()
	clinic, _ := newTestClinic(t)

	identity, err := clinic.Login(ctx, "patient", "Asha")
	require.NoError(t, err)
	assert.Equal(t, identity, clinic.Current())

	_, err = clinic.Login(ctx, "superuser", "Mallory")
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
	assert.Equal(t, identity, clinic.Current(), "failed login must not change the session")

	clinic.Logout(ctx)
	assert.True(t, clinic.Current().IsZero())
}

func TestClinic_MutationsPublishEvents(t *testing.T) {
	ctx := context.Background()
	clinic, bus := newTestClinic(t)

	appointmentCh, err := bus.Subscribe(ctx, providers.EventChannelAppointments)
	require.NoError(t, err)
	prescriptionCh, err := bus.Subscribe(ctx, providers.EventChannelPrescriptions)
	require.NoError(t, err)

	patient := entities.Identity{Role: entities.RolePatient, Name: "Asha"}
	doctor := entities.Identity{Role: entities.RoleDoctor, Name: "Dr. Mehta"}

	booked, err := clinic.BookAppointment(ctx, patient, services.BookAppointmentInput{
		PatientName: "Asha",
		DoctorName:  "Dr. Mehta",
	})
	require.NoError(t, err)

	event := <-appointmentCh
	assert.Equal(t, entities.ClinicEventTypeAppointmentBooked, event.EventType)
	assert.Equal(t, booked.ID, event.EntityID)
	assert.Equal(t, patient, event.Actor)

	prescription, err := clinic.CreatePrescription(ctx, doctor, services.CreatePrescriptionInput{
		PatientName: "Asha",
		DoctorName:  "Dr. Mehta",
		Medication:  "Paracetamol",
	})
	require.NoError(t, err)

	event = <-prescriptionCh
	assert.Equal(t, entities.ClinicEventTypePrescriptionIssued, event.EventType)
	assert.Equal(t, prescription.ID, event.EntityID)
}
