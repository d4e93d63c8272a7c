package main

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/omshealth/medcore/internal/adapters/database"
	"github.com/omshealth/medcore/internal/adapters/events"
	"github.com/omshealth/medcore/internal/application/services"
	"github.com/omshealth/medcore/internal/domain/entities"
	"github.com/omshealth/medcore/internal/domain/providers"
	"github.com/omshealth/medcore/internal/infrastructure/clients/sqlite"
	"github.com/omshealth/medcore/internal/infrastructure/observability"
	"github.com/omshealth/medcore/pkg/config"
)

// The demo walks the full clinical workflow against the in-process core:
// patient books, admin approves, doctor prescribes, pharmacist dispenses,
// patient reviews their records. It is presentation plumbing; everything it
// does goes through the clinic facade.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	observability.InitLogger(cfg.Service.Name, cfg.Service.Env, cfg.Service.LogLevel)

	ctx := context.Background()

	client, err := sqlite.NewClient(&cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open storage")
	}
	defer client.Close()

	if err := client.Migrate(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate ledger schema")
	}

	recordRepo := database.NewMedicalRecordAdapter(client)
	if cfg.Clinic.SeedRecords {
		if err := database.SeedDemoRecords(ctx, recordRepo); err != nil {
			log.Fatal().Err(err).Msg("failed to seed demo records")
		}
	}

	bus := events.NewMemoryEventBus()
	defer bus.Close()
	watchEvents(ctx, bus)

	clinic := services.NewClinic(
		services.NewSessionService(),
		services.NewAppointmentService(database.NewAppointmentAdapter(client), bus, cfg.Clinic.DemoDoctor),
		services.NewPrescriptionService(database.NewPrescriptionAdapter(client), bus),
		services.NewRecordService(recordRepo),
	)

	if err := run(ctx, clinic); err != nil {
		log.Error().Err(err).Msg("demo walkthrough failed")
		os.Exit(1)
	}
}

// watchEvents logs every ledger mutation, standing in for the notification
// integrations a real deployment would attach here.
func watchEvents(ctx context.Context, bus providers.EventBus) {
	for _, channel := range []string{providers.EventChannelAppointments, providers.EventChannelPrescriptions} {
		ch, err := bus.Subscribe(ctx, channel)
		if err != nil {
			log.Warn().Err(err).Str("channel", channel).Msg("failed to subscribe")
			continue
		}
		go func(channel string, ch <-chan *entities.ClinicEvent) {
			for event := range ch {
				log.Info().
					Str("channel", channel).
					Str("event_type", string(event.EventType)).
					Str("entity_id", event.EntityID).
					Str("actor", event.Actor.Name).
					Msg("clinic event")
			}
		}(channel, ch)
	}
}

func run(ctx context.Context, clinic *services.Clinic) error {
	// Patient books an appointment
	patient, err := clinic.Login(ctx, "patient", "Asha")
	if err != nil {
		return err
	}
	appointment, err := clinic.BookAppointment(ctx, patient, services.BookAppointmentInput{
		PatientName: "Asha",
		DoctorName:  "Dr. Mehta",
		Date:        "2025-01-01",
		Time:        "10:00",
		Reason:      "cough",
	})
	if err != nil {
		return err
	}

	// A patient cannot arbitrate appointment status; the gate refuses
	if _, err := clinic.SetAppointmentStatus(ctx, patient, appointment.ID, "Approved"); err != nil {
		log.Info().Str("error", err.Error()).Msg("role gate refused patient status update")
	}
	clinic.Logout(ctx)

	// Admin reviews and approves
	admin, err := clinic.Login(ctx, "admin", "")
	if err != nil {
		return err
	}
	stats, err := clinic.Stats(ctx, admin)
	if err != nil {
		return err
	}
	log.Info().
		Int("appointments", stats.TotalAppointments).
		Int("prescriptions", stats.TotalPrescriptions).
		Msg("admin dashboard totals")
	if _, err := clinic.SetAppointmentStatus(ctx, admin, appointment.ID, "Approved"); err != nil {
		return err
	}
	clinic.Logout(ctx)

	// Doctor consults and prescribes
	doctor, err := clinic.Login(ctx, "doctor", "Dr. Mehta")
	if err != nil {
		return err
	}
	mine, err := clinic.ListAppointments(ctx, doctor)
	if err != nil {
		return err
	}
	for _, a := range mine {
		log.Info().
			Str("patient", a.PatientName).
			Str("date", a.Date).
			Str("status", string(a.Status)).
			Msg("doctor appointment")
	}
	prescription, err := clinic.CreatePrescription(ctx, doctor, services.CreatePrescriptionInput{
		PatientName:  "Asha",
		DoctorName:   "Dr. Mehta",
		Medication:   "Paracetamol",
		Dosage:       "1-0-1 for 5 days",
		Instructions: "After food",
		Diagnosis:    "Viral fever",
	})
	if err != nil {
		return err
	}
	clinic.Logout(ctx)

	// Pharmacist dispenses
	pharmacist, err := clinic.Login(ctx, "pharmacist", "Priya")
	if err != nil {
		return err
	}
	if _, err := clinic.SetPrescriptionStatus(ctx, pharmacist, prescription.ID, "Ready"); err != nil {
		return err
	}
	if _, err := clinic.SetPrescriptionStatus(ctx, pharmacist, prescription.ID, "Dispensed"); err != nil {
		return err
	}
	clinic.Logout(ctx)

	// Patient reviews prescriptions and records
	patient, err = clinic.Login(ctx, "patient", "asha")
	if err != nil {
		return err
	}
	prescriptions, err := clinic.ListPrescriptions(ctx, patient)
	if err != nil {
		return err
	}
	for _, p := range prescriptions {
		log.Info().
			Str("medication", p.Medication).
			Str("dosage", p.Dosage).
			Str("status", string(p.Status)).
			Msg("patient prescription")
	}
	records, err := clinic.ListRecords(ctx, patient)
	if err != nil {
		return err
	}
	for _, r := range records {
		log.Info().
			Str("date", r.Date).
			Str("doctor", r.DoctorName).
			Str("summary", r.Summary).
			Str("lab", r.LabReport).
			Msg("patient medical record")
	}
	clinic.Logout(ctx)

	return nil
}
