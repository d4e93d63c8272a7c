package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"

	"github.com/omshealth/medcore/internal/domain/entities"
	"github.com/omshealth/medcore/internal/domain/repositories"
	"github.com/omshealth/medcore/internal/infrastructure/clients/sqlite"
	apperrors "github.com/omshealth/medcore/pkg/errors"
)

// PrescriptionAdapter implements the PrescriptionRepository interface
type PrescriptionAdapter struct {
	client *sqlite.Client
	db     *goqu.Database
}

// NewPrescriptionAdapter creates a new prescription adapter
func NewPrescriptionAdapter(client *sqlite.Client) repositories.PrescriptionRepository {
	return &PrescriptionAdapter{
		client: client,
		db:     goqu.New("sqlite3", client.DB()),
	}
}

// CreateWithRecord appends a prescription and its derived medical record in
// one transaction so readers never observe one without the other.
func (a *PrescriptionAdapter) CreateWithRecord(ctx context.Context, prescription *entities.Prescription, record *entities.MedicalRecord) error {
	prescriptionRow := goqu.Record{
		"id":           prescription.ID,
		"patient_name": prescription.PatientName,
		"doctor_name":  prescription.DoctorName,
		"medication":   prescription.Medication,
		"dosage":       prescription.Dosage,
		"instructions": prescription.Instructions,
		"diagnosis":    prescription.Diagnosis,
		"lab_report":   prescription.LabReport,
		"status":       prescription.Status,
		"created_at":   prescription.CreatedAt,
		"updated_at":   prescription.UpdatedAt,
	}

	recordRow := goqu.Record{
		"id":           record.ID,
		"patient_name": record.PatientName,
		"doctor_name":  record.DoctorName,
		"summary":      record.Summary,
		"lab_report":   record.LabReport,
		"date":         record.Date,
		"created_at":   record.CreatedAt,
	}

	prescriptionQuery, prescriptionArgs, err := a.db.Insert("prescriptions").Rows(prescriptionRow).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build prescription insert query", err)
	}

	recordQuery, recordArgs, err := a.db.Insert("medical_records").Rows(recordRow).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build medical record insert query", err)
	}

	tx, err := a.client.BeginTx(ctx)
	if err != nil {
		return apperrors.NewInternalError("failed to begin transaction", err)
	}

	if _, err = tx.ExecContext(ctx, prescriptionQuery, prescriptionArgs...); err != nil {
		tx.Rollback()
		return apperrors.NewInternalError("failed to create prescription", err)
	}

	if _, err = tx.ExecContext(ctx, recordQuery, recordArgs...); err != nil {
		tx.Rollback()
		return apperrors.NewInternalError("failed to create medical record", err)
	}

	if err = tx.Commit(); err != nil {
		return apperrors.NewInternalError("failed to commit prescription transaction", err)
	}

	return nil
}

// GetByID retrieves a prescription by ID
func (a *PrescriptionAdapter) GetByID(ctx context.Context, id string) (*entities.Prescription, error) {
	query, args, err := a.db.Select(
		"id", "patient_name", "doctor_name", "medication", "dosage",
		"instructions", "diagnosis", "lab_report", "status",
		"created_at", "updated_at",
	).From("prescriptions").
		Where(goqu.Ex{"id": id}).
		ToSQL()

	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	prescription := &entities.Prescription{}
	err = a.client.DB().QueryRowContext(ctx, query, args...).Scan(
		&prescription.ID,
		&prescription.PatientName,
		&prescription.DoctorName,
		&prescription.Medication,
		&prescription.Dosage,
		&prescription.Instructions,
		&prescription.Diagnosis,
		&prescription.LabReport,
		&prescription.Status,
		&prescription.CreatedAt,
		&prescription.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("prescription with id %s not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get prescription", err)
	}

	return prescription, nil
}

// UpdateStatus overwrites the status of a prescription
func (a *PrescriptionAdapter) UpdateStatus(ctx context.Context, id string, status entities.PrescriptionStatus) error {
	query, args, err := a.db.Update("prescriptions").
		Set(goqu.Record{
			"status":     status,
			"updated_at": time.Now(),
		}).
		Where(goqu.Ex{"id": id}).
		ToSQL()

	if err != nil {
		return apperrors.NewInternalError("failed to build update query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to update prescription", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}

	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("prescription with id %s not found", id))
	}

	return nil
}

// List retrieves every prescription in creation order
func (a *PrescriptionAdapter) List(ctx context.Context) ([]*entities.Prescription, error) {
	query, args, err := a.db.Select(
		"id", "patient_name", "doctor_name", "medication", "dosage",
		"instructions", "diagnosis", "lab_report", "status",
		"created_at", "updated_at",
	).From("prescriptions").
		Order(goqu.I("created_at").Asc(), goqu.I("rowid").Asc()).
		ToSQL()

	if err != nil {
		return nil, apperrors.NewInternalError("failed to build list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list prescriptions", err)
	}
	defer rows.Close()

	var prescriptions []*entities.Prescription
	for rows.Next() {
		prescription := &entities.Prescription{}
		err := rows.Scan(
			&prescription.ID,
			&prescription.PatientName,
			&prescription.DoctorName,
			&prescription.Medication,
			&prescription.Dosage,
			&prescription.Instructions,
			&prescription.Diagnosis,
			&prescription.LabReport,
			&prescription.Status,
			&prescription.CreatedAt,
			&prescription.UpdatedAt,
		)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan prescription", err)
		}
		prescriptions = append(prescriptions, prescription)
	}

	return prescriptions, nil
}
