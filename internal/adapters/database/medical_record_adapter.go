package database

import (
	"context"

	"github.com/doug-martin/goqu/v9"

	"github.com/omshealth/medcore/internal/domain/entities"
	"github.com/omshealth/medcore/internal/domain/repositories"
	"github.com/omshealth/medcore/internal/infrastructure/clients/sqlite"
	apperrors "github.com/omshealth/medcore/pkg/errors"
)

// MedicalRecordAdapter implements the MedicalRecordRepository interface.
// The store is append-only; there is no update or delete path.
type MedicalRecordAdapter struct {
	client *sqlite.Client
	db     *goqu.Database
}

// NewMedicalRecordAdapter creates a new medical record adapter
func NewMedicalRecordAdapter(client *sqlite.Client) repositories.MedicalRecordRepository {
	return &MedicalRecordAdapter{
		client: client,
		db:     goqu.New("sqlite3", client.DB()),
	}
}

// Create appends a medical record
func (a *MedicalRecordAdapter) Create(ctx context.Context, record *entities.MedicalRecord) error {
	row := goqu.Record{
		"id":           record.ID,
		"patient_name": record.PatientName,
		"doctor_name":  record.DoctorName,
		"summary":      record.Summary,
		"lab_report":   record.LabReport,
		"date":         record.Date,
		"created_at":   record.CreatedAt,
	}

	query, args, err := a.db.Insert("medical_records").Rows(row).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	_, err = a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to create medical record", err)
	}

	return nil
}

// List retrieves every medical record in creation order
func (a *MedicalRecordAdapter) List(ctx context.Context) ([]*entities.MedicalRecord, error) {
	query, args, err := a.db.Select(
		"id", "patient_name", "doctor_name", "summary",
		"lab_report", "date", "created_at",
	).From("medical_records").
		Order(goqu.I("created_at").Asc(), goqu.I("rowid").Asc()).
		ToSQL()

	if err != nil {
		return nil, apperrors.NewInternalError("failed to build list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list medical records", err)
	}
	defer rows.Close()

	var records []*entities.MedicalRecord
	for rows.Next() {
		record := &entities.MedicalRecord{}
		err := rows.Scan(
			&record.ID,
			&record.PatientName,
			&record.DoctorName,
			&record.Summary,
			&record.LabReport,
			&record.Date,
			&record.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan medical record", err)
		}
		records = append(records, record)
	}

	return records, nil
}
