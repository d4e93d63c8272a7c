package services

import (
	"context"
	"fmt"

	"github.com/omshealth/medcore/internal/domain/directory"
	"github.com/omshealth/medcore/internal/domain/entities"
	"github.com/omshealth/medcore/internal/domain/repositories"
	apperrors "github.com/omshealth/medcore/pkg/errors"
)

// RecordService reads the append-only medical record store
type RecordService struct {
	repo repositories.MedicalRecordRepository
}

// NewRecordService creates a new record service
func NewRecordService(repo repositories.MedicalRecordRepository) *RecordService {
	return &RecordService{repo: repo}
}

// List returns the records visible to the actor: a patient sees their own,
// admins and doctors see the full store.
func (s *RecordService) List(ctx context.Context, actor entities.Identity) ([]*entities.MedicalRecord, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	switch actor.Role {
	case entities.RoleAdmin, entities.RoleDoctor:
		return records, nil
	case entities.RolePatient:
		var mine []*entities.MedicalRecord
		for _, r := range records {
			if directory.Matches(r.PatientName, actor.Name) {
				mine = append(mine, r)
			}
		}
		return mine, nil
	}
	return nil, apperrors.NewForbiddenError(fmt.Sprintf("role %q has no record view", actor.Role))
}
