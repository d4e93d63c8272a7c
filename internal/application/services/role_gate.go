package services

import (
	"fmt"

	"github.com/omshealth/medcore/internal/domain/entities"
	apperrors "github.com/omshealth/medcore/pkg/errors"
)

// Operation names a role-checked entry point on the clinic facade
type Operation string

const (
	OpBookAppointment       Operation = "appointments.book"
	OpListAppointments      Operation = "appointments.list"
	OpSetAppointmentStatus  Operation = "appointments.set_status"
	OpCreatePrescription    Operation = "prescriptions.create"
	OpListPrescriptions     Operation = "prescriptions.list"
	OpSetPrescriptionStatus Operation = "prescriptions.set_status"
	OpListRecords           Operation = "records.list"
	OpViewStats             Operation = "stats.view"
)

// rolePolicy is the single place role policy is expressed: which roles may
// invoke which facade operation. Listing scopes (whose data a permitted role
// sees) live with the services; who may call at all lives here.
var rolePolicy = map[Operation][]entities.Role{
	OpBookAppointment:       {entities.RolePatient},
	OpListAppointments:      {entities.RoleAdmin, entities.RoleDoctor, entities.RolePatient},
	OpSetAppointmentStatus:  {entities.RoleAdmin},
	OpCreatePrescription:    {entities.RoleDoctor},
	OpListPrescriptions:     {entities.RoleAdmin, entities.RolePharmacist, entities.RolePatient},
	OpSetPrescriptionStatus: {entities.RolePharmacist},
	OpListRecords:           {entities.RoleAdmin, entities.RoleDoctor, entities.RolePatient},
	OpViewStats:             {entities.RoleAdmin},
}

// Authorize returns a forbidden error unless the actor's role may invoke op
func Authorize(actor entities.Identity, op Operation) error {
	for _, role := range rolePolicy[op] {
		if actor.Role == role {
			return nil
		}
	}
	return apperrors.NewForbiddenError(fmt.Sprintf("access denied for this role: %s may not perform %s", displayRole(actor.Role), op))
}

func displayRole(role entities.Role) string {
	if role == entities.RoleNone {
		return "anonymous"
	}
	return string(role)
}
