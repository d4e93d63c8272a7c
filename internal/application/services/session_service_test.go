package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/omshealth/medcore/internal/application/services"
	"github.com/omshealth/medcore/internal/domain/entities"
	apperrors "github.com/omshealth/medcore/pkg/errors"
)

func TestSessionService_Login(t *testing.T) {
	t.Run("sets the active identity", func(t *testing.T) {
		sessions := services.NewSessionService()

		identity, err := sessions.Login(context.Background(), "patient", "Asha")

		assert.NoError(t, err)
		assert.Equal(t, entities.RolePatient, identity.Role)
		assert.Equal(t, "Asha", identity.Name)
		assert.Equal(t, identity, sessions.Current())
	})

	t.Run("rejects an unknown role and keeps the previous identity", func(t *testing.T) {
		sessions := services.NewSessionService()
		_, err := sessions.Login(context.Background(), "doctor", "Dr. Mehta")
		assert.NoError(t, err)

		_, err = sessions.Login(context.Background(), "nurse", "Asha")

		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
		assert.Equal(t, entities.RoleDoctor, sessions.Current().Role)
		assert.Equal(t, "Dr. Mehta", sessions.Current().Name)
	})

	t.Run("defaults an empty name to the upper-cased role", func(t *testing.T) {
		sessions := services.NewSessionService()

		identity, err := sessions.Login(context.Background(), "admin", "  ")

		assert.NoError(t, err)
		assert.Equal(t, "ADMIN", identity.Name)
	})
}

func TestSessionService_Logout(t *testing.T) {
	sessions := services.NewSessionService()
	_, err := sessions.Login(context.Background(), "pharmacist", "Priya")
	assert.NoError(t, err)

	sessions.Logout(context.Background())

	assert.True(t, sessions.Current().IsZero())
}
