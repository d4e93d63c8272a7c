package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/omshealth/medcore/internal/domain/entities"
)

// Mocks shared by the service tests

type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) Create(ctx context.Context, appointment *entities.Appointment) error {
	args := m.Called(ctx, appointment)
	return args.Error(0)
}

func (m *MockAppointmentRepository) GetByID(ctx context.Context, id string) (*entities.Appointment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) UpdateStatus(ctx context.Context, id string, status entities.AppointmentStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockAppointmentRepository) List(ctx context.Context) ([]*entities.Appointment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Appointment), args.Error(1)
}

type MockPrescriptionRepository struct {
	mock.Mock
}

func (m *MockPrescriptionRepository) CreateWithRecord(ctx context.Context, prescription *entities.Prescription, record *entities.MedicalRecord) error {
	args := m.Called(ctx, prescription, record)
	return args.Error(0)
}

func (m *MockPrescriptionRepository) GetByID(ctx context.Context, id string) (*entities.Prescription, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Prescription), args.Error(1)
}

func (m *MockPrescriptionRepository) UpdateStatus(ctx context.Context, id string, status entities.PrescriptionStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockPrescriptionRepository) List(ctx context.Context) ([]*entities.Prescription, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Prescription), args.Error(1)
}

type MockMedicalRecordRepository struct {
	mock.Mock
}

func (m *MockMedicalRecordRepository) Create(ctx context.Context, record *entities.MedicalRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockMedicalRecordRepository) List(ctx context.Context) ([]*entities.MedicalRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.MedicalRecord), args.Error(1)
}
