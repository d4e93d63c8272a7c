package entities

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// ClinicEventType represents the type of clinic activity event
type ClinicEventType string

const (
	ClinicEventTypeAppointmentBooked  ClinicEventType = "appointment_booked"
	ClinicEventTypeAppointmentStatus  ClinicEventType = "appointment_status"
	ClinicEventTypePrescriptionIssued ClinicEventType = "prescription_issued"
	ClinicEventTypePrescriptionStatus ClinicEventType = "prescription_status"
)

// ClinicEvent represents a successful mutation on one of the ledgers,
// published for presentation collaborators (notifications, live dashboards)
type ClinicEvent struct {
	ID        string          `json:"id"`
	EntityID  string          `json:"entity_id"`
	EventType ClinicEventType `json:"event_type"`
	Actor     Identity        `json:"actor"`
	Timestamp time.Time       `json:"timestamp"`
	Details   map[string]any  `json:"details"`
}

// NewClinicEvent creates a new clinic event
func NewClinicEvent(eventType ClinicEventType, entityID string, actor Identity, details map[string]any) *ClinicEvent {
	return &ClinicEvent{
		ID:        generateEventID(),
		EntityID:  entityID,
		EventType: eventType,
		Actor:     actor,
		Timestamp: time.Now(),
		Details:   details,
	}
}

// generateEventID generates a unique event ID
func generateEventID() string {
	return time.Now().Format("20060102150405") + "-" + randomString(8)
}

// randomString generates a random string of specified length
func randomString(length int) string {
	bytes := make([]byte, length/2+1)
	if _, err := rand.Read(bytes); err != nil {
		// Fallback to timestamp-based if crypto/rand fails
		return time.Now().Format("150405.000")
	}
	return hex.EncodeToString(bytes)[:length]
}
