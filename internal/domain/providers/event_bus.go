package providers

import (
	"context"

	"github.com/omshealth/medcore/internal/domain/entities"
)

// EventBus defines the interface for publishing and subscribing to clinic events
type EventBus interface {
	// Publish publishes an event to all subscribers of a channel
	Publish(ctx context.Context, channel string, event *entities.ClinicEvent) error

	// Subscribe subscribes to events on a channel
	Subscribe(ctx context.Context, channel string) (<-chan *entities.ClinicEvent, error)

	// Unsubscribe unsubscribes from a channel
	Unsubscribe(ctx context.Context, channel string) error

	// Close closes the event bus and all subscriptions
	Close() error
}

// Event channel constants for the clinic ledgers
const (
	// EventChannelAppointments carries appointment bookings and status changes
	EventChannelAppointments = "clinic:appointments"

	// EventChannelPrescriptions carries prescription issues and status changes
	EventChannelPrescriptions = "clinic:prescriptions"
)
