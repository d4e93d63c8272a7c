package events

import (
	"context"
	"sync"

	"github.com/omshealth/medcore/internal/domain/entities"
	"github.com/omshealth/medcore/internal/domain/providers"
	"github.com/omshealth/medcore/internal/infrastructure/observability"
	apperrors "github.com/omshealth/medcore/pkg/errors"
)

const subscriberBuffer = 16

// MemoryEventBus implements the EventBus interface with in-process channel
// fan-out. The core has no external broker; subscribers live in the same
// process as the ledgers.
type MemoryEventBus struct {
	subscribers map[string]map[chan *entities.ClinicEvent]struct{}
	mu          sync.RWMutex
	closed      bool
}

// NewMemoryEventBus creates a new in-process event bus
func NewMemoryEventBus() providers.EventBus {
	return &MemoryEventBus{
		subscribers: make(map[string]map[chan *entities.ClinicEvent]struct{}),
	}
}

// Publish publishes an event to all subscribers of a channel. Slow
// subscribers do not block publishers; events past a subscriber's buffer
// are dropped.
func (b *MemoryEventBus) Publish(ctx context.Context, channel string, event *entities.ClinicEvent) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return nil
	}

	for ch := range b.subscribers[channel] {
		select {
		case ch <- event:
		default:
			observability.LoggerFromContext(ctx).Warn().
				Str("channel", channel).
				Str("event_id", event.ID).
				Msg("dropping event for slow subscriber")
		}
	}
	return nil
}

// Subscribe subscribes to events on a channel
func (b *MemoryEventBus) Subscribe(ctx context.Context, channel string) (<-chan *entities.ClinicEvent, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil, apperrors.NewInternalError("event bus is closed", nil)
	}

	if b.subscribers[channel] == nil {
		b.subscribers[channel] = make(map[chan *entities.ClinicEvent]struct{})
	}

	ch := make(chan *entities.ClinicEvent, subscriberBuffer)
	b.subscribers[channel][ch] = struct{}{}
	return ch, nil
}

// Unsubscribe unsubscribes every subscriber from a channel
func (b *MemoryEventBus) Unsubscribe(ctx context.Context, channel string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for ch := range b.subscribers[channel] {
		close(ch)
	}
	delete(b.subscribers, channel)
	return nil
}

// Close closes the event bus and all subscriptions
func (b *MemoryEventBus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true

	for channel, subs := range b.subscribers {
		for ch := range subs {
			close(ch)
		}
		delete(b.subscribers, channel)
	}
	return nil
}
