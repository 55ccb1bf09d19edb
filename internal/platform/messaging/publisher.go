package messaging

import (
	"context"
	"time"

	"github.com/google/uuid"

	"minerva/internal/shared/events"
)

// Publisher adapts the bus to the contexts' EventPublisher ports, stamping
// each event with an id, source and timestamp. Topic equals event type.
type Publisher struct {
	bus           *Bus
	sourceService string
}

func NewPublisher(bus *Bus, sourceService string) *Publisher {
	return &Publisher{
		bus:           bus,
		sourceService: sourceService,
	}
}

func (p *Publisher) Publish(ctx context.Context, eventType string, entityType string, entityID string, payload any) error {
	return p.bus.Publish(ctx, eventType, events.Envelope{
		EventID:        uuid.NewString(),
		EventType:      eventType,
		SourceService:  p.sourceService,
		OccurredAtUTC:  time.Now().UTC(),
		EntityType:     entityType,
		EntityID:       entityID,
		PayloadVersion: 1,
		Payload:        payload,
	})
}
